// Shelfmove
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Shelfmove.
//
// Shelfmove is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shelfmove is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shelfmove.  If not, see <http://www.gnu.org/licenses/>.

// Package matcher scores how alike two titles are.
package matcher

import (
	"slices"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// Match is a candidate title that cleared the similarity threshold.
type Match struct {
	Title      string
	Index      int
	Similarity float64
}

// Similarity returns the normalized Levenshtein similarity of two strings,
// 1 - distance/max(len(a), len(b)) counted in runes. Two empty strings are
// identical. The score is symmetric and always in [0, 1].
func Similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	dist := edlib.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// Rank scores every candidate against the query and returns those at or
// above minSimilarity, best first. Equal scores keep candidate order, so
// the first element is always the earliest best match.
func Rank(query string, candidates []string, minSimilarity float64) []Match {
	var matches []Match

	for i, candidate := range candidates {
		similarity := Similarity(query, candidate)

		if similarity > 0.7 {
			log.Debug().
				Str("query", query).
				Str("candidate", candidate).
				Float64("similarity", similarity).
				Float64("threshold", minSimilarity).
				Msg("fuzzy match candidate evaluation")
		}

		if similarity >= minSimilarity {
			matches = append(matches, Match{
				Title:      candidate,
				Index:      i,
				Similarity: similarity,
			})
		}
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		default:
			return 0
		}
	})

	return matches
}
