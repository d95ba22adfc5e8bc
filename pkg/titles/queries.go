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

package titles

import (
	"slices"
	"strings"
)

// Plan is an ordered, duplicate-free list of search queries. Earlier
// queries have priority when candidates tie.
type Plan []string

// PlanQueries derives search queries from a normalized title, in order:
// the full title, the two longest tokens, the longest token, the first two
// tokens and the first token. A title without tokens yields an empty plan.
func PlanQueries(normalized string) Plan {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return Plan{}
	}

	byLength := make([]int, len(tokens))
	for i := range byLength {
		byLength[i] = i
	}
	slices.SortStableFunc(byLength, func(a, b int) int {
		return runeLen(tokens[b]) - runeLen(tokens[a])
	})

	// longest first, ties in reading order
	pair := make([]string, 0, 2)
	for _, i := range byLength[:min(2, len(byLength))] {
		pair = append(pair, tokens[i])
	}

	candidates := []string{
		strings.Join(tokens, " "),
		strings.Join(pair, " "),
		tokens[byLength[0]],
		strings.Join(tokens[:min(2, len(tokens))], " "),
		tokens[0],
	}

	plan := make(Plan, 0, len(candidates))
	for _, q := range candidates {
		if !slices.Contains(plan, q) {
			plan = append(plan, q)
		}
	}
	return plan
}

// WithExtra appends extra search parameters to every query. Blank params
// return the plan unchanged. Queries that become equal are dropped.
func (p Plan) WithExtra(params string) Plan {
	params = strings.TrimSpace(params)
	if params == "" {
		return p
	}
	out := make(Plan, 0, len(p))
	for _, q := range p {
		q = q + " " + params
		if !slices.Contains(out, q) {
			out = append(out, q)
		}
	}
	return out
}
