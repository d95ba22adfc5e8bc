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

package chapters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/database"
)

var (
	// "ch. 12", "ch.12.5", "ch. 7b"
	chapterPrefixRegex = regexp.MustCompile(`ch\. *([0-9]+)(\.[0-9]+)?(\.?[a-z]+)?`)
	bareNumberRegex    = regexp.MustCompile(`([0-9]+)(\.[0-9]+)?(\.?[a-z]+)?`)
	// volume, version and season numbers are never the chapter number
	volumeNoiseRegex = regexp.MustCompile(`\b(?:v|ver|vol|version|volume|season|s)[^a-z]?[0-9]+`)
	suffixSpaceRegex = regexp.MustCompile(`\s(extra|special|omake)`)
)

// RecognizeNumber parses a chapter number from a chapter name. A
// non-negative hint from the source wins. Sub-chapters come out as
// decimals: "10.5" is 10.5, "10b" is 10.2, and extra, omake and special
// chapters are .99, .98 and .97. Names without a number give
// database.UnrecognizedNumber.
func RecognizeNumber(workTitle, chapterName string, hint float64) float64 {
	if hint >= 0 {
		return hint
	}

	name := strings.ToLower(chapterName)
	if title := strings.ToLower(strings.TrimSpace(workTitle)); title != "" {
		name = strings.ReplaceAll(name, title, "")
	}
	name = strings.TrimSpace(name)
	name = strings.NewReplacer(",", ".", "-", ".").Replace(name)
	name = suffixSpaceRegex.ReplaceAllString(name, "$1")
	name = volumeNoiseRegex.ReplaceAllString(name, "")

	if m := chapterPrefixRegex.FindStringSubmatch(name); m != nil {
		if n, ok := numberFromMatch(m); ok {
			return n
		}
	}
	if m := bareNumberRegex.FindStringSubmatch(name); m != nil {
		if n, ok := numberFromMatch(m); ok {
			return n
		}
	}
	return database.UnrecognizedNumber
}

func numberFromMatch(m []string) (float64, bool) {
	whole, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return whole + subChapter(m[2], m[3]), true
}

func subChapter(decimal, alpha string) float64 {
	if decimal != "" {
		if f, err := strconv.ParseFloat(decimal, 64); err == nil {
			return f
		}
	}
	switch {
	case alpha == "":
		return 0
	case strings.Contains(alpha, "extra"):
		return 0.99
	case strings.Contains(alpha, "omake"):
		return 0.98
	case strings.Contains(alpha, "special"):
		return 0.97
	}
	alpha = strings.TrimLeft(alpha, ".")
	if len(alpha) != 1 {
		return 0
	}
	// a..i map to .1 .. .9
	n := int(alpha[0]-'a') + 1
	if n >= 10 {
		return 0
	}
	return float64(n) / 10
}
