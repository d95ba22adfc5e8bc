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

// Package titles turns raw work titles into comparable search keys and
// derives the search queries used to look a work up on another source.
package titles

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// minTrustedLength is the rune count at or below which a cleaned title is
// considered over-stripped and a gentler rule is tried instead.
const minTrustedLength = 5

var (
	chapterRefRegex   = regexp.MustCompile(`(?:^|\s)- (?:part|chapter|часть|глава) \d*`)
	latinFilterRegex  = regexp.MustCompile(`[^a-z0-9\- ]`)
	letterFilterRegex = regexp.MustCompile(`[^\p{L}0-9\- ]`)
	spacesRegex       = regexp.MustCompile(`\s+`)
)

var bracketPairs = [...][2]rune{
	{'(', ')'},
	{'[', ']'},
	{'<', '>'},
	{'{', '}'},
}

// Normalizer cleans titles for comparison. It is safe for concurrent use.
type Normalizer struct {
	lang language.Tag
}

// NewNormalizer returns a normalizer that lowercases with the rules of
// the given language.
func NewNormalizer(lang language.Tag) *Normalizer {
	return &Normalizer{lang: lang}
}

var defaultNormalizer = NewNormalizer(language.Und)

// Normalize cleans a title with language-neutral case rules.
func Normalize(title string) string {
	return defaultNormalizer.Normalize(title)
}

// Language returns the tag used for case folding.
func (n *Normalizer) Language() language.Tag {
	return n.lang
}

// Normalize returns the comparison form of a title:
//
//	"Naruto (VIZ Media) Vol.1" → "naruto vol 1"
//	"[Oneshot] Кровь - глава 3" → "кровь"
//
// The result only holds lowercase letters, digits, hyphens and single
// spaces, and normalizing it again returns it unchanged.
func (n *Normalizer) Normalize(title string) string {
	s := n.pass(title)
	// a pass only drops or blanks characters, so this ends within
	// len(s) rounds; the Latin filter can pick differently once
	// neighbouring characters are gone
	for range runeLen(s) + 1 {
		next := n.pass(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func (n *Normalizer) pass(title string) string {
	s := n.fold(title)

	cleaned := removeBracketed(s, true)
	if runeLen(strings.TrimSpace(cleaned)) <= minTrustedLength {
		// the main title itself may be the bracketed part
		cleaned = removeBracketed(s, false)
	}

	latin := clean(cleaned, latinFilterRegex)
	if runeLen(latin) > minTrustedLength {
		return latin
	}
	// non-Latin titles lose nearly everything to the ASCII filter
	return clean(cleaned, letterFilterRegex)
}

func clean(s string, filter *regexp.Regexp) string {
	s = filter.ReplaceAllString(s, " ")
	s = chapterRefRegex.ReplaceAllString(s, " ")
	return collapse(s)
}

// fold applies width folding, case folding and diacritic removal on
// letters of scripts where marks are decorative.
func (n *Normalizer) fold(s string) string {
	if folded, _, err := transform.String(width.Fold, s); err == nil {
		s = folded
	}
	// a Caser keeps state and must not be shared between goroutines
	s = cases.Lower(n.lang).String(s)
	if isASCII(s) {
		return s
	}
	return removeDiacritics(s)
}

// removeDiacritics decomposes s and drops nonspacing marks that sit on a
// Latin, Cyrillic or Greek base letter.
func removeDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))

	strip := true
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			if strip {
				continue
			}
			b.WriteRune(r)
			continue
		}
		strip = stripsDiacritics(scriptOf(r))
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// removeBracketed drops every character enclosed in any bracket pair,
// tracking nesting per pair. Reading backwards swaps the role of opening
// and closing brackets so unbalanced titles keep their trailing text.
func removeBracketed(s string, forward bool) string {
	var depth [len(bracketPairs)]int

	rs := []rune(s)
	if !forward {
		reverse(rs)
	}

	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		handled := false
		for i, pair := range bracketPairs {
			opening, closing := pair[0], pair[1]
			if !forward {
				opening, closing = closing, opening
			}
			if r == opening {
				depth[i]++
				handled = true
				break
			}
			if r == closing {
				depth[i]--
				handled = true
				break
			}
		}
		if !handled && outsideBrackets(depth[:]) {
			out = append(out, r)
		}
	}

	if !forward {
		reverse(out)
	}
	return string(out)
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}

func outsideBrackets(depth []int) bool {
	for _, d := range depth {
		if d > 0 {
			return false
		}
	}
	return true
}

// collapse removes " - " separators and dangling hyphens at either end,
// squeezes whitespace and trims.
func collapse(s string) string {
	s = spacesRegex.ReplaceAllString(s, " ")
	for strings.Contains(s, " - ") {
		s = strings.ReplaceAll(s, " - ", " ")
	}
	return strings.Trim(s, " -")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
