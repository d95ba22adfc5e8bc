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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "publisher and volume", input: "Naruto (VIZ Media) Vol.1", expected: "naruto vol 1"},
		{name: "cyrillic with chapter ref", input: "[Oneshot] Кровь - глава 3", expected: "кровь"},
		{name: "english chapter ref", input: "One Piece - Chapter 1000", expected: "one piece"},
		{name: "separator removed", input: "Title - Subtitle", expected: "title subtitle"},
		{name: "diacritics", input: "Pokémon Adventures", expected: "pokemon adventures"},
		{name: "fullwidth", input: "ＮＡＲＵＴＯ", expected: "naruto"},
		{name: "japanese falls back to letters", input: "進撃の巨人", expected: "進撃の巨人"},
		{name: "unbalanced opening bracket", input: "(Naruto", expected: "naruto"},
		{name: "main title after tag", input: "[Oneshot] (Long Title", expected: "long title"},
		{name: "nested brackets", input: "Berserk [Deluxe (Hardcover)] Edition", expected: "berserk edition"},
		{name: "punctuation becomes space", input: "Re:Zero!!", expected: "re zero"},
		{name: "whitespace collapsed", input: "  Vinland \t Saga  ", expected: "vinland saga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizerLanguage(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(language.Turkish)
	assert.Equal(t, language.Turkish, n.Language())
	// Turkish dotted capital I lowercases to a plain i
	assert.Equal(t, "istanbul", n.Normalize("İSTANBUL"))
}

func TestRemoveBracketed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a  d", removeBracketed("a (b [c]) d", true))
	assert.Equal(t, "a  d", removeBracketed("a (b [c]) d", false))
	assert.Equal(t, "title", removeBracketed("(title", false))
	assert.Equal(t, "", removeBracketed("(title", true))
}

func TestCollapse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", collapse(" a  -  b "))
	assert.Equal(t, "part 1", collapse(" - - part 1"))
	assert.Equal(t, "a-b", collapse("a-b"))
	assert.Equal(t, "a-b", collapse("-a-b-"))
	assert.Equal(t, "heea", collapse(" - heea "))
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		".-аheeaｱ",
		" -]аé thé",
		"ßp аeİвß-.",
		"Tokyo -東京- Ghoul",
		"Kaguya-sama -かぐや様",
		"- Chapter 3",
		"Кровь -x",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			once := Normalize(input)
			assert.Equal(t, once, Normalize(once))
			assert.False(t, strings.HasPrefix(once, "-"), "leading hyphen in %q", once)
			assert.False(t, strings.HasSuffix(once, "-"), "trailing hyphen in %q", once)
		})
	}
}

func TestDetectScript(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ScriptLatin, DetectScript("naruto"))
	assert.Equal(t, ScriptLatin, DetectScript("pokémon"))
	assert.Equal(t, ScriptCyrillic, DetectScript("кровь"))
	assert.Equal(t, ScriptCJK, DetectScript("進撃の巨人"))
	assert.Equal(t, ScriptGreek, DetectScript("αβγ"))
	assert.Equal(t, ScriptThai, DetectScript("สวัสดี"))
}

func TestPlanQueries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		normalized string
		expected   Plan
	}{
		{
			name:       "empty",
			normalized: "",
			expected:   Plan{},
		},
		{
			name:       "single token",
			normalized: "naruto",
			expected:   Plan{"naruto"},
		},
		{
			name:       "two tokens",
			normalized: "naruto vol",
			expected:   Plan{"naruto vol", "naruto"},
		},
		{
			name:       "longest tokens differ from leading tokens",
			normalized: "the rising of the shield hero",
			expected: Plan{
				"the rising of the shield hero",
				"rising shield",
				"rising",
				"the rising",
				"the",
			},
		},
		{
			name:       "longest token leads the pair",
			normalized: "one piece",
			expected:   Plan{"one piece", "piece one", "piece", "one"},
		},
		{
			name:       "ties keep original order",
			normalized: "abc def gh",
			expected:   Plan{"abc def gh", "abc def", "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, PlanQueries(tt.normalized))
		})
	}
}

func TestPlanWithExtra(t *testing.T) {
	t.Parallel()

	plan := PlanQueries("one piece")
	assert.Equal(t, plan, plan.WithExtra("  "))
	assert.Equal(t, Plan{"one piece", "piece one", "piece", "one"}, plan)
	assert.Equal(t,
		Plan{"one piece manga", "piece one manga", "piece manga", "one manga"},
		plan.WithExtra(" manga "))
}
