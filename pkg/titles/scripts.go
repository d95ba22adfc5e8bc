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

// ScriptType is the writing system a title is mostly written in. It decides
// which Unicode clean-up is safe before comparison.
type ScriptType int

const (
	ScriptLatin ScriptType = iota
	ScriptCJK
	ScriptCyrillic
	ScriptGreek
	ScriptIndic
	ScriptArabic
	ScriptHebrew
	ScriptThai
	ScriptOther
)

// DetectScript returns the script of the first non-Latin character in s,
// or ScriptLatin.
func DetectScript(s string) ScriptType {
	if isASCII(s) {
		return ScriptLatin
	}
	for _, r := range s {
		if script := scriptOf(r); script != ScriptLatin {
			return script
		}
	}
	return ScriptLatin
}

func scriptOf(r rune) ScriptType {
	switch {
	case r < 0x0370:
		return ScriptLatin
	case (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x3040 && r <= 0x30FF) || // Hiragana, Katakana
		(r >= 0xAC00 && r <= 0xD7A3) || // Hangul
		r == 0x3005:
		return ScriptCJK
	case r >= 0x0400 && r <= 0x04FF:
		return ScriptCyrillic
	case r >= 0x0370 && r <= 0x03FF:
		return ScriptGreek
	case r >= 0x0900 && r <= 0x0DFF:
		return ScriptIndic
	case r >= 0x0600 && r <= 0x06FF:
		return ScriptArabic
	case r >= 0x0590 && r <= 0x05FF:
		return ScriptHebrew
	case r >= 0x0E00 && r <= 0x0E7F:
		return ScriptThai
	case r >= 0x1000 && r <= 0x137F:
		return ScriptOther
	default:
		return ScriptLatin
	}
}

// stripsDiacritics reports whether combining marks on letters of this
// script can be dropped without changing what the title says. Indic, Thai
// and kana marks carry meaning.
func stripsDiacritics(script ScriptType) bool {
	switch script {
	case ScriptLatin, ScriptCyrillic, ScriptGreek:
		return true
	default:
		return false
	}
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}
