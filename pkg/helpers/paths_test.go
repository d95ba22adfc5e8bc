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

package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "Naruto", expected: "Naruto"},
		{input: "Fate/Zero", expected: "Fate-Zero"},
		{input: "Re:Zero?", expected: "Re-Zero"},
		{input: "  spaced\tout  ", expected: "spaced out"},
		{input: "trailing...", expected: "trailing"},
		{input: "..", expected: "_"},
		{input: "", expected: "_"},
		{input: `<"|>`, expected: "_"},
		{input: "進撃の巨人", expected: "進撃の巨人"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SanitizeFileName(tt.input))
		})
	}
}
