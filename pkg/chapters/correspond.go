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

// Package chapters relates the chapter lists of two sources by chapter
// number.
package chapters

import (
	"github.com/ZaparooProject/shelfmove/pkg/database"
)

// Correspondence is the state carried from one chapter list to another.
type Correspondence struct {
	// MaxReadNumber is the highest recognized number among read source
	// chapters, nil when nothing was read.
	MaxReadNumber *float64
	// Updates holds one entry per target chapter whose state changes.
	Updates []database.ChapterUpdate
}

// Correspond carries reading state from source chapters onto target
// chapters. A recognized target chapter takes the fetch date and
// bookmark of the first unclaimed source chapter with exactly the same
// number, and every recognized target chapter at or below the highest
// read source number is marked read. Chapters with unrecognized numbers
// take part in neither.
func Correspond(source, target []database.Chapter) Correspondence {
	var result Correspondence

	byNumber := make(map[float64][]database.Chapter, len(source))
	for _, ch := range source {
		if !ch.Recognized() {
			continue
		}
		byNumber[ch.ChapterNumber] = append(byNumber[ch.ChapterNumber], ch)
		if ch.Read && (result.MaxReadNumber == nil || ch.ChapterNumber > *result.MaxReadNumber) {
			n := ch.ChapterNumber
			result.MaxReadNumber = &n
		}
	}

	for _, tc := range target {
		if !tc.Recognized() {
			continue
		}

		update := database.ChapterUpdate{ID: tc.ID}

		if matches := byNumber[tc.ChapterNumber]; len(matches) > 0 {
			sc := matches[0]
			byNumber[tc.ChapterNumber] = matches[1:]
			if sc.DateFetch != tc.DateFetch {
				dateFetch := sc.DateFetch
				update.DateFetch = &dateFetch
			}
			if sc.Bookmark != tc.Bookmark {
				bookmark := sc.Bookmark
				update.Bookmark = &bookmark
			}
		}

		if result.MaxReadNumber != nil && tc.ChapterNumber <= *result.MaxReadNumber && !tc.Read {
			read := true
			update.Read = &read
		}

		if !update.IsEmpty() {
			result.Updates = append(result.Updates, update)
		}
	}

	return result
}
