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
	"testing"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"pgregory.net/rapid"
)

func chapterGen(idBase int64) *rapid.Generator[database.Chapter] {
	return rapid.Custom(func(t *rapid.T) database.Chapter {
		number := float64(rapid.IntRange(-1, 12).Draw(t, "number"))
		if number < 0 {
			number = database.UnrecognizedNumber
		}
		return database.Chapter{
			ID:            idBase + rapid.Int64Range(0, 1000).Draw(t, "id"),
			ChapterNumber: number,
			Read:          rapid.Bool().Draw(t, "read"),
			Bookmark:      rapid.Bool().Draw(t, "bookmark"),
			DateFetch:     rapid.Int64Range(0, 10).Draw(t, "dateFetch"),
		}
	})
}

// TestPropertyCorrespondReadThreshold verifies every recognized target chapter
// at or below the highest read source number ends up read, and no other
// chapter is marked read.
func TestPropertyCorrespondReadThreshold(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.SliceOfN(chapterGen(0), 0, 10).Draw(t, "source")
		target := rapid.SliceOfN(chapterGen(10000), 0, 10).Draw(t, "target")

		result := Correspond(source, target)

		markedRead := make(map[int64]bool)
		for _, u := range result.Updates {
			if u.Read != nil && *u.Read {
				markedRead[u.ID] = true
			}
		}

		for _, tc := range target {
			shouldBeRead := tc.Recognized() && result.MaxReadNumber != nil &&
				tc.ChapterNumber <= *result.MaxReadNumber
			if shouldBeRead && !tc.Read && !markedRead[tc.ID] {
				t.Fatalf("chapter %d (%v) not marked read, max %v", tc.ID, tc.ChapterNumber, *result.MaxReadNumber)
			}
			if !shouldBeRead && markedRead[tc.ID] {
				// IDs may repeat; only fail if no chapter with this ID qualifies
				qualifies := false
				for _, other := range target {
					if other.ID == tc.ID && other.Recognized() && result.MaxReadNumber != nil &&
						other.ChapterNumber <= *result.MaxReadNumber {
						qualifies = true
					}
				}
				if !qualifies {
					t.Fatalf("chapter %d (%v) marked read unexpectedly", tc.ID, tc.ChapterNumber)
				}
			}
		}
	})
}

// TestPropertyCorrespondOnlyRecognizedTargets verifies updates never touch
// unrecognized target chapters and are never empty.
func TestPropertyCorrespondOnlyRecognizedTargets(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.SliceOfN(chapterGen(0), 0, 10).Draw(t, "source")
		target := rapid.SliceOfN(chapterGen(10000), 0, 10).Draw(t, "target")

		recognized := make(map[int64]bool)
		for _, tc := range target {
			if tc.Recognized() {
				recognized[tc.ID] = true
			}
		}

		result := Correspond(source, target)
		if len(result.Updates) > len(target) {
			t.Fatalf("%d updates for %d target chapters", len(result.Updates), len(target))
		}
		for _, u := range result.Updates {
			if !recognized[u.ID] {
				t.Fatalf("update for unrecognized chapter %d", u.ID)
			}
			if u.IsEmpty() {
				t.Fatalf("empty update for chapter %d", u.ID)
			}
		}
	})
}
