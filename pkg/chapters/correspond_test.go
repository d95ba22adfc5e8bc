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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ch(id int64, number float64) database.Chapter {
	return database.Chapter{ID: id, ChapterNumber: number}
}

func updatesByID(updates []database.ChapterUpdate) map[int64]database.ChapterUpdate {
	out := make(map[int64]database.ChapterUpdate, len(updates))
	for _, u := range updates {
		out[u.ID] = u
	}
	return out
}

func TestCorrespondReadCarriesForward(t *testing.T) {
	t.Parallel()

	read := ch(1, 5)
	read.Read = true
	source := []database.Chapter{read}
	target := []database.Chapter{ch(10, 4), ch(11, 5), ch(12, 6)}

	result := Correspond(source, target)

	require.NotNil(t, result.MaxReadNumber)
	assert.InDelta(t, 5.0, *result.MaxReadNumber, 1e-9)

	updates := updatesByID(result.Updates)
	require.Contains(t, updates, int64(10))
	require.Contains(t, updates, int64(11))
	assert.NotContains(t, updates, int64(12))
	assert.True(t, *updates[10].Read)
	assert.True(t, *updates[11].Read)
}

func TestCorrespondCopiesFetchDateAndBookmark(t *testing.T) {
	t.Parallel()

	src := ch(1, 3)
	src.DateFetch = 1700000000000
	src.Bookmark = true
	target := ch(20, 3)
	target.DateFetch = 1800000000000

	result := Correspond([]database.Chapter{src}, []database.Chapter{target})

	assert.Nil(t, result.MaxReadNumber)
	require.Len(t, result.Updates, 1)
	u := result.Updates[0]
	assert.Equal(t, int64(20), u.ID)
	require.NotNil(t, u.DateFetch)
	assert.Equal(t, int64(1700000000000), *u.DateFetch)
	require.NotNil(t, u.Bookmark)
	assert.True(t, *u.Bookmark)
	assert.Nil(t, u.Read)
}

func TestCorrespondExactNumbersOnly(t *testing.T) {
	t.Parallel()

	src := ch(1, 10.5)
	src.Bookmark = true

	result := Correspond([]database.Chapter{src}, []database.Chapter{ch(2, 10), ch(3, 11)})

	assert.Empty(t, result.Updates)
}

func TestCorrespondUnrecognizedSkipped(t *testing.T) {
	t.Parallel()

	srcUnknown := ch(1, database.UnrecognizedNumber)
	srcUnknown.Read = true
	srcUnknown.Bookmark = true
	srcRead := ch(2, 2)
	srcRead.Read = true

	targetUnknown := ch(10, database.UnrecognizedNumber)

	result := Correspond(
		[]database.Chapter{srcUnknown, srcRead},
		[]database.Chapter{targetUnknown, ch(11, 1)},
	)

	require.NotNil(t, result.MaxReadNumber)
	assert.InDelta(t, 2.0, *result.MaxReadNumber, 1e-9)
	updates := updatesByID(result.Updates)
	assert.NotContains(t, updates, int64(10))
	assert.True(t, *updates[11].Read)
}

func TestCorrespondOneToOne(t *testing.T) {
	t.Parallel()

	first := ch(1, 7)
	first.Bookmark = true
	second := ch(2, 7)
	second.DateFetch = 42

	// two target chapters share a number; each claims a different source
	result := Correspond(
		[]database.Chapter{first, second},
		[]database.Chapter{ch(10, 7), ch(11, 7), ch(12, 7)},
	)

	updates := updatesByID(result.Updates)
	require.Contains(t, updates, int64(10))
	assert.True(t, *updates[10].Bookmark)
	assert.Nil(t, updates[10].DateFetch)

	require.Contains(t, updates, int64(11))
	assert.Nil(t, updates[11].Bookmark)
	assert.Equal(t, int64(42), *updates[11].DateFetch)

	assert.NotContains(t, updates, int64(12))
}

func TestCorrespondSkipsAlreadyRead(t *testing.T) {
	t.Parallel()

	src := ch(1, 3)
	src.Read = true
	target := ch(2, 1)
	target.Read = true

	result := Correspond([]database.Chapter{src}, []database.Chapter{target})

	assert.Empty(t, result.Updates)
}

func TestCorrespondEmpty(t *testing.T) {
	t.Parallel()

	result := Correspond(nil, nil)
	assert.Nil(t, result.MaxReadNumber)
	assert.Empty(t, result.Updates)
}
