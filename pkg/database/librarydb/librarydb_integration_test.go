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

package librarydb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/database/librarydb"
	"github.com/ZaparooProject/shelfmove/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func int64Ptr(i int64) *int64 { return &i }

func strPtr(s string) *string { return &s }

func TestWorks_InsertGetAndBatchUpdate(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()
	works := db.Works()

	w, err := works.InsertWork(ctx, database.Work{
		SourceID:  1,
		URL:       "/title/naruto",
		Title:     "Naruto",
		Favorite:  true,
		Notes:     "reread arc 2",
		DateAdded: 1000,
	})
	require.NoError(t, err)
	require.NotZero(t, w.ID)

	err = works.BatchUpdate(ctx, []database.WorkUpdate{{
		ID:        w.ID,
		Favorite:  boolPtr(false),
		DateAdded: int64Ptr(0),
	}})
	require.NoError(t, err)

	got, err := works.GetWork(ctx, w.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorite)
	assert.Equal(t, int64(0), got.DateAdded)
	assert.Equal(t, "reread arc 2", got.Notes, "unset fields must be left alone")
	assert.Equal(t, "Naruto", got.Title)
}

func TestWorks_NotFound(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()

	_, err := db.Works().GetWork(ctx, 404)
	require.ErrorIs(t, err, database.ErrNotFound)

	_, err = db.Works().FindWork(ctx, 1, "/nope")
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestWorks_ListFavorites(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()
	works := db.Works()

	_, err := works.InsertWork(ctx, database.Work{SourceID: 1, URL: "/b", Title: "Bleach", Favorite: true})
	require.NoError(t, err)
	_, err = works.InsertWork(ctx, database.Work{SourceID: 1, URL: "/a", Title: "Akira", Favorite: true})
	require.NoError(t, err)
	_, err = works.InsertWork(ctx, database.Work{SourceID: 1, URL: "/c", Title: "Claymore"})
	require.NoError(t, err)

	favs, err := works.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Akira", favs[0].Title)
	assert.Equal(t, "Bleach", favs[1].Title)
}

func TestChapters_SyncKeepsUserState(t *testing.T) {
	t.Parallel()
	db, clock := helpers.NewTempLibraryDB(t)
	ctx := context.Background()

	w, err := db.Works().InsertWork(ctx, database.Work{SourceID: 2, URL: "/w", Title: "W"})
	require.NoError(t, err)

	chapters := db.Chapters()
	added, err := chapters.Sync(ctx, w.ID, []database.Chapter{
		{URL: "/w/1", Name: "Chapter 1", ChapterNumber: 1},
		{URL: "/w/2", Name: "Chapter 2", ChapterNumber: 2, DateFetch: 42},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	list, err := chapters.ListByWork(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, clock.Now().UnixMilli(), list[0].DateFetch)
	assert.Equal(t, int64(42), list[1].DateFetch)

	err = chapters.BatchUpdate(ctx, []database.ChapterUpdate{
		{ID: list[0].ID, Read: boolPtr(true), Bookmark: boolPtr(true)},
	})
	require.NoError(t, err)

	added, err = chapters.Sync(ctx, w.ID, []database.Chapter{
		{URL: "/w/1", Name: "Ch. 1 - Renamed", ChapterNumber: 1},
		{URL: "/w/3", Name: "Chapter 3", ChapterNumber: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	list, err = chapters.ListByWork(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	byURL := make(map[string]database.Chapter)
	for _, ch := range list {
		byURL[ch.URL] = ch
	}
	first := byURL["/w/1"]
	assert.Equal(t, "Ch. 1 - Renamed", first.Name)
	assert.True(t, first.Read)
	assert.True(t, first.Bookmark)
	assert.Equal(t, clock.Now().UnixMilli(), first.DateFetch)
}

func TestChapters_BatchUpdatePartial(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()

	w, err := db.Works().InsertWork(ctx, database.Work{SourceID: 2, URL: "/w", Title: "W"})
	require.NoError(t, err)
	_, err = db.Chapters().Sync(ctx, w.ID, []database.Chapter{
		{URL: "/w/1", Name: "Chapter 1", ChapterNumber: 1, DateFetch: 10},
	})
	require.NoError(t, err)

	list, err := db.Chapters().ListByWork(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = db.Chapters().BatchUpdate(ctx, []database.ChapterUpdate{
		{ID: list[0].ID, DateFetch: int64Ptr(99)},
		{ID: list[0].ID},
	})
	require.NoError(t, err)

	list, err = db.Chapters().ListByWork(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(99), list[0].DateFetch)
	assert.False(t, list[0].Read)
	assert.InDelta(t, 1.0, list[0].ChapterNumber, 0)
}

func TestCategories_SetForWorkReplacesMembership(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()
	cats := db.Categories()

	w, err := db.Works().InsertWork(ctx, database.Work{SourceID: 1, URL: "/w", Title: "W"})
	require.NoError(t, err)
	reading, err := cats.InsertCategory(ctx, database.Category{Name: "Reading", Order: 1})
	require.NoError(t, err)
	done, err := cats.InsertCategory(ctx, database.Category{Name: "Done", Order: 0})
	require.NoError(t, err)

	require.NoError(t, cats.SetForWork(ctx, w.ID, []int64{reading.ID, done.ID, done.ID}))
	ids, err := cats.ListByWork(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{done.ID, reading.ID}, ids)

	require.NoError(t, cats.SetForWork(ctx, w.ID, []int64{reading.ID}))
	ids, err = cats.ListByWork(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{reading.ID}, ids)

	require.NoError(t, cats.SetForWork(ctx, w.ID, nil))
	ids, err = cats.ListByWork(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTracks_UpsertByWorkAndService(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()
	tracks := db.Tracks()

	from, err := db.Works().InsertWork(ctx, database.Work{SourceID: 1, URL: "/from", Title: "From"})
	require.NoError(t, err)
	to, err := db.Works().InsertWork(ctx, database.Work{SourceID: 2, URL: "/to", Title: "To"})
	require.NoError(t, err)

	lib := int64(77)
	require.NoError(t, tracks.BatchUpsert(ctx, []database.TrackRecord{
		{WorkID: from.ID, ServiceID: 1, RemoteID: 100, LibraryID: &lib, LastChapterRead: 12},
		{WorkID: from.ID, ServiceID: 2, RemoteID: 200, Status: "reading"},
	}))

	list, err := tracks.ListByWork(ctx, from.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].LibraryID)
	assert.Equal(t, int64(77), *list[0].LibraryID)
	assert.Nil(t, list[1].LibraryID)

	moved := list[0]
	moved.WorkID = to.ID
	moved.LastChapterRead = 13
	require.NoError(t, tracks.BatchUpsert(ctx, []database.TrackRecord{moved}))
	require.NoError(t, tracks.BatchUpsert(ctx, []database.TrackRecord{moved}))

	onTarget, err := tracks.ListByWork(ctx, to.ID)
	require.NoError(t, err)
	require.Len(t, onTarget, 1)
	assert.InDelta(t, 13.0, onTarget[0].LastChapterRead, 0)
	assert.Equal(t, int64(100), onTarget[0].RemoteID)

	onSource, err := tracks.ListByWork(ctx, from.ID)
	require.NoError(t, err)
	assert.Len(t, onSource, 2)
}

func TestWorks_NotesUpdate(t *testing.T) {
	t.Parallel()
	db, _ := helpers.NewTempLibraryDB(t)
	ctx := context.Background()

	w, err := db.Works().InsertWork(ctx, database.Work{SourceID: 1, URL: "/w", Title: "W"})
	require.NoError(t, err)
	require.NoError(t, db.Works().BatchUpdate(ctx, []database.WorkUpdate{
		{ID: w.ID, Notes: strPtr("migrated"), ChapterFlags: int64Ptr(3), ViewerFlags: int64Ptr(5)},
	}))

	got, err := db.Works().GetWork(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "migrated", got.Notes)
	assert.Equal(t, int64(3), got.ChapterFlags)
	assert.Equal(t, int64(5), got.ViewerFlags)
}

func TestLibraryDB_ReopenAndVacuum(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx := context.Background()

	db, err := librarydb.OpenLibraryDB(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, librarydb.DBFile), db.GetDBPath())

	w, err := db.Works().InsertWork(ctx, database.Work{SourceID: 3, URL: "/berserk", Title: "Berserk"})
	require.NoError(t, err)
	require.NoError(t, db.Vacuum(ctx))
	require.NoError(t, db.Close())

	// an existing file is migrated rather than allocated
	db, err = librarydb.OpenLibraryDB(dir)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	got, err := db.Works().GetWork(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Berserk", got.Title)
}
