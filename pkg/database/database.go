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

package database

import (
	"context"
	"errors"
)

/*
 * Records shared by the library database, the sources and the migration
 * engine. Concrete storage lives in librarydb.
 */

// UnrecognizedNumber marks a chapter whose number could not be parsed from
// its name.
const UnrecognizedNumber = -1.0

var ErrNotFound = errors.New("record not found")

// Work is a cataloged title on a specific source. Two works on different
// sources are never the same work, whatever their titles say.
type Work struct {
	URL          string
	Title        string
	Notes        string
	ID           int64
	SourceID     int64
	ChapterFlags int64
	ViewerFlags  int64
	// DateAdded is unix milliseconds, 0 when the work is not in the library.
	DateAdded int64
	Favorite  bool
}

type Chapter struct {
	URL           string
	Name          string
	Scanlator     string
	ID            int64
	WorkID        int64
	ChapterNumber float64
	SourceOrder   int64
	LastPageRead  int64
	DateFetch     int64
	DateUpload    int64
	Read          bool
	Bookmark      bool
}

// Recognized reports whether a chapter number was parsed for this chapter.
func (c *Chapter) Recognized() bool {
	return c.ChapterNumber >= 0
}

type Category struct {
	Name  string
	ID    int64
	Order int64
}

// TrackRecord links a work to an entry on an external progress tracking
// service. A work has at most one record per service.
type TrackRecord struct {
	Title           string
	Status          string
	RemoteURL       string
	LibraryID       *int64
	ID              int64
	WorkID          int64
	ServiceID       int64
	RemoteID        int64
	TotalChapters   int64
	StartDate       int64
	FinishDate      int64
	LastChapterRead float64
	Score           float64
}

// WorkUpdate is a partial update of a work. Nil fields are left untouched.
type WorkUpdate struct {
	Favorite     *bool
	ChapterFlags *int64
	ViewerFlags  *int64
	DateAdded    *int64
	Notes        *string
	ID           int64
}

// ChapterUpdate is a partial update of a chapter. Nil fields are left
// untouched.
type ChapterUpdate struct {
	Read      *bool
	Bookmark  *bool
	DateFetch *int64
	ID        int64
}

// IsEmpty reports whether the update would not change anything.
func (u *ChapterUpdate) IsEmpty() bool {
	return u.Read == nil && u.Bookmark == nil && u.DateFetch == nil
}

/*
 * Repository contracts. The migration engine only needs these narrow
 * views of the storage layer; every mutation is a batch so the
 * implementation can apply it in one transaction.
 */

type WorkRepository interface {
	GetWork(ctx context.Context, id int64) (Work, error)
	BatchUpdate(ctx context.Context, updates []WorkUpdate) error
}

type ChapterRepository interface {
	ListByWork(ctx context.Context, workID int64) ([]Chapter, error)
	BatchUpdate(ctx context.Context, updates []ChapterUpdate) error
	// Sync merges a freshly fetched chapter list into storage for the given
	// work and returns the number of newly inserted chapters.
	Sync(ctx context.Context, workID int64, fetched []Chapter) (int, error)
}

type CategoryRepository interface {
	ListByWork(ctx context.Context, workID int64) ([]int64, error)
	SetForWork(ctx context.Context, workID int64, categoryIDs []int64) error
}

type TrackRepository interface {
	ListByWork(ctx context.Context, workID int64) ([]TrackRecord, error)
	BatchUpsert(ctx context.Context, records []TrackRecord) error
}

type GenericDBI interface {
	Open() error
	Allocate() error
	MigrateUp() error
	Vacuum(ctx context.Context) error
	Close() error
	GetDBPath() string
}
