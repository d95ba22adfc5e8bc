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

package librarydb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNullSQL = errors.New("LibraryDB is not connected")

const (
	DBFile           = "library.db"
	sqliteConnParams = "?_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000&_foreign_keys=ON"
)

// LibraryDB is the SQLite store for works, chapters, categories and
// tracking records. Each repository contract is served by its own view
// since several of them share method names.
type LibraryDB struct {
	sql   *sql.DB
	clock clockwork.Clock
	path  string
}

var _ database.GenericDBI = (*LibraryDB)(nil)

func OpenLibraryDB(dataDir string) (*LibraryDB, error) {
	db := &LibraryDB{
		path:  filepath.Join(dataDir, DBFile),
		clock: clockwork.NewRealClock(),
	}
	err := db.Open()
	return db, err
}

func (db *LibraryDB) Open() error {
	exists := true
	_, err := os.Stat(db.path)
	if err != nil {
		exists = false
		mkdirErr := os.MkdirAll(filepath.Dir(db.path), 0o750)
		if mkdirErr != nil {
			return fmt.Errorf("failed to create directory for database: %w", mkdirErr)
		}
	}
	sqlInstance, err := sql.Open("sqlite3", db.path+sqliteConnParams)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.sql = sqlInstance
	if !exists {
		return db.Allocate()
	}
	return db.MigrateUp()
}

func (db *LibraryDB) GetDBPath() string {
	return db.path
}

func (db *LibraryDB) Allocate() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlAllocate(db.sql)
}

func (db *LibraryDB) MigrateUp() error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlMigrateUp(db.sql)
}

// Vacuum rebuilds the database file, reclaiming space left by deleted
// rows.
func (db *LibraryDB) Vacuum(ctx context.Context) error {
	if db.sql == nil {
		return ErrNullSQL
	}
	return sqlVacuum(ctx, db.sql)
}

func (db *LibraryDB) Close() error {
	if db.sql == nil {
		return nil
	}
	err := db.sql.Close()
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// SetSQLForTesting allows injection of a sql.DB instance for testing purposes.
// The schema is allocated on the injected connection.
func (db *LibraryDB) SetSQLForTesting(sqlDB *sql.DB, clock clockwork.Clock) error {
	db.sql = sqlDB
	db.clock = clock
	return db.Allocate()
}

// Works returns the work repository view.
func (db *LibraryDB) Works() *WorkStore {
	return &WorkStore{db: db}
}

// Chapters returns the chapter repository view.
func (db *LibraryDB) Chapters() *ChapterStore {
	return &ChapterStore{db: db}
}

// Categories returns the category repository view.
func (db *LibraryDB) Categories() *CategoryStore {
	return &CategoryStore{db: db}
}

// Tracks returns the tracking record repository view.
func (db *LibraryDB) Tracks() *TrackStore {
	return &TrackStore{db: db}
}

type WorkStore struct {
	db *LibraryDB
}

var _ database.WorkRepository = (*WorkStore)(nil)

func (s *WorkStore) GetWork(ctx context.Context, id int64) (database.Work, error) {
	if s.db.sql == nil {
		return database.Work{}, ErrNullSQL
	}
	return sqlGetWork(ctx, s.db.sql, id)
}

func (s *WorkStore) FindWork(ctx context.Context, sourceID int64, url string) (database.Work, error) {
	if s.db.sql == nil {
		return database.Work{}, ErrNullSQL
	}
	return sqlFindWork(ctx, s.db.sql, sourceID, url)
}

// InsertWork stores a new work and returns it with its assigned ID. Works
// are created by whoever resolves a title on a source, never by the
// migration itself.
//
//nolint:gocritic // struct passed for DB insertion
func (s *WorkStore) InsertWork(ctx context.Context, w database.Work) (database.Work, error) {
	if s.db.sql == nil {
		return w, ErrNullSQL
	}
	return sqlInsertWork(ctx, s.db.sql, w)
}

func (s *WorkStore) ListFavorites(ctx context.Context) ([]database.Work, error) {
	if s.db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlListFavoriteWorks(ctx, s.db.sql)
}

func (s *WorkStore) BatchUpdate(ctx context.Context, updates []database.WorkUpdate) error {
	if s.db.sql == nil {
		return ErrNullSQL
	}
	return sqlBatchUpdateWorks(ctx, s.db.sql, updates)
}

type ChapterStore struct {
	db *LibraryDB
}

var _ database.ChapterRepository = (*ChapterStore)(nil)

func (s *ChapterStore) ListByWork(ctx context.Context, workID int64) ([]database.Chapter, error) {
	if s.db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlListChapters(ctx, s.db.sql, workID)
}

func (s *ChapterStore) BatchUpdate(ctx context.Context, updates []database.ChapterUpdate) error {
	if s.db.sql == nil {
		return ErrNullSQL
	}
	return sqlBatchUpdateChapters(ctx, s.db.sql, updates)
}

func (s *ChapterStore) Sync(ctx context.Context, workID int64, fetched []database.Chapter) (int, error) {
	if s.db.sql == nil {
		return 0, ErrNullSQL
	}
	return sqlSyncChapters(ctx, s.db.sql, workID, fetched, s.db.clock.Now().UnixMilli())
}

type CategoryStore struct {
	db *LibraryDB
}

var _ database.CategoryRepository = (*CategoryStore)(nil)

func (s *CategoryStore) ListByWork(ctx context.Context, workID int64) ([]int64, error) {
	if s.db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlListWorkCategories(ctx, s.db.sql, workID)
}

func (s *CategoryStore) SetForWork(ctx context.Context, workID int64, categoryIDs []int64) error {
	if s.db.sql == nil {
		return ErrNullSQL
	}
	return sqlSetWorkCategories(ctx, s.db.sql, workID, categoryIDs)
}

func (s *CategoryStore) InsertCategory(ctx context.Context, c database.Category) (database.Category, error) {
	if s.db.sql == nil {
		return c, ErrNullSQL
	}
	return sqlInsertCategory(ctx, s.db.sql, c)
}

type TrackStore struct {
	db *LibraryDB
}

var _ database.TrackRepository = (*TrackStore)(nil)

func (s *TrackStore) ListByWork(ctx context.Context, workID int64) ([]database.TrackRecord, error) {
	if s.db.sql == nil {
		return nil, ErrNullSQL
	}
	return sqlListTracks(ctx, s.db.sql, workID)
}

func (s *TrackStore) BatchUpsert(ctx context.Context, records []database.TrackRecord) error {
	if s.db.sql == nil {
		return ErrNullSQL
	}
	return sqlUpsertTracks(ctx, s.db.sql, records)
}
