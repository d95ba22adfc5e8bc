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
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZaparooProject/shelfmove/pkg/database/librarydb"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"
)

// FixedNow is the instant the fake clock of test databases starts at.
var FixedNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

// NewTempLibraryDB opens a library database in a temp file with the schema
// allocated and a fake clock. The database is closed when the test ends.
func NewTempLibraryDB(t *testing.T) (*librarydb.LibraryDB, *clockwork.FakeClock) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "library_test.db")

	// temp file rather than :memory: so every pooled connection sees the
	// same database
	sqlDB, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=ON")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	clock := clockwork.NewFakeClockAt(FixedNow)
	db := &librarydb.LibraryDB{}
	if err := db.SetSQLForTesting(sqlDB, clock); err != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			t.Errorf("Failed to close SQL database after setup error: %v", closeErr)
		}
		t.Fatalf("Failed to set up LibraryDB for testing: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close LibraryDB: %v", err)
		}
	})

	return db, clock
}
