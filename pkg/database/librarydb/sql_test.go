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
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ZaparooProject/shelfmove/pkg/database"
	testsqlmock "github.com/ZaparooProject/shelfmove/pkg/testing/sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskIO = errors.New("disk I/O error")

func TestSqlBatchUpdateChapters_RollsBackOnError(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	read := true
	mock.ExpectBegin()
	mock.ExpectPrepare(`update Chapters set`).
		ExpectExec().
		WithArgs(true, nil, nil, int64(7)).
		WillReturnError(errDiskIO)
	mock.ExpectRollback()

	err = sqlBatchUpdateChapters(context.Background(), db, []database.ChapterUpdate{
		{ID: 7, Read: &read},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, errDiskIO)
	assert.Contains(t, err.Error(), "failed to execute chapter update for 7")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlBatchUpdateChapters_SkipsEmptyUpdates(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	fetch := int64(5)
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`update Chapters set`)
	prep.ExpectExec().
		WithArgs(nil, nil, int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = sqlBatchUpdateChapters(context.Background(), db, []database.ChapterUpdate{
		{ID: 1},
		{ID: 2, DateFetch: &fetch},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlBatchUpdateWorks_NoUpdatesIsNoop(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, sqlBatchUpdateWorks(context.Background(), db, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlBatchUpdateWorks_CommitFailure(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	fav := true
	mock.ExpectBegin()
	mock.ExpectPrepare(`update Works set`).
		ExpectExec().
		WithArgs(true, nil, nil, nil, nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errDiskIO)

	err = sqlBatchUpdateWorks(context.Background(), db, []database.WorkUpdate{
		{ID: 3, Favorite: &fav},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlGetWork_NoRows(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`select .* from Works where DBID = \?`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"DBID", "SourceID", "URL", "Title", "Favorite",
			"ChapterFlags", "ViewerFlags", "Notes", "DateAdded",
		}))

	_, err = sqlGetWork(context.Background(), db, 9)
	require.ErrorIs(t, err, database.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlSetWorkCategories_ClearOnly(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(`delete from WorkCategories where WorkDBID = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, sqlSetWorkCategories(context.Background(), db, 3, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlUpsertTracks_PrepareFailure(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectPrepare(`insert into Tracks`).WillReturnError(errDiskIO)
	mock.ExpectRollback()

	err = sqlUpsertTracks(context.Background(), db, []database.TrackRecord{{WorkID: 1, ServiceID: 2}})
	require.ErrorIs(t, err, errDiskIO)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlSyncChapters_QueryFailure(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`select URL from Chapters`).
		WithArgs(int64(4)).
		WillReturnError(errDiskIO)

	added, err := sqlSyncChapters(context.Background(), db, 4, []database.Chapter{{URL: "/x"}}, 1)
	require.ErrorIs(t, err, errDiskIO)
	assert.Zero(t, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLibraryDB_NullSQL(t *testing.T) {
	t.Parallel()
	db := &LibraryDB{}
	ctx := context.Background()

	_, err := db.Chapters().ListByWork(ctx, 1)
	require.ErrorIs(t, err, ErrNullSQL)
	require.ErrorIs(t, db.Works().BatchUpdate(ctx, nil), ErrNullSQL)
	require.ErrorIs(t, db.Tracks().BatchUpsert(ctx, nil), ErrNullSQL)
	require.ErrorIs(t, db.Vacuum(ctx), ErrNullSQL)
	require.NoError(t, db.Close())
}

func TestSqlVacuum_ExecFailure(t *testing.T) {
	t.Parallel()
	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("vacuum").WillReturnError(errDiskIO)

	err = sqlVacuum(context.Background(), db)
	require.ErrorIs(t, err, errDiskIO)
	assert.Contains(t, err.Error(), "failed to vacuum database")
	assert.NoError(t, mock.ExpectationsWereMet())
}
