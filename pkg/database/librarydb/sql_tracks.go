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
	"fmt"

	"github.com/ZaparooProject/shelfmove/pkg/database"
)

func sqlListTracks(ctx context.Context, db *sql.DB, workID int64) ([]database.TrackRecord, error) {
	rows, err := db.QueryContext(ctx, `
		select
		DBID, WorkDBID, ServiceID, RemoteID, LibraryID, Title, LastChapterRead,
		TotalChapters, Status, Score, RemoteURL, StartDate, FinishDate
		from Tracks
		where WorkDBID = ?
		order by ServiceID;
	`, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer closeRows(rows)

	list := make([]database.TrackRecord, 0)
	for rows.Next() {
		t := database.TrackRecord{}
		var libraryID sql.NullInt64
		scanErr := rows.Scan(
			&t.ID,
			&t.WorkID,
			&t.ServiceID,
			&t.RemoteID,
			&libraryID,
			&t.Title,
			&t.LastChapterRead,
			&t.TotalChapters,
			&t.Status,
			&t.Score,
			&t.RemoteURL,
			&t.StartDate,
			&t.FinishDate,
		)
		if scanErr != nil {
			return list, fmt.Errorf("failed to scan track row: %w", scanErr)
		}
		if libraryID.Valid {
			id := libraryID.Int64
			t.LibraryID = &id
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return list, fmt.Errorf("error iterating track rows: %w", err)
	}
	return list, nil
}

// sqlUpsertTracks writes records keyed by (work, service). Record IDs are
// ignored so a record re-pointed at another work lands as that work's row
// and the original work keeps its own.
func sqlUpsertTracks(ctx context.Context, db *sql.DB, records []database.TrackRecord) error {
	if len(records) == 0 {
		return nil
	}
	return withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			insert into Tracks(
				WorkDBID, ServiceID, RemoteID, LibraryID, Title, LastChapterRead,
				TotalChapters, Status, Score, RemoteURL, StartDate, FinishDate
			) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			on conflict (WorkDBID, ServiceID) do update set
				RemoteID = excluded.RemoteID,
				LibraryID = excluded.LibraryID,
				Title = excluded.Title,
				LastChapterRead = excluded.LastChapterRead,
				TotalChapters = excluded.TotalChapters,
				Status = excluded.Status,
				Score = excluded.Score,
				RemoteURL = excluded.RemoteURL,
				StartDate = excluded.StartDate,
				FinishDate = excluded.FinishDate;
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare track upsert statement: %w", err)
		}
		defer closeStmt(stmt)

		for i := range records {
			t := &records[i]
			_, err := stmt.ExecContext(ctx,
				t.WorkID,
				t.ServiceID,
				t.RemoteID,
				nullable(t.LibraryID),
				t.Title,
				t.LastChapterRead,
				t.TotalChapters,
				t.Status,
				t.Score,
				t.RemoteURL,
				t.StartDate,
				t.FinishDate,
			)
			if err != nil {
				return fmt.Errorf(
					"failed to execute track upsert for work %d service %d: %w",
					t.WorkID, t.ServiceID, err,
				)
			}
		}
		return nil
	})
}
