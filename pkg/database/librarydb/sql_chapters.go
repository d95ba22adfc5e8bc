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

func sqlListChapters(ctx context.Context, db *sql.DB, workID int64) ([]database.Chapter, error) {
	q, err := db.PrepareContext(ctx, `
		select
		DBID, WorkDBID, URL, Name, Scanlator, ChapterNumber, SourceOrder,
		Read, Bookmark, LastPageRead, DateFetch, DateUpload
		from Chapters
		where WorkDBID = ?
		order by SourceOrder, DBID;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare chapters query statement: %w", err)
	}
	defer closeStmt(q)

	rows, err := q.QueryContext(ctx, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer closeRows(rows)

	list := make([]database.Chapter, 0)
	for rows.Next() {
		ch := database.Chapter{}
		scanErr := rows.Scan(
			&ch.ID,
			&ch.WorkID,
			&ch.URL,
			&ch.Name,
			&ch.Scanlator,
			&ch.ChapterNumber,
			&ch.SourceOrder,
			&ch.Read,
			&ch.Bookmark,
			&ch.LastPageRead,
			&ch.DateFetch,
			&ch.DateUpload,
		)
		if scanErr != nil {
			return list, fmt.Errorf("failed to scan chapter row: %w", scanErr)
		}
		list = append(list, ch)
	}
	if err := rows.Err(); err != nil {
		return list, fmt.Errorf("error iterating chapter rows: %w", err)
	}
	return list, nil
}

func sqlBatchUpdateChapters(ctx context.Context, db *sql.DB, updates []database.ChapterUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			update Chapters set
				Read = coalesce(?, Read),
				Bookmark = coalesce(?, Bookmark),
				DateFetch = coalesce(?, DateFetch)
			where DBID = ?;
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare chapter update statement: %w", err)
		}
		defer closeStmt(stmt)

		for i := range updates {
			u := &updates[i]
			if u.IsEmpty() {
				continue
			}
			_, err := stmt.ExecContext(ctx,
				nullable(u.Read),
				nullable(u.Bookmark),
				nullable(u.DateFetch),
				u.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to execute chapter update for %d: %w", u.ID, err)
			}
		}
		return nil
	})
}

func sqlChapterURLs(ctx context.Context, db *sql.DB, workID int64) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, `select URL from Chapters where WorkDBID = ?;`, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapter urls: %w", err)
	}
	defer closeRows(rows)

	urls := make(map[string]struct{})
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return urls, fmt.Errorf("failed to scan chapter url: %w", err)
		}
		urls[url] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return urls, fmt.Errorf("error iterating chapter url rows: %w", err)
	}
	return urls, nil
}

// sqlSyncChapters upserts fetched chapters by URL. Source metadata is
// refreshed on existing rows while user state (read, bookmark, progress,
// fetch date) is left alone. New rows get now as their fetch date unless
// the fetched chapter carries one.
func sqlSyncChapters(
	ctx context.Context,
	db *sql.DB,
	workID int64,
	fetched []database.Chapter,
	now int64,
) (int, error) {
	if len(fetched) == 0 {
		return 0, nil
	}

	known, err := sqlChapterURLs(ctx, db, workID)
	if err != nil {
		return 0, err
	}

	added := 0
	err = withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			insert into Chapters(
				WorkDBID, URL, Name, Scanlator, ChapterNumber, SourceOrder, DateFetch, DateUpload
			) values (?, ?, ?, ?, ?, ?, ?, ?)
			on conflict (WorkDBID, URL) do update set
				Name = excluded.Name,
				Scanlator = excluded.Scanlator,
				ChapterNumber = excluded.ChapterNumber,
				SourceOrder = excluded.SourceOrder,
				DateUpload = excluded.DateUpload;
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare chapter sync statement: %w", err)
		}
		defer closeStmt(stmt)

		for i := range fetched {
			ch := &fetched[i]
			dateFetch := ch.DateFetch
			if dateFetch == 0 {
				dateFetch = now
			}
			_, err := stmt.ExecContext(ctx,
				workID,
				ch.URL,
				ch.Name,
				ch.Scanlator,
				ch.ChapterNumber,
				ch.SourceOrder,
				dateFetch,
				ch.DateUpload,
			)
			if err != nil {
				return fmt.Errorf("failed to execute chapter sync for %q: %w", ch.URL, err)
			}
			if _, ok := known[ch.URL]; !ok {
				known[ch.URL] = struct{}{}
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}
