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

	"github.com/ZaparooProject/shelfmove/pkg/database"
)

const workColumns = `DBID, SourceID, URL, Title, Favorite, ChapterFlags, ViewerFlags, Notes, DateAdded`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWork(row rowScanner) (database.Work, error) {
	var w database.Work
	err := row.Scan(
		&w.ID,
		&w.SourceID,
		&w.URL,
		&w.Title,
		&w.Favorite,
		&w.ChapterFlags,
		&w.ViewerFlags,
		&w.Notes,
		&w.DateAdded,
	)
	if err != nil {
		return w, fmt.Errorf("failed to scan work row: %w", err)
	}
	return w, nil
}

func sqlGetWork(ctx context.Context, db *sql.DB, id int64) (database.Work, error) {
	row := db.QueryRowContext(ctx, `select `+workColumns+` from Works where DBID = ?;`, id)
	w, err := scanWork(row)
	if errors.Is(err, sql.ErrNoRows) {
		return w, fmt.Errorf("work %d: %w", id, database.ErrNotFound)
	}
	return w, err
}

func sqlFindWork(ctx context.Context, db *sql.DB, sourceID int64, url string) (database.Work, error) {
	row := db.QueryRowContext(ctx,
		`select `+workColumns+` from Works where SourceID = ? and URL = ?;`,
		sourceID, url,
	)
	w, err := scanWork(row)
	if errors.Is(err, sql.ErrNoRows) {
		return w, fmt.Errorf("work %q on source %d: %w", url, sourceID, database.ErrNotFound)
	}
	return w, err
}

//nolint:gocritic // struct passed for DB insertion
func sqlInsertWork(ctx context.Context, db *sql.DB, w database.Work) (database.Work, error) {
	stmt, err := db.PrepareContext(ctx, `
		insert into Works(
			SourceID, URL, Title, Favorite, ChapterFlags, ViewerFlags, Notes, DateAdded
		) values (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return w, fmt.Errorf("failed to prepare work insert statement: %w", err)
	}
	defer closeStmt(stmt)

	res, err := stmt.ExecContext(ctx,
		w.SourceID,
		w.URL,
		w.Title,
		w.Favorite,
		w.ChapterFlags,
		w.ViewerFlags,
		w.Notes,
		w.DateAdded,
	)
	if err != nil {
		return w, fmt.Errorf("failed to execute work insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return w, fmt.Errorf("failed to get inserted work id: %w", err)
	}
	w.ID = id
	return w, nil
}

func sqlListFavoriteWorks(ctx context.Context, db *sql.DB) ([]database.Work, error) {
	rows, err := db.QueryContext(ctx,
		`select `+workColumns+` from Works where Favorite = 1 order by Title;`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite works: %w", err)
	}
	defer closeRows(rows)

	list := make([]database.Work, 0)
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return list, err
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return list, fmt.Errorf("error iterating work rows: %w", err)
	}
	return list, nil
}

func sqlBatchUpdateWorks(ctx context.Context, db *sql.DB, updates []database.WorkUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			update Works set
				Favorite = coalesce(?, Favorite),
				ChapterFlags = coalesce(?, ChapterFlags),
				ViewerFlags = coalesce(?, ViewerFlags),
				DateAdded = coalesce(?, DateAdded),
				Notes = coalesce(?, Notes)
			where DBID = ?;
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare work update statement: %w", err)
		}
		defer closeStmt(stmt)

		for i := range updates {
			u := &updates[i]
			_, err := stmt.ExecContext(ctx,
				nullable(u.Favorite),
				nullable(u.ChapterFlags),
				nullable(u.ViewerFlags),
				nullable(u.DateAdded),
				nullable(u.Notes),
				u.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to execute work update for %d: %w", u.ID, err)
			}
		}
		return nil
	})
}
