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

//nolint:gocritic // struct passed for DB insertion
func sqlInsertCategory(ctx context.Context, db *sql.DB, c database.Category) (database.Category, error) {
	res, err := db.ExecContext(ctx,
		`insert into Categories(Name, SortOrder) values (?, ?);`,
		c.Name, c.Order,
	)
	if err != nil {
		return c, fmt.Errorf("failed to execute category insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return c, fmt.Errorf("failed to get inserted category id: %w", err)
	}
	c.ID = id
	return c, nil
}

func sqlListWorkCategories(ctx context.Context, db *sql.DB, workID int64) ([]int64, error) {
	rows, err := db.QueryContext(ctx, `
		select wc.CategoryDBID
		from WorkCategories wc
		join Categories c on c.DBID = wc.CategoryDBID
		where wc.WorkDBID = ?
		order by c.SortOrder, c.DBID;
	`, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to query work categories: %w", err)
	}
	defer closeRows(rows)

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return ids, fmt.Errorf("failed to scan work category row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return ids, fmt.Errorf("error iterating work category rows: %w", err)
	}
	return ids, nil
}

// sqlSetWorkCategories replaces the work's category membership.
func sqlSetWorkCategories(ctx context.Context, db *sql.DB, workID int64, categoryIDs []int64) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `delete from WorkCategories where WorkDBID = ?;`, workID)
		if err != nil {
			return fmt.Errorf("failed to clear work categories: %w", err)
		}
		if len(categoryIDs) == 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, `
			insert or ignore into WorkCategories(WorkDBID, CategoryDBID) values (?, ?);
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare work category insert statement: %w", err)
		}
		defer closeStmt(stmt)

		for _, id := range categoryIDs {
			if _, err := stmt.ExecContext(ctx, workID, id); err != nil {
				return fmt.Errorf("failed to execute work category insert for %d: %w", id, err)
			}
		}
		return nil
	})
}
