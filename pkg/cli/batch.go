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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/migration"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

const (
	batchStatusOK        = "ok"
	batchStatusErrors    = "errors"
	batchStatusFailed    = "failed"
	batchStatusCancelled = "cancelled"
)

// BatchRow is one line of a batch migration file. A blank Flags column
// uses the default flags.
type BatchRow struct {
	Flags string `csv:"flags,omitempty"`
	From  int64  `csv:"from"`
	To    int64  `csv:"to"`
}

// BatchResult is one line of the batch migration output.
type BatchResult struct {
	MigrationID string `csv:"migration_id"`
	Status      string `csv:"status"`
	Flags       string `csv:"flags"`
	Errors      string `csv:"errors"`
	From        int64  `csv:"from"`
	To          int64  `csv:"to"`
}

// MigrateBatch runs every migration listed in the CSV read from r, one
// after the other, and writes a result line per row to w. A failing row
// does not stop the batch; cancellation does, and the rows not yet run are
// reported as cancelled.
func (a *App) MigrateBatch(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	replace bool,
	defaults migration.Flags,
) error {
	var rows []*BatchRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	results := make([]*BatchResult, 0, len(rows))
	var ctxErr error
	for _, row := range rows {
		res := &BatchResult{From: row.From, To: row.To}
		results = append(results, res)

		if ctxErr != nil {
			res.Status = batchStatusCancelled
			continue
		}

		flags := defaults
		if strings.TrimSpace(row.Flags) != "" {
			parsed, err := migration.ParseFlags(strings.ReplaceAll(row.Flags, ";", ","))
			if err != nil {
				res.Status = batchStatusFailed
				res.Errors = err.Error()
				continue
			}
			flags = parsed
		}

		report, err := a.Migrate(ctx, row.From, row.To, replace, flags)
		if report != nil {
			res.MigrationID = report.ID
			res.Flags = report.Flags.String()
		}
		switch {
		case ctx.Err() != nil:
			ctxErr = ctx.Err()
			res.Status = batchStatusCancelled
		case err != nil:
			res.Status = batchStatusFailed
			res.Errors = err.Error()
		case !report.OK():
			res.Status = batchStatusErrors
			res.Errors = report.Err().Error()
		default:
			res.Status = batchStatusOK
		}
		log.Info().
			Int64("work_id", row.From).
			Int64("target_id", row.To).
			Str("status", res.Status).
			Msg("batch migration row done")
	}

	if err := gocsv.Marshal(&results, w); err != nil {
		return fmt.Errorf("failed to write batch results: %w", err)
	}
	if ctxErr != nil {
		return ctxErr
	}
	for _, res := range results {
		if res.Status != batchStatusOK {
			return errors.New("some batch migrations did not finish cleanly")
		}
	}
	return nil
}
