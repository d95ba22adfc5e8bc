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
	"os"
	"strconv"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/config"
	"github.com/ZaparooProject/shelfmove/pkg/migration"
	"github.com/rs/zerolog/log"
)

// Run actions the command flag that was passed.
func (f *Flags) Run(ctx context.Context, cfg *config.Instance, app *App, out io.Writer) error {
	deep := cfg.SearchDeep()
	if f.isFlagPassed("deep") {
		deep = *f.Deep
	}

	switch {
	case *f.Config:
		_, _ = fmt.Fprintln(out, cfg.Path())
		return nil
	case *f.Sources:
		for _, src := range app.Sources().List() {
			_, _ = fmt.Fprintf(out, "%d\t%s\n", src.ID(), src.Name())
		}
		return nil
	case f.isFlagPassed("search"):
		if strings.TrimSpace(*f.Search) == "" {
			return errors.New("search flag requires a value")
		}
		candidate, err := app.Search(ctx, *f.Source, *f.Search, deep, *f.Extra)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		score := strconv.FormatFloat(candidate.Similarity, 'f', 2, 64)
		if candidate.SoleResult {
			score = "sole-result"
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", candidate.Result.Title, candidate.Result.URL, score)
		return nil
	case f.isFlagPassed("find"):
		return withLibraryLock(cfg, func() error {
			target, err := app.FindTarget(ctx, *f.Find, *f.Source, deep, *f.Extra)
			if err != nil {
				return fmt.Errorf("find failed: %w", err)
			}
			_, _ = fmt.Fprintf(out, "%d\t%s\t%s\n", target.ID, target.Title, target.URL)
			return nil
		})
	case f.isFlagPassed("flags"):
		flags, err := app.ApplicableFlags(ctx, *f.Applicable)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, flags.String())
		return nil
	case f.isFlagPassed("migrate"):
		return withLibraryLock(cfg, func() error {
			return f.runMigrate(ctx, cfg, app, out)
		})
	case f.isFlagPassed("batch"):
		return withLibraryLock(cfg, func() error {
			return f.runBatch(ctx, cfg, app, out)
		})
	case *f.Vacuum:
		return withLibraryLock(cfg, func() error {
			path, err := app.Vacuum(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "vacuumed\t%s\n", path)
			return nil
		})
	default:
		return ErrNoCommand
	}
}

// migrationOptions resolves the replace mode and flags from the command
// line, falling back to the config.
func (f *Flags) migrationOptions(cfg *config.Instance) (bool, migration.Flags, error) {
	var (
		flags migration.Flags
		err   error
	)
	if f.isFlagPassed("with") {
		flags, err = migration.ParseFlags(*f.With)
	} else {
		flags, err = migration.FlagsFromNames(cfg.DefaultMigrationFlags())
	}
	if err != nil {
		return false, 0, fmt.Errorf("invalid migration flags: %w", err)
	}

	replace := cfg.MigrationReplace()
	if f.isFlagPassed("copy") {
		replace = !*f.Copy
	}
	return replace, flags, nil
}

func (f *Flags) runBatch(ctx context.Context, cfg *config.Instance, app *App, out io.Writer) error {
	replace, flags, err := f.migrationOptions(cfg)
	if err != nil {
		return err
	}

	file, err := os.Open(*f.Batch)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close batch file")
		}
	}()

	return app.MigrateBatch(ctx, file, out, replace, flags)
}

func (f *Flags) runMigrate(ctx context.Context, cfg *config.Instance, app *App, out io.Writer) error {
	fromID, toID, err := parseWorkPair(*f.Migrate)
	if err != nil {
		return err
	}

	replace, flags, err := f.migrationOptions(cfg)
	if err != nil {
		return err
	}

	report, err := app.Migrate(ctx, fromID, toID, replace, flags)
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if !report.OK() {
		return fmt.Errorf("migration finished with errors: %w", report.Err())
	}
	return nil
}

// parseWorkPair parses "FROM:TO".
func parseWorkPair(s string) (from, to int64, err error) {
	ps := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(ps) != 2 {
		return 0, 0, fmt.Errorf("expected FROM:TO, got %q", s)
	}
	from, err = strconv.ParseInt(strings.TrimSpace(ps[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid current work ID %q: %w", ps[0], err)
	}
	to, err = strconv.ParseInt(strings.TrimSpace(ps[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid target work ID %q: %w", ps[1], err)
	}
	return from, to, nil
}

func printReport(out io.Writer, report *migration.Report) {
	mode := "copy"
	if report.Replace {
		mode = "replace"
	}
	_, _ = fmt.Fprintf(out, "migration %s: %d -> %d (%s, flags: %s)\n",
		report.ID, report.CurrentID, report.TargetID, mode, report.Flags)
	for _, s := range report.Steps {
		_, _ = fmt.Fprintf(out, "  %-14s %-8s %s\n", s.Step, s.Status, s.Detail)
	}
	for _, e := range report.Errors {
		_, _ = fmt.Fprintf(out, "  error: %v\n", e)
	}
}
