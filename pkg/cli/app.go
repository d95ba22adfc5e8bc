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

	"github.com/ZaparooProject/shelfmove/pkg/config"
	"github.com/ZaparooProject/shelfmove/pkg/covers"
	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/database/librarydb"
	"github.com/ZaparooProject/shelfmove/pkg/downloads"
	"github.com/ZaparooProject/shelfmove/pkg/migration"
	"github.com/ZaparooProject/shelfmove/pkg/search"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/ZaparooProject/shelfmove/pkg/sources/local"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrSameWork is returned when a work is migrated onto itself.
var ErrSameWork = errors.New("current and target work are the same")

// App wires the library, the installed sources and the engines together
// for the command line.
type App struct {
	cfg      *config.Instance
	db       *librarydb.LibraryDB
	sources  *sources.Manager
	engine   *search.Engine
	migrator *migration.Migrator
}

// NewApp builds an App around an open library database. Files are read
// and written through fs.
func NewApp(cfg *config.Instance, db *librarydb.LibraryDB, fs afero.Fs) *App {
	mgr := sources.NewManager(local.New(fs, cfg.LocalSourceDir()))

	engine := search.NewEngine(search.Options{
		Language:         cfg.SearchLanguage(),
		ExtraQuery:       cfg.SearchExtraQuery(),
		Threshold:        cfg.SearchThreshold(),
		Concurrency:      cfg.SearchConcurrency(),
		QueriesPerSecond: cfg.SearchQueriesPerSecond(),
		TrustSoleResult:  cfg.SearchTrustSoleResult(),
	})

	migrator := migration.New(migration.Deps{
		Works:      db.Works(),
		Chapters:   db.Chapters(),
		Categories: db.Categories(),
		Tracks:     db.Tracks(),
		Sources:    mgr,
		Downloads:  downloads.NewStore(fs, cfg.DownloadsDir()),
		Covers:     covers.NewStore(fs, cfg.CoversDir()),
	})

	return &App{
		cfg:      cfg,
		db:       db,
		sources:  mgr,
		engine:   engine,
		migrator: migrator,
	}
}

// Sources is the registry extra sources can be added to.
func (a *App) Sources() *sources.Manager {
	return a.sources
}

func (a *App) searchMode(deep bool) search.Mode {
	if deep {
		return search.ModeDeep
	}
	return search.ModeRegular
}

// searchEngine returns the configured engine, or a copy of it appending
// extra to every query.
func (a *App) searchEngine(extra string) *search.Engine {
	if extra == "" {
		return a.engine
	}
	opts := a.engine.Options()
	opts.ExtraQuery = extra
	return search.NewEngine(opts)
}

// Search looks title up on a source. A non-empty extra replaces the
// configured extra query terms.
func (a *App) Search(
	ctx context.Context,
	sourceID int64,
	title string,
	deep bool,
	extra string,
) (*search.Candidate, error) {
	src, err := a.sources.Lookup(sourceID)
	if err != nil {
		return nil, err
	}
	//nolint:wrapcheck // search errors are already descriptive
	return a.searchEngine(extra).SearchSource(ctx, src, title, a.searchMode(deep))
}

// FindTarget searches a source for a library work's title and returns
// the matching work on that source, adding it to the library database
// when it is not there yet.
func (a *App) FindTarget(
	ctx context.Context,
	workID, sourceID int64,
	deep bool,
	extra string,
) (database.Work, error) {
	works := a.db.Works()
	current, err := works.GetWork(ctx, workID)
	if err != nil {
		return database.Work{}, fmt.Errorf("failed to load work: %w", err)
	}

	candidate, err := a.Search(ctx, sourceID, current.Title, deep, extra)
	if err != nil {
		return database.Work{}, err
	}

	target, err := works.FindWork(ctx, sourceID, candidate.Result.URL)
	switch {
	case err == nil:
		return target, nil
	case !errors.Is(err, database.ErrNotFound):
		return database.Work{}, fmt.Errorf("failed to look up target work: %w", err)
	}

	target, err = works.InsertWork(ctx, database.Work{
		SourceID: sourceID,
		URL:      candidate.Result.URL,
		Title:    candidate.Result.Title,
	})
	if err != nil {
		return database.Work{}, fmt.Errorf("failed to add target work: %w", err)
	}
	log.Info().
		Int64("work_id", target.ID).
		Int64("source_id", sourceID).
		Str("title", target.Title).
		Msg("added target work")
	return target, nil
}

// ApplicableFlags returns the migration flags that apply to a work.
func (a *App) ApplicableFlags(ctx context.Context, workID int64) (migration.Flags, error) {
	work, err := a.db.Works().GetWork(ctx, workID)
	if err != nil {
		return 0, fmt.Errorf("failed to load work: %w", err)
	}
	return a.migrator.ApplicableFlags(ctx, work), nil
}

// Migrate moves a library work onto another. Requested flags that do not
// apply to the current work are dropped.
func (a *App) Migrate(
	ctx context.Context,
	fromID, toID int64,
	replace bool,
	flags migration.Flags,
) (*migration.Report, error) {
	if fromID == toID {
		return nil, ErrSameWork
	}

	works := a.db.Works()
	current, err := works.GetWork(ctx, fromID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current work: %w", err)
	}
	target, err := works.GetWork(ctx, toID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target work: %w", err)
	}

	applicable := a.migrator.ApplicableFlags(ctx, current)
	if dropped := flags &^ applicable; dropped != 0 {
		log.Debug().Str("flags", dropped.String()).Msg("dropping flags that do not apply")
	}

	//nolint:wrapcheck // only the context error is returned
	return a.migrator.Migrate(ctx, current, target, replace, flags&applicable)
}

// Vacuum compacts the library database and returns its path.
func (a *App) Vacuum(ctx context.Context) (string, error) {
	if err := a.db.Vacuum(ctx); err != nil {
		return "", fmt.Errorf("failed to vacuum %s: %w", a.db.GetDBPath(), err)
	}
	return a.db.GetDBPath(), nil
}
