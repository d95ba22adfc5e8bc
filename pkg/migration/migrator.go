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

// Package migration moves a work and the user's state attached to it
// from one source to another.
package migration

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ZaparooProject/shelfmove/pkg/chapters"
	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/ZaparooProject/shelfmove/pkg/tracking"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DownloadStore is the part of the download manager a migration needs.
type DownloadStore interface {
	Count(work database.Work) (int, error)
	Delete(work database.Work, src sources.Source) error
}

// CoverStore holds user supplied covers.
type CoverStore interface {
	HasCustomCover(work database.Work) (bool, error)
	ReadCustomCover(work database.Work) (io.ReadCloser, error)
	WriteCustomCover(work database.Work, r io.Reader) error
}

// Deps are the collaborators of a Migrator. Downloads, Covers and
// Trackers are optional.
type Deps struct {
	Works      database.WorkRepository
	Chapters   database.ChapterRepository
	Categories database.CategoryRepository
	Tracks     database.TrackRepository
	Sources    sources.Resolver
	Downloads  DownloadStore
	Covers     CoverStore
	Clock      clockwork.Clock
	Trackers   tracking.Capabilities
}

// Migrator transfers state between works. It keeps nothing between calls
// and may be used concurrently.
type Migrator struct {
	deps Deps
}

func New(deps Deps) *Migrator {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &Migrator{deps: deps}
}

type skipError struct {
	reason string
}

func (e *skipError) Error() string {
	return "skipped: " + e.reason
}

func skip(reason string) error {
	return &skipError{reason: reason}
}

// Migrate moves the user's state from current to target. Steps run in a
// fixed order and a failing step does not stop the ones after it; every
// outcome is recorded on the returned report. The error is only ever the
// context error, returned together with the partial report when ctx is
// cancelled mid-way.
//
// With replace, current is removed from the library and target takes its
// place, keeping its date added. Otherwise both stay in the library and
// target is dated now.
//
//nolint:gocritic // works are passed by value like the rest of the API
func (m *Migrator) Migrate(
	ctx context.Context,
	current, target database.Work,
	replace bool,
	flags Flags,
) (*Report, error) {
	report := &Report{
		ID:        uuid.New().String(),
		CurrentID: current.ID,
		TargetID:  target.ID,
		Replace:   replace,
		Flags:     flags,
		StartedAt: m.deps.Clock.Now(),
	}
	logger := log.With().
		Str("migration_id", report.ID).
		Int64("work_id", current.ID).
		Int64("target_id", target.ID).
		Logger()
	logger.Info().
		Int64("source_id", current.SourceID).
		Int64("target_source_id", target.SourceID).
		Bool("replace", replace).
		Str("flags", flags.String()).
		Msg("starting migration")

	steps := []struct {
		run  func(context.Context) (string, error)
		name string
	}{
		{name: StepSyncChapters, run: func(ctx context.Context) (string, error) {
			return m.syncChapters(ctx, target)
		}},
		{name: StepChapters, run: func(ctx context.Context) (string, error) {
			if !flags.Has(FlagChapter) {
				return "", skip("chapter flag not set")
			}
			return m.migrateChapters(ctx, current, target)
		}},
		{name: StepCategories, run: func(ctx context.Context) (string, error) {
			if !flags.Has(FlagChapter) {
				return "", skip("chapter flag not set")
			}
			return m.migrateCategories(ctx, current, target)
		}},
		{name: StepTracks, run: func(ctx context.Context) (string, error) {
			return m.migrateTracks(ctx, report, current, target)
		}},
		{name: StepDownloads, run: func(context.Context) (string, error) {
			if !flags.Has(FlagRemoveDownload) {
				return "", skip("download flag not set")
			}
			return m.deleteDownloads(current)
		}},
		{name: StepCover, run: func(context.Context) (string, error) {
			if !flags.Has(FlagCustomCover) {
				return "", skip("cover flag not set")
			}
			return m.copyCover(current, target)
		}},
		{name: StepWorks, run: func(ctx context.Context) (string, error) {
			return m.updateWorks(ctx, current, target, replace, flags)
		}},
	}

	for _, s := range steps {
		if err := m.runStep(ctx, &logger, report, s.name, s.run); err != nil {
			report.FinishedAt = m.deps.Clock.Now()
			logger.Warn().Err(err).Str("step", s.name).Msg("migration cancelled")
			return report, err
		}
	}

	report.FinishedAt = m.deps.Clock.Now()
	if report.OK() {
		logger.Info().Msg("migration finished")
	} else {
		logger.Warn().Int("errors", len(report.Errors)).Msg("migration finished with errors")
	}
	return report, nil
}

// runStep runs one step and records its outcome. It only returns an error
// when ctx is done.
func (*Migrator) runStep(
	ctx context.Context,
	logger *zerolog.Logger,
	report *Report,
	name string,
	run func(context.Context) (string, error),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	detail, err := run(ctx)

	var skipped *skipError
	switch {
	case errors.As(err, &skipped):
		report.skipped(name, skipped.reason)
		logger.Debug().Str("step", name).Str("reason", skipped.reason).Msg("migration step skipped")
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		report.failed(name, err)
		logger.Error().Err(err).Str("step", name).Msg("migration step failed")
	default:
		report.done(name, detail)
		logger.Debug().Str("step", name).Str("detail", detail).Msg("migration step done")
	}
	return nil
}

func (m *Migrator) syncChapters(ctx context.Context, target database.Work) (string, error) {
	src, ok := m.deps.Sources.Get(target.SourceID)
	if !ok {
		return "", fmt.Errorf("%w: %d", sources.ErrSourceNotFound, target.SourceID)
	}

	fetched, err := src.FetchChapters(ctx, target)
	if err != nil {
		return "", fmt.Errorf("failed to fetch chapters from %s: %w", src.Name(), err)
	}
	for i := range fetched {
		fetched[i].WorkID = target.ID
		fetched[i].ChapterNumber = chapters.RecognizeNumber(
			target.Title,
			fetched[i].Name,
			fetched[i].ChapterNumber,
		)
	}

	added, err := m.deps.Chapters.Sync(ctx, target.ID, fetched)
	if err != nil {
		return "", fmt.Errorf("failed to sync chapters: %w", err)
	}
	return fmt.Sprintf("%d fetched, %d new", len(fetched), added), nil
}

func (m *Migrator) migrateChapters(ctx context.Context, current, target database.Work) (string, error) {
	sourceChapters, err := m.deps.Chapters.ListByWork(ctx, current.ID)
	if err != nil {
		return "", fmt.Errorf("failed to list current chapters: %w", err)
	}
	targetChapters, err := m.deps.Chapters.ListByWork(ctx, target.ID)
	if err != nil {
		return "", fmt.Errorf("failed to list target chapters: %w", err)
	}

	corr := chapters.Correspond(sourceChapters, targetChapters)
	if len(corr.Updates) > 0 {
		if err := m.deps.Chapters.BatchUpdate(ctx, corr.Updates); err != nil {
			return "", fmt.Errorf("failed to update chapters: %w", err)
		}
	}

	if corr.MaxReadNumber != nil {
		return fmt.Sprintf("%d updated, read up to %g", len(corr.Updates), *corr.MaxReadNumber), nil
	}
	return fmt.Sprintf("%d updated", len(corr.Updates)), nil
}

func (m *Migrator) migrateCategories(ctx context.Context, current, target database.Work) (string, error) {
	ids, err := m.deps.Categories.ListByWork(ctx, current.ID)
	if err != nil {
		return "", fmt.Errorf("failed to list categories: %w", err)
	}
	if err := m.deps.Categories.SetForWork(ctx, target.ID, ids); err != nil {
		return "", fmt.Errorf("failed to set categories: %w", err)
	}
	return fmt.Sprintf("%d categories", len(ids)), nil
}

// migrateTracks re-points every tracking record at target. Enhanced
// trackers that follow the target source re-derive their record; when
// one fails the re-pointed record is kept and the error is recorded.
func (m *Migrator) migrateTracks(
	ctx context.Context,
	report *Report,
	current, target database.Work,
) (string, error) {
	records, err := m.deps.Tracks.ListByWork(ctx, current.ID)
	if err != nil {
		return "", fmt.Errorf("failed to list tracks: %w", err)
	}
	if len(records) == 0 {
		return "", skip("no tracks")
	}

	enhanced := 0
	out := make([]database.TrackRecord, 0, len(records))
	for _, rec := range records {
		rec.WorkID = target.ID

		if tracker, ok := m.deps.Trackers.EnhancedFor(rec.ServiceID, target.SourceID); ok {
			migrated, err := tracker.MigrateTrack(ctx, rec, target, target.SourceID)
			switch {
			case err != nil:
				if ctxErr := ctx.Err(); ctxErr != nil {
					return "", ctxErr
				}
				report.warn(StepTracks, fmt.Errorf("tracker %s: %w", tracker.Name(), err))
				log.Warn().Err(err).
					Str("tracker", tracker.Name()).
					Int64("work_id", current.ID).
					Msg("enhanced tracker failed, keeping existing record")
			case migrated != nil:
				rec = *migrated
				rec.WorkID = target.ID
				enhanced++
			}
		}

		out = append(out, rec)
	}

	if err := m.deps.Tracks.BatchUpsert(ctx, out); err != nil {
		return "", fmt.Errorf("failed to save tracks: %w", err)
	}
	return fmt.Sprintf("%d tracks, %d re-derived", len(out), enhanced), nil
}

func (m *Migrator) deleteDownloads(current database.Work) (string, error) {
	if m.deps.Downloads == nil {
		return "", skip("no download store")
	}
	src, ok := m.deps.Sources.Get(current.SourceID)
	if !ok {
		return "", skip("current source not installed")
	}
	if err := m.deps.Downloads.Delete(current, src); err != nil {
		return "", fmt.Errorf("failed to delete downloads: %w", err)
	}
	return "deleted", nil
}

func (m *Migrator) copyCover(current, target database.Work) (string, error) {
	if m.deps.Covers == nil {
		return "", skip("no cover store")
	}
	has, err := m.deps.Covers.HasCustomCover(current)
	if err != nil {
		return "", fmt.Errorf("failed to check custom cover: %w", err)
	}
	if !has {
		return "", skip("no custom cover")
	}

	rc, err := m.deps.Covers.ReadCustomCover(current)
	if err != nil {
		return "", fmt.Errorf("failed to read custom cover: %w", err)
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close custom cover")
		}
	}()

	if err := m.deps.Covers.WriteCustomCover(target, rc); err != nil {
		return "", fmt.Errorf("failed to write custom cover: %w", err)
	}
	return "copied", nil
}

func (m *Migrator) updateWorks(
	ctx context.Context,
	current, target database.Work,
	replace bool,
	flags Flags,
) (string, error) {
	favorite := true
	chapterFlags := current.ChapterFlags
	viewerFlags := current.ViewerFlags
	dateAdded := m.deps.Clock.Now().UnixMilli()
	if replace {
		dateAdded = current.DateAdded
	}

	targetUpdate := database.WorkUpdate{
		ID:           target.ID,
		Favorite:     &favorite,
		ChapterFlags: &chapterFlags,
		ViewerFlags:  &viewerFlags,
		DateAdded:    &dateAdded,
	}
	if flags.Has(FlagNotes) {
		notes := current.Notes
		targetUpdate.Notes = &notes
	}

	updates := []database.WorkUpdate{targetUpdate}
	if replace {
		removed := false
		var zero int64
		updates = append(updates, database.WorkUpdate{
			ID:        current.ID,
			Favorite:  &removed,
			DateAdded: &zero,
		})
	}

	if err := m.deps.Works.BatchUpdate(ctx, updates); err != nil {
		return "", fmt.Errorf("failed to update works: %w", err)
	}
	if replace {
		return "replaced", nil
	}
	return "copied", nil
}
