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

// Package downloads manages chapters saved for offline reading.
package downloads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/helpers"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// TmpSuffix marks a chapter that is still being downloaded.
const TmpSuffix = "_tmp"

// Store keeps downloads as <root>/<source id>/<work title>/<chapter>.
type Store struct {
	fs   afero.Fs
	root string
}

func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// WorkDir is the directory holding the downloaded chapters of a work on
// the given source.
func (s *Store) WorkDir(sourceID int64, title string) string {
	return filepath.Join(s.root, strconv.FormatInt(sourceID, 10), helpers.SanitizeFileName(title))
}

// ChapterDir is where a chapter of a work is downloaded to.
func (s *Store) ChapterDir(work database.Work, chapter database.Chapter) string {
	name := chapter.Name
	if chapter.Scanlator != "" {
		name = chapter.Scanlator + "_" + name
	}
	return filepath.Join(s.WorkDir(work.SourceID, work.Title), helpers.SanitizeFileName(name))
}

// Count returns how many finished chapter downloads a work has.
func (s *Store) Count(work database.Work) (int, error) {
	entries, err := afero.ReadDir(s.fs, s.WorkDir(work.SourceID, work.Title))
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to list downloads: %w", err)
	}

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, TmpSuffix) {
			continue
		}
		count++
	}
	return count, nil
}

// Delete removes every download of a work that was fetched from src.
func (s *Store) Delete(work database.Work, src sources.Source) error {
	dir := s.WorkDir(src.ID(), work.Title)
	exists, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return fmt.Errorf("failed to check downloads: %w", err)
	}
	if !exists {
		return nil
	}

	if err := s.fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete downloads: %w", err)
	}
	log.Info().
		Int64("work_id", work.ID).
		Str("source", src.Name()).
		Str("path", dir).
		Msg("deleted downloaded chapters")
	return nil
}
