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

// Package local is a source backed by a directory tree: every directory
// under the root is a work and every sub-directory or archive inside it is
// a chapter.
package local

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/chapters"
	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SourceID int64 = 0
	Name           = "Local source"
)

var chapterExts = map[string]struct{}{
	".cbz":  {},
	".zip":  {},
	".epub": {},
}

type Source struct {
	fs   afero.Fs
	root string
}

var _ sources.Source = (*Source)(nil)

func New(fs afero.Fs, root string) *Source {
	return &Source{fs: fs, root: root}
}

func (*Source) ID() int64 {
	return SourceID
}

func (*Source) Name() string {
	return Name
}

// Search returns the works whose directory name contains query, ignoring
// case. A blank query lists every work.
func (s *Source) Search(ctx context.Context, query string) ([]sources.Result, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list local works: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	var results []sources.Result
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(entry.Name()), query) {
			continue
		}
		results = append(results, sources.Result{
			Title: entry.Name(),
			URL:   entry.Name(),
		})
	}

	log.Debug().Str("query", query).Int("results", len(results)).Msg("local search finished")
	return results, nil
}

// FetchChapters lists the chapters of a work in name order. Chapter
// numbers are recognized from the entry names.
func (s *Source) FetchChapters(ctx context.Context, work database.Work) ([]database.Chapter, error) {
	dir := s.workDir(work)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters of %s: %w", work.URL, err)
	}

	var out []database.Chapter
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !entry.IsDir() {
			if _, ok := chapterExts[ext]; !ok {
				continue
			}
			name = strings.TrimSuffix(name, filepath.Ext(name))
		}

		out = append(out, database.Chapter{
			WorkID:        work.ID,
			URL:           path.Join(work.URL, entry.Name()),
			Name:          name,
			ChapterNumber: chapters.RecognizeNumber(work.Title, name, database.UnrecognizedNumber),
			SourceOrder:   int64(len(out)),
			DateUpload:    entry.ModTime().UnixMilli(),
		})
	}
	return out, nil
}

func (s *Source) workDir(work database.Work) string {
	// URLs are directory names; never let one escape the root
	return filepath.Join(s.root, filepath.Base(filepath.Clean("/"+work.URL)))
}
