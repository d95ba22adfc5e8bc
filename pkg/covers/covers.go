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

// Package covers stores user supplied cover images for works.
package covers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const customDir = "custom"

// Store keeps custom covers as <root>/custom/<work id>.
type Store struct {
	fs   afero.Fs
	root string
}

func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

func (s *Store) customPath(work database.Work) string {
	return filepath.Join(s.root, customDir, strconv.FormatInt(work.ID, 10))
}

func (s *Store) HasCustomCover(work database.Work) (bool, error) {
	exists, err := afero.Exists(s.fs, s.customPath(work))
	if err != nil {
		return false, fmt.Errorf("failed to check custom cover: %w", err)
	}
	return exists, nil
}

// ReadCustomCover opens the custom cover of a work. The caller closes it.
func (s *Store) ReadCustomCover(work database.Work) (io.ReadCloser, error) {
	f, err := s.fs.Open(s.customPath(work))
	if err != nil {
		return nil, fmt.Errorf("failed to open custom cover: %w", err)
	}
	return f, nil
}

// WriteCustomCover replaces the custom cover of a work with the contents
// of r. A partially written cover is removed.
func (s *Store) WriteCustomCover(work database.Work, r io.Reader) error {
	path := s.customPath(work)
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create cover directory: %w", err)
	}

	tmp := path + ".tmp"
	f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create custom cover: %w", err)
	}

	_, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		if rmErr := s.fs.Remove(tmp); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove partial cover")
		}
		return fmt.Errorf("failed to write custom cover: %w", err)
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move custom cover into place: %w", err)
	}
	return nil
}

// DeleteCustomCover removes the custom cover of a work if there is one.
func (s *Store) DeleteCustomCover(work database.Work) error {
	err := s.fs.Remove(s.customPath(work))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete custom cover: %w", err)
	}
	return nil
}
