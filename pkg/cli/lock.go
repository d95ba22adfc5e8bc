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
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ZaparooProject/shelfmove/pkg/config"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

// ErrLibraryBusy is returned when another process holds the library lock.
var ErrLibraryBusy = errors.New("library is in use by another shelfmove process")

// lockLibrary takes the lock file in dataDir so only one process writes
// to the library at a time. The returned func releases it.
func lockLibrary(dataDir string) (func(), error) {
	lockPath := filepath.Join(dataDir, config.LockFile)
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire library lock: %w", err)
	}
	if !ok {
		return nil, ErrLibraryBusy
	}

	log.Debug().Str("lock", lockPath).Msg("acquired library lock")
	return func() {
		if err := lock.Unlock(); err != nil {
			log.Warn().Err(err).Str("lock", lockPath).Msg("failed to release library lock")
		}
	}, nil
}

// withLibraryLock runs fn holding the library lock.
func withLibraryLock(cfg *config.Instance, fn func() error) error {
	unlock, err := lockLibrary(cfg.DataDir())
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}
