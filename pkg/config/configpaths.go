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

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	LocalSourceDir = "local"
	DownloadsDir   = "downloads"
	CoversDir      = "covers"
)

// Paths overrides where Shelfmove keeps its data. Relative paths are
// resolved against the data directory.
type Paths struct {
	DataDir        string `toml:"data_dir,omitempty"`
	LocalSourceDir string `toml:"local_source_dir,omitempty"`
	DownloadsDir   string `toml:"downloads_dir,omitempty"`
	CoversDir      string `toml:"covers_dir,omitempty"`
}

// DataDir returns the configured data directory or the XDG data home
// for Shelfmove.
func (c *Instance) DataDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dataDir()
}

func (c *Instance) dataDir() string {
	if c.vals.Paths.DataDir != "" {
		return c.vals.Paths.DataDir
	}
	return filepath.Join(xdg.DataHome, AppName)
}

func (c *Instance) resolve(path, fallback string) string {
	if path == "" {
		return filepath.Join(c.dataDir(), fallback)
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dataDir(), path)
}

func (c *Instance) LocalSourceDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(c.vals.Paths.LocalSourceDir, LocalSourceDir)
}

func (c *Instance) DownloadsDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(c.vals.Paths.DownloadsDir, DownloadsDir)
}

func (c *Instance) CoversDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolve(c.vals.Paths.CoversDir, CoversDir)
}
