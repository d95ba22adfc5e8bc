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

// Flag names accepted in migration.default_flags.
const (
	FlagNameChapter  = "chapter"
	FlagNameCover    = "cover"
	FlagNameNotes    = "notes"
	FlagNameDownload = "download"
)

type Migration struct {
	DefaultFlags []string `toml:"default_flags" validate:"dive,oneof=chapter cover notes download"`
	Replace      bool     `toml:"replace"`
}

// DefaultMigrationFlags returns the flag names applied when none are given.
func (c *Instance) DefaultMigrationFlags() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.vals.Migration.DefaultFlags...)
}

func (c *Instance) SetDefaultMigrationFlags(flags []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Migration.DefaultFlags = append([]string(nil), flags...)
}

// MigrationReplace reports whether migrations replace the current work
// instead of keeping a copy.
func (c *Instance) MigrationReplace() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Migration.Replace
}
