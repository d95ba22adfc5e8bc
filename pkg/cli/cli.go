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

// Package cli holds the command line front end shared by the shelfmove
// binaries.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ZaparooProject/shelfmove/internal/telemetry"
	"github.com/ZaparooProject/shelfmove/pkg/config"
	"github.com/ZaparooProject/shelfmove/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrNoCommand is returned by Run when no command flag was given.
var ErrNoCommand = errors.New("no command given")

type Flags struct {
	fs         *flag.FlagSet
	Search     *string
	Migrate    *string
	Batch      *string
	With       *string
	Extra      *string
	Find       *int64
	Applicable *int64
	Source     *int64
	Deep       *bool
	Copy       *bool
	Sources    *bool
	Vacuum     *bool
	Version    *bool
	Config     *bool
	Debug      *bool
}

// SetupFlags defines the command flags on fs. Add any custom flags to fs
// before calling Pre.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs: fs,
		Search: fs.String(
			"search",
			"",
			"search -source for a title and print the best match",
		),
		Find: fs.Int64(
			"find",
			0,
			"search -source for a library work and add the best match to the library",
		),
		Applicable: fs.Int64(
			"flags",
			0,
			"print the migration flags that apply to a library work",
		),
		Migrate: fs.String(
			"migrate",
			"",
			"migrate FROM:TO library work IDs",
		),
		Batch: fs.String(
			"batch",
			"",
			"migrate every from,to[,flags] row of a CSV file",
		),
		With: fs.String(
			"with",
			"",
			"comma separated migration flags (chapter,cover,notes,download)",
		),
		Copy: fs.Bool(
			"copy",
			false,
			"keep the current work in the library when migrating",
		),
		Source: fs.Int64(
			"source",
			0,
			"source ID to search, 0 is the local source",
		),
		Deep: fs.Bool(
			"deep",
			false,
			"normalize the title and search with several queries",
		),
		Extra: fs.String(
			"extra",
			"",
			"extra terms appended to every search query",
		),
		Sources: fs.Bool(
			"sources",
			false,
			"list installed sources",
		),
		Vacuum: fs.Bool(
			"vacuum",
			false,
			"rebuild the library database to reclaim unused space",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Config: fs.Bool(
			"config",
			false,
			"print config file path and exit",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"enable debug logging for this run",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and actions any immediate flags that don't require
// environment setup. It reports whether the program is done.
func (f *Flags) Pre(args []string, out io.Writer) (bool, error) {
	if err := f.fs.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "Shelfmove v%s\n", config.AppVersion)
		return true, nil
	}

	return false, nil
}

// Setup creates the app directories, starts logging and loads the user
// config.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	configDir string,
	defaults config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	logDir := helpers.LogDir()
	if err := helpers.EnsureDirectories(configDir, logDir); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(logDir, writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(configDir, defaults)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// opt-in error reporting
	if err := telemetry.Init(cfg.ErrorReportingDSN(), config.AppVersion); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	err = helpers.EnsureDirectories(
		cfg.DataDir(),
		cfg.LocalSourceDir(),
		cfg.DownloadsDir(),
		cfg.CoversDir(),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating data directories: %w", err)
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("config", cfg.Path()).
		Msg("shelfmove starting")

	return cfg, nil
}
