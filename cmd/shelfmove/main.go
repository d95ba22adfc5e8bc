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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZaparooProject/shelfmove/internal/telemetry"
	"github.com/ZaparooProject/shelfmove/pkg/cli"
	"github.com/ZaparooProject/shelfmove/pkg/config"
	"github.com/ZaparooProject/shelfmove/pkg/database/librarydb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)
	done, err := flags.Pre(os.Args[1:], os.Stdout)
	if err != nil || done {
		return err
	}

	var logWriters []io.Writer
	if *flags.Debug {
		logWriters = []io.Writer{zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		}}
	}

	cfg, err := cli.Setup(config.DefaultConfigDir(), config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}
	defer telemetry.Close()
	if *flags.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	db, err := librarydb.OpenLibraryDB(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("error opening library database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing library database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, db, afero.NewOsFs())
	err = flags.Run(ctx, cfg, app, os.Stdout)
	if errors.Is(err, cli.ErrNoCommand) {
		flag.Usage()
	}
	return err
}
