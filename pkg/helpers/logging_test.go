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

package helpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZaparooProject/shelfmove/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	existing := filepath.Join(root, "existing")
	require.NoError(t, os.MkdirAll(existing, 0o750))

	require.NoError(t, EnsureDirectories(nested, "", existing))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
	}
}

func TestEnsureDirectoriesFileInTheWay(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	err := EnsureDirectories(filepath.Join(file, "sub"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}

//nolint:paralleltest // replaces the global logger
func TestInitLogging(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	logDir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	require.NoError(t, InitLogging(logDir, []io.Writer{&console}))
	log.Info().Str("work_id", "12").Msg("hello from test")

	assert.Contains(t, console.String(), "hello from test")
	data, err := os.ReadFile(filepath.Join(logDir, config.LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"work_id":"12"`)
}
