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

//go:build !deadlock

// Package syncutil wraps the locks used across Shelfmove. Building with
// -tags=deadlock swaps them for go-deadlock detectors; the timeout can be
// tuned with SHELFMOVE_DEADLOCK_TIMEOUT (a Go duration).
package syncutil

import "sync"

// DeadlockEnabled reports whether lock-order detection is compiled in.
const DeadlockEnabled = false

//nolint:gocritic // the wrapper exists to be swapped at build time
type Mutex struct {
	sync.Mutex
}

//nolint:gocritic // the wrapper exists to be swapped at build time
type RWMutex struct {
	sync.RWMutex
}
