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

// Package tracking describes external progress trackers and which of them
// can re-derive a tracking record when a work changes source.
package tracking

import (
	"context"

	"github.com/ZaparooProject/shelfmove/pkg/database"
)

// Tracker is an external progress tracking service.
type Tracker interface {
	ID() int64
	Name() string
}

// EnhancedTracker is a tracker bound to specific sources that can look a
// work up itself instead of relying on a user supplied link.
type EnhancedTracker interface {
	Tracker
	// Accepts reports whether the tracker can follow works on a source.
	Accepts(sourceID int64) bool
	// MigrateTrack returns the record to use for target, which now lives
	// on newSource. A nil record with a nil error keeps the re-pointed
	// record unchanged.
	MigrateTrack(
		ctx context.Context,
		track database.TrackRecord,
		target database.Work,
		newSource int64,
	) (*database.TrackRecord, error)
}

// Capabilities maps tracker service IDs to their enhanced implementation.
// Trackers not present are treated as plain trackers.
type Capabilities map[int64]EnhancedTracker

// NewCapabilities indexes enhanced trackers by ID.
func NewCapabilities(trackers ...EnhancedTracker) Capabilities {
	c := make(Capabilities, len(trackers))
	for _, t := range trackers {
		c[t.ID()] = t
	}
	return c
}

// EnhancedFor returns the enhanced tracker for serviceID if it accepts
// works on sourceID.
func (c Capabilities) EnhancedFor(serviceID, sourceID int64) (EnhancedTracker, bool) {
	t, ok := c[serviceID]
	if !ok || !t.Accepts(sourceID) {
		return nil, false
	}
	return t, true
}
