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

package tracking

import (
	"context"
	"testing"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type komgaTracker struct {
	sources map[int64]bool
}

func (*komgaTracker) ID() int64 { return 9 }

func (*komgaTracker) Name() string { return "Komga" }

func (k *komgaTracker) Accepts(sourceID int64) bool {
	return k.sources[sourceID]
}

func (*komgaTracker) MigrateTrack(
	_ context.Context,
	track database.TrackRecord,
	_ database.Work,
	_ int64,
) (*database.TrackRecord, error) {
	return &track, nil
}

func TestCapabilitiesEnhancedFor(t *testing.T) {
	t.Parallel()

	caps := NewCapabilities(&komgaTracker{sources: map[int64]bool{100: true}})

	tracker, ok := caps.EnhancedFor(9, 100)
	require.True(t, ok)
	assert.Equal(t, "Komga", tracker.Name())

	_, ok = caps.EnhancedFor(9, 200)
	assert.False(t, ok, "source not accepted")

	_, ok = caps.EnhancedFor(1, 100)
	assert.False(t, ok, "plain tracker")
}

func TestNilCapabilities(t *testing.T) {
	t.Parallel()

	var caps Capabilities
	_, ok := caps.EnhancedFor(9, 100)
	assert.False(t, ok)
}
