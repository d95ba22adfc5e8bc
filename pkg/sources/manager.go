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

package sources

import (
	"fmt"
	"slices"

	"github.com/ZaparooProject/shelfmove/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// Manager is the registry of installed sources.
type Manager struct {
	sources map[int64]Source
	mu      syncutil.RWMutex
}

func NewManager(srcs ...Source) *Manager {
	m := &Manager{
		sources: make(map[int64]Source, len(srcs)),
	}
	for _, src := range srcs {
		m.Register(src)
	}
	return m
}

// Register adds a source, replacing any source with the same ID.
func (m *Manager) Register(src Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.sources[src.ID()]; ok {
		log.Warn().
			Int64("source_id", src.ID()).
			Str("previous", prev.Name()).
			Str("name", src.Name()).
			Msg("replacing registered source")
	}
	m.sources[src.ID()] = src
	log.Debug().Int64("source_id", src.ID()).Str("name", src.Name()).Msg("registered source")
}

func (m *Manager) Get(id int64) (Source, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src, ok := m.sources[id]
	return src, ok
}

// Lookup is Get returning ErrSourceNotFound for unknown IDs.
func (m *Manager) Lookup(id int64) (Source, error) {
	src, ok := m.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, id)
	}
	return src, nil
}

// List returns the registered sources ordered by ID.
func (m *Manager) List() []Source {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Source, 0, len(m.sources))
	for _, src := range m.sources {
		out = append(out, src)
	}
	slices.SortFunc(out, func(a, b Source) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		default:
			return 0
		}
	})
	return out
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sources)
}
