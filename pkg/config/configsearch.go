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
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	DefaultSearchLanguage    = "und"
	DefaultSearchThreshold   = 0.4
	DefaultSearchConcurrency = 4
)

type Search struct {
	Language         string  `toml:"language" validate:"omitempty,langtag"`
	ExtraQuery       string  `toml:"extra_query,omitempty"`
	Threshold        float64 `toml:"threshold" validate:"gte=0,lte=1"`
	QueriesPerSecond float64 `toml:"queries_per_second,omitempty" validate:"gte=0"`
	Concurrency      int     `toml:"concurrency" validate:"gte=1,lte=32"`
	Deep             bool    `toml:"deep"`
	TrustSoleResult  bool    `toml:"trust_sole_result"`
}

func (c *Instance) SearchThreshold() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.Threshold
}

func (c *Instance) SearchDeep() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.Deep
}

func (c *Instance) SetSearchDeep(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Search.Deep = enabled
}

func (c *Instance) SearchConcurrency() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.Concurrency
}

func (c *Instance) SearchQueriesPerSecond() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.QueriesPerSecond
}

func (c *Instance) SearchExtraQuery() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.ExtraQuery
}

func (c *Instance) SearchTrustSoleResult() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.TrustSoleResult
}

// SearchLanguage returns the language used to fold titles, language.Und
// when unset.
func (c *Instance) SearchLanguage() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Search.Language == "" {
		return language.Und
	}
	tag, err := language.Parse(c.vals.Search.Language)
	if err != nil {
		log.Warn().Err(err).Str("language", c.vals.Search.Language).Msg("invalid search language")
		return language.Und
	}
	return tag
}
