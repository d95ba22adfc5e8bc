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

package migration

import (
	"fmt"
	"strings"
)

// Flags selects which optional parts of a work's state are transferred.
type Flags uint8

const (
	// FlagChapter transfers reading progress and category membership.
	FlagChapter Flags = 1 << iota
	// FlagCustomCover copies the user's custom cover.
	FlagCustomCover
	// FlagNotes copies the user's notes.
	FlagNotes
	// FlagRemoveDownload deletes downloads made from the current source.
	FlagRemoveDownload

	AllFlags = FlagChapter | FlagCustomCover | FlagNotes | FlagRemoveDownload
)

var flagNames = []struct {
	name string
	flag Flags
}{
	{"chapter", FlagChapter},
	{"cover", FlagCustomCover},
	{"notes", FlagNotes},
	{"download", FlagRemoveDownload},
}

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Names lists the set flags in canonical order.
func (f Flags) Names() []string {
	names := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Flags) String() string {
	return strings.Join(f.Names(), ",")
}

// ParseFlags parses a comma separated list such as "chapter,notes".
// Blank input is the empty set.
func ParseFlags(s string) (Flags, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return FlagsFromNames(strings.Split(s, ","))
}

// FlagsFromNames parses a list of flag names, ignoring case and blanks.
func FlagsFromNames(names []string) (Flags, error) {
	var flags Flags
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == name {
				flags |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown migration flag: %q", raw)
		}
	}
	return flags, nil
}
