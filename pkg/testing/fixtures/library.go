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

package fixtures

import (
	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
)

// Library fixture collections for testing

// Works provides a work on an old source and its counterpart on a new one.
var Works = struct {
	Current    database.Work
	Target     database.Work
	Unrelated  database.Work
	Collection []database.Work
}{
	Current: database.Work{
		SourceID:     101,
		URL:          "/manga/vinland-saga",
		Title:        "Vinland Saga",
		Notes:        "stopped at the farm arc",
		ChapterFlags: 2,
		ViewerFlags:  1,
		DateAdded:    1_700_000_000_000,
		Favorite:     true,
	},
	Target: database.Work{
		SourceID: 0,
		URL:      "Vinland Saga",
		Title:    "Vinland Saga",
	},
	Unrelated: database.Work{
		SourceID:  101,
		URL:       "/manga/berserk",
		Title:     "Berserk",
		DateAdded: 1_690_000_000_000,
		Favorite:  true,
	},
	Collection: []database.Work{
		{
			SourceID:     101,
			URL:          "/manga/vinland-saga",
			Title:        "Vinland Saga",
			Notes:        "stopped at the farm arc",
			ChapterFlags: 2,
			ViewerFlags:  1,
			DateAdded:    1_700_000_000_000,
			Favorite:     true,
		},
		{
			SourceID:  101,
			URL:       "/manga/berserk",
			Title:     "Berserk",
			DateAdded: 1_690_000_000_000,
			Favorite:  true,
		},
	},
}

// CurrentChapters are the chapters of Works.Current, with the first two
// read and chapter 2.5 bookmarked. WorkID is left for the caller to set.
var CurrentChapters = []database.Chapter{
	{URL: "/manga/vinland-saga/1", Name: "Chapter 1", ChapterNumber: 1, SourceOrder: 0, Read: true, DateFetch: 1_700_000_100_000},
	{URL: "/manga/vinland-saga/2", Name: "Chapter 2", ChapterNumber: 2, SourceOrder: 1, Read: true, DateFetch: 1_700_000_200_000},
	{URL: "/manga/vinland-saga/2.5", Name: "Chapter 2.5", ChapterNumber: 2.5, SourceOrder: 2, Bookmark: true, DateFetch: 1_700_000_300_000},
	{URL: "/manga/vinland-saga/3", Name: "Chapter 3", ChapterNumber: 3, SourceOrder: 3, DateFetch: 1_700_000_400_000},
	{URL: "/manga/vinland-saga/extra", Name: "Afterword", ChapterNumber: database.UnrecognizedNumber, SourceOrder: 4, Read: true},
}

// LocalChapters are the directory names of Works.Target in the local source.
var LocalChapters = []string{"Chapter 1", "Chapter 2", "Chapter 2.5", "Chapter 3", "Chapter 4"}

// Tracks are tracking records of Works.Current on two services.
var Tracks = []database.TrackRecord{
	{ServiceID: 1, RemoteID: 4401, Title: "Vinland Saga", Status: "reading", LastChapterRead: 2, TotalChapters: 210},
	{ServiceID: 2, RemoteID: 9120, Title: "Vinland Saga", Status: "reading", LastChapterRead: 2, Score: 9},
}

// Categories are category names the current work belongs to.
var Categories = []database.Category{
	{Name: "Reading", Order: 0},
	{Name: "Seinen", Order: 1},
}

// SearchResults are catalog entries a remote source might return for
// "Vinland Saga".
var SearchResults = struct {
	Exact      sources.Result
	Spinoff    sources.Result
	Unrelated  sources.Result
	Collection []sources.Result
}{
	Exact:     sources.Result{Title: "Vinland Saga", URL: "/title/vinland-saga"},
	Spinoff:   sources.Result{Title: "Vinland Saga: Side Stories", URL: "/title/vinland-side"},
	Unrelated: sources.Result{Title: "Planetes", URL: "/title/planetes"},
	Collection: []sources.Result{
		{Title: "Vinland Saga: Side Stories", URL: "/title/vinland-side"},
		{Title: "Vinland Saga", URL: "/title/vinland-saga"},
		{Title: "Planetes", URL: "/title/planetes"},
	},
}
