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

// Package sources defines the contract a content provider implements and
// a registry to look providers up by ID.
package sources

import (
	"context"
	"errors"

	"github.com/ZaparooProject/shelfmove/pkg/database"
)

var ErrSourceNotFound = errors.New("source not found")

// Result is one raw search hit returned by a source.
type Result struct {
	Title        string
	URL          string
	ThumbnailURL string
}

// Source is a content provider. Search and FetchChapters may hit the
// network and must honor ctx cancellation.
type Source interface {
	ID() int64
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
	// FetchChapters lists the chapters of a work as the source presents
	// them. ChapterNumber is database.UnrecognizedNumber when the source
	// has no number for a chapter.
	FetchChapters(ctx context.Context, work database.Work) ([]database.Chapter, error)
}

// Resolver finds a source by its ID.
type Resolver interface {
	Get(id int64) (Source, bool)
}
