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
	"context"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/rs/zerolog/log"
)

// ApplicableFlags returns the flags that would change something for work.
// Chapter transfer always applies; the others depend on the work having a
// custom cover, notes or downloads. A probe that fails leaves its flag out.
//
//nolint:gocritic // works are passed by value like the rest of the API
func ApplicableFlags(ctx context.Context, work database.Work, covers CoverStore, downloads DownloadStore) Flags {
	flags := FlagChapter

	if ctx.Err() != nil {
		return flags
	}

	if covers != nil {
		has, err := covers.HasCustomCover(work)
		if err != nil {
			log.Warn().Err(err).Int64("work_id", work.ID).Msg("failed to check custom cover")
		} else if has {
			flags |= FlagCustomCover
		}
	}

	if strings.TrimSpace(work.Notes) != "" {
		flags |= FlagNotes
	}

	if downloads != nil {
		count, err := downloads.Count(work)
		if err != nil {
			log.Warn().Err(err).Int64("work_id", work.ID).Msg("failed to count downloads")
		} else if count > 0 {
			flags |= FlagRemoveDownload
		}
	}

	return flags
}

// ApplicableFlags probes the migrator's own stores.
//
//nolint:gocritic // works are passed by value like the rest of the API
func (m *Migrator) ApplicableFlags(ctx context.Context, work database.Work) Flags {
	return ApplicableFlags(ctx, work, m.deps.Covers, m.deps.Downloads)
}
