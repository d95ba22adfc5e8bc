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

package mocks

import (
	"context"
	"fmt"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/stretchr/testify/mock"
)

// MockWorkRepository is a mock implementation of database.WorkRepository.
type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) GetWork(ctx context.Context, id int64) (database.Work, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return database.Work{}, fmt.Errorf("mock operation failed: %w", err)
	}
	if work, ok := args.Get(0).(database.Work); ok {
		return work, nil
	}
	return database.Work{}, nil
}

func (m *MockWorkRepository) BatchUpdate(ctx context.Context, updates []database.WorkUpdate) error {
	args := m.Called(ctx, updates)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

// MockChapterRepository is a mock implementation of database.ChapterRepository.
type MockChapterRepository struct {
	mock.Mock
}

func (m *MockChapterRepository) ListByWork(ctx context.Context, workID int64) ([]database.Chapter, error) {
	args := m.Called(ctx, workID)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if chapters, ok := args.Get(0).([]database.Chapter); ok {
		return chapters, nil
	}
	return nil, nil
}

func (m *MockChapterRepository) BatchUpdate(ctx context.Context, updates []database.ChapterUpdate) error {
	args := m.Called(ctx, updates)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

func (m *MockChapterRepository) Sync(ctx context.Context, workID int64, fetched []database.Chapter) (int, error) {
	args := m.Called(ctx, workID, fetched)
	if err := args.Error(1); err != nil {
		return 0, fmt.Errorf("mock operation failed: %w", err)
	}
	return args.Int(0), nil
}

// MockCategoryRepository is a mock implementation of database.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListByWork(ctx context.Context, workID int64) ([]int64, error) {
	args := m.Called(ctx, workID)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, nil
	}
	return nil, nil
}

func (m *MockCategoryRepository) SetForWork(ctx context.Context, workID int64, categoryIDs []int64) error {
	args := m.Called(ctx, workID, categoryIDs)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

// MockTrackRepository is a mock implementation of database.TrackRepository.
type MockTrackRepository struct {
	mock.Mock
}

func (m *MockTrackRepository) ListByWork(ctx context.Context, workID int64) ([]database.TrackRecord, error) {
	args := m.Called(ctx, workID)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if records, ok := args.Get(0).([]database.TrackRecord); ok {
		return records, nil
	}
	return nil, nil
}

func (m *MockTrackRepository) BatchUpsert(ctx context.Context, records []database.TrackRecord) error {
	args := m.Called(ctx, records)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}
