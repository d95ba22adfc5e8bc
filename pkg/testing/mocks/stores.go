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
	"io"

	"github.com/ZaparooProject/shelfmove/pkg/database"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/stretchr/testify/mock"
)

// MockDownloadStore is a mock implementation of migration.DownloadStore.
type MockDownloadStore struct {
	mock.Mock
}

func (m *MockDownloadStore) Count(work database.Work) (int, error) {
	args := m.Called(work)
	if err := args.Error(1); err != nil {
		return 0, fmt.Errorf("mock operation failed: %w", err)
	}
	return args.Int(0), nil
}

func (m *MockDownloadStore) Delete(work database.Work, src sources.Source) error {
	args := m.Called(work, src)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

// MockCoverStore is a mock implementation of migration.CoverStore.
type MockCoverStore struct {
	mock.Mock
}

func (m *MockCoverStore) HasCustomCover(work database.Work) (bool, error) {
	args := m.Called(work)
	if err := args.Error(1); err != nil {
		return false, fmt.Errorf("mock operation failed: %w", err)
	}
	return args.Bool(0), nil
}

func (m *MockCoverStore) ReadCustomCover(work database.Work) (io.ReadCloser, error) {
	args := m.Called(work)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, nil
	}
	return nil, nil
}

func (m *MockCoverStore) WriteCustomCover(work database.Work, r io.Reader) error {
	args := m.Called(work, r)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

// MockEnhancedTracker is a mock implementation of tracking.EnhancedTracker.
type MockEnhancedTracker struct {
	mock.Mock
}

func (m *MockEnhancedTracker) ID() int64 {
	args := m.Called()
	if id, ok := args.Get(0).(int64); ok {
		return id
	}
	return 0
}

func (m *MockEnhancedTracker) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEnhancedTracker) Accepts(sourceID int64) bool {
	args := m.Called(sourceID)
	return args.Bool(0)
}

func (m *MockEnhancedTracker) MigrateTrack(
	ctx context.Context,
	track database.TrackRecord,
	target database.Work,
	newSource int64,
) (*database.TrackRecord, error) {
	args := m.Called(ctx, track, target, newSource)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if rec, ok := args.Get(0).(*database.TrackRecord); ok {
		return rec, nil
	}
	return nil, nil
}

// NewMockEnhancedTracker returns a MockEnhancedTracker answering ID and Name.
func NewMockEnhancedTracker(id int64, name string) *MockEnhancedTracker {
	m := &MockEnhancedTracker{}
	m.On("ID").Return(id).Maybe()
	m.On("Name").Return(name).Maybe()
	return m
}
