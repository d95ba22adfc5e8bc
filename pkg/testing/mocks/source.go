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
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of sources.Source using testify/mock.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) ID() int64 {
	args := m.Called()
	if id, ok := args.Get(0).(int64); ok {
		return id
	}
	return 0
}

func (m *MockSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSource) Search(ctx context.Context, query string) ([]sources.Result, error) {
	args := m.Called(ctx, query)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if results, ok := args.Get(0).([]sources.Result); ok {
		return results, nil
	}
	return nil, nil
}

func (m *MockSource) FetchChapters(ctx context.Context, work database.Work) ([]database.Chapter, error) {
	args := m.Called(ctx, work)
	if err := args.Error(1); err != nil {
		return nil, fmt.Errorf("mock operation failed: %w", err)
	}
	if chapters, ok := args.Get(0).([]database.Chapter); ok {
		return chapters, nil
	}
	return nil, nil
}

// NewMockSource returns a MockSource answering ID and Name.
func NewMockSource(id int64, name string) *MockSource {
	m := &MockSource{}
	m.On("ID").Return(id).Maybe()
	m.On("Name").Return(name).Maybe()
	return m
}

// MockResolver is a mock implementation of sources.Resolver.
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Get(id int64) (sources.Source, bool) {
	args := m.Called(id)
	src, _ := args.Get(0).(sources.Source)
	return src, args.Bool(1)
}
