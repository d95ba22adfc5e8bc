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
	"errors"
	"fmt"
	"time"
)

const (
	StepSyncChapters = "sync_chapters"
	StepChapters     = "chapters"
	StepCategories   = "categories"
	StepTracks       = "tracks"
	StepDownloads    = "downloads"
	StepCover        = "cover"
	StepWorks        = "works"
)

type StepStatus int

const (
	StepDone StepStatus = iota
	StepSkipped
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepSkipped:
		return "skipped"
	case StepFailed:
		return "failed"
	default:
		return fmt.Sprintf("StepStatus(%d)", int(s))
	}
}

// StepResult records how one step of a migration went.
type StepResult struct {
	Step   string
	Detail string
	Status StepStatus
}

// StepError is a failure inside a migration step. The migration carries
// on after it.
type StepError struct {
	Err  error
	Step string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Report describes the outcome of one migration run.
type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	ID         string
	Steps      []StepResult
	Errors     []*StepError
	CurrentID  int64
	TargetID   int64
	Flags      Flags
	Replace    bool
}

// OK reports whether every step finished without error.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Err joins every step error, nil when the migration was clean.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Step returns the result recorded for a step.
func (r *Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepResult{}, false
}

func (r *Report) done(step, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepDone, Detail: detail})
}

func (r *Report) skipped(step, reason string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepSkipped, Detail: reason})
}

func (r *Report) failed(step string, err error) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepFailed, Detail: err.Error()})
	r.Errors = append(r.Errors, &StepError{Step: step, Err: err})
}

// warn records an error that did not stop its step.
func (r *Report) warn(step string, err error) {
	r.Errors = append(r.Errors, &StepError{Step: step, Err: err})
}
