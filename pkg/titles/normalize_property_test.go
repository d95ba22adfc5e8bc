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

package titles

import (
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var titleGen = rapid.StringMatching(`[a-zA-Z0-9é ()\[\]<>{}\-.!:кровьглаасть進撃の]{0,40}`)

// TestPropertyNormalizeIdempotent verifies normalizing twice gives the same result.
func TestPropertyNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		title := titleGen.Draw(t, "title")

		once := Normalize(title)
		twice := Normalize(once)

		if once != twice {
			t.Fatalf("Not idempotent: first=%q, second=%q", once, twice)
		}
	})
}

// mixedScriptGen favours short titles where Latin and non-Latin letters
// sit next to hyphens, which is where the two filters disagree most.
var mixedScriptGen = rapid.StringOf(rapid.SampledFrom([]rune(
	"ahe tp-.]ｱアßİéвкаかぐや東京 ",
)))

func TestPropertyNormalizeIdempotentMixedScripts(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		title := mixedScriptGen.Draw(t, "title")

		once := Normalize(title)
		if twice := Normalize(once); once != twice {
			t.Fatalf("Not idempotent for %q: first=%q, second=%q", title, once, twice)
		}
	})
}

// TestPropertyNormalizeCharset verifies the result holds no brackets,
// punctuation or redundant whitespace.
func TestPropertyNormalizeCharset(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		title := titleGen.Draw(t, "title")

		result := Normalize(title)

		if strings.ContainsAny(result, "()[]<>{}.!:") {
			t.Fatalf("Result %q kept punctuation from %q", result, title)
		}
		if result != strings.TrimSpace(result) || strings.Contains(result, "  ") {
			t.Fatalf("Result %q has uncollapsed whitespace", result)
		}
		if strings.Contains(result, " - ") {
			t.Fatalf("Result %q kept a separator", result)
		}
	})
}

// TestPropertyPlanDeduplicated verifies plans never repeat a query.
func TestPropertyPlanDeduplicated(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		title := Normalize(titleGen.Draw(t, "title"))

		plan := PlanQueries(title)

		seen := make(map[string]struct{}, len(plan))
		for _, q := range plan {
			if _, ok := seen[q]; ok {
				t.Fatalf("Duplicate query %q in plan %q", q, plan)
			}
			seen[q] = struct{}{}
		}
	})
}

// TestPropertyPlanDeterministic verifies the same title always gives the same plan.
func TestPropertyPlanDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		title := Normalize(titleGen.Draw(t, "title"))

		if !slices.Equal(PlanQueries(title), PlanQueries(title)) {
			t.Fatalf("Non-deterministic plan for %q", title)
		}
	})
}

// TestPropertyPlanLeadsWithFullTitle verifies the full title has top priority.
func TestPropertyPlanLeadsWithFullTitle(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		title := Normalize(titleGen.Draw(t, "title"))

		plan := PlanQueries(title)

		if title == "" {
			if len(plan) != 0 {
				t.Fatalf("Expected empty plan, got %q", plan)
			}
			return
		}
		if len(plan) == 0 || plan[0] != title {
			t.Fatalf("Plan %q does not start with %q", plan, title)
		}
		if len(plan) > 5 {
			t.Fatalf("Plan %q has more than five queries", plan)
		}
	})
}
