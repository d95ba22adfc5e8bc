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

// Package search finds the entry on a source that best matches a title.
package search

import (
	"context"
	"errors"
	"strings"

	"github.com/ZaparooProject/shelfmove/pkg/matcher"
	"github.com/ZaparooProject/shelfmove/pkg/sources"
	"github.com/ZaparooProject/shelfmove/pkg/titles"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

const (
	DefaultThreshold   = 0.4
	DefaultConcurrency = 4
)

// ErrNoCandidate is returned when no result clears the similarity
// threshold or the title yields no query at all.
var ErrNoCandidate = errors.New("no matching candidate")

type Mode int

const (
	// ModeRegular runs the raw title as a single query.
	ModeRegular Mode = iota
	// ModeDeep normalizes the title and runs every planned query.
	ModeDeep
)

func (m Mode) String() string {
	if m == ModeDeep {
		return "deep"
	}
	return "regular"
}

// SearchFunc runs one query against a source.
type SearchFunc func(ctx context.Context, query string) ([]sources.Result, error)

type Options struct {
	// Language drives case folding during normalization.
	Language language.Tag
	// ExtraQuery is appended to every query sent to the source.
	ExtraQuery string
	// Threshold is the minimum similarity a candidate needs.
	Threshold float64
	// Concurrency bounds how many queries run at once.
	Concurrency int
	// QueriesPerSecond throttles queries within one search. Zero disables
	// throttling.
	QueriesPerSecond float64
	// TrustSoleResult accepts a lone result of a lone query without
	// scoring it.
	TrustSoleResult bool
}

func DefaultOptions() Options {
	return Options{
		Language:        language.Und,
		Threshold:       DefaultThreshold,
		Concurrency:     DefaultConcurrency,
		TrustSoleResult: true,
	}
}

// Candidate is the selected search result with its score.
type Candidate struct {
	Result     sources.Result
	Query      string
	Similarity float64
	// SoleResult is set when the only result of the only query was taken
	// without scoring. Similarity is 1 in that case and says nothing about
	// how close the titles are.
	SoleResult bool
}

// Engine runs title searches. It holds no per-search state and is safe for
// concurrent use.
type Engine struct {
	normalizer *titles.Normalizer
	opts       Options
}

func NewEngine(opts Options) *Engine {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Engine{
		normalizer: titles.NewNormalizer(opts.Language),
		opts:       opts,
	}
}

func (e *Engine) Options() Options {
	return e.opts
}

// SearchSource searches a source's catalog for title.
func (e *Engine) SearchSource(
	ctx context.Context,
	src sources.Source,
	title string,
	mode Mode,
) (*Candidate, error) {
	return e.Search(ctx, title, src.Search, mode)
}

// Search runs the queries for title through fn and returns the best
// scoring result at or above the threshold. Failing queries count as
// empty. If ctx is cancelled the context error is returned and any
// results gathered so far are dropped.
func (e *Engine) Search(ctx context.Context, title string, fn SearchFunc, mode Mode) (*Candidate, error) {
	key, queries := e.plan(title, mode)
	if len(queries) == 0 {
		log.Debug().Str("title", title).Str("mode", mode.String()).Msg("title produced no queries")
		return nil, ErrNoCandidate
	}

	results, err := e.run(ctx, queries, fn)
	if err != nil {
		return nil, err
	}

	return e.pick(title, key, mode, queries, results)
}

// plan returns the comparison key for title and the queries to run.
func (e *Engine) plan(title string, mode Mode) (string, titles.Plan) {
	if mode == ModeDeep {
		normalized := e.normalizer.Normalize(title)
		return normalized, titles.PlanQueries(normalized).WithExtra(e.opts.ExtraQuery)
	}
	if strings.TrimSpace(title) == "" {
		return title, nil
	}
	return title, titles.Plan{title}.WithExtra(e.opts.ExtraQuery)
}

// run executes every query and returns the results indexed like queries.
func (e *Engine) run(ctx context.Context, queries titles.Plan, fn SearchFunc) ([][]sources.Result, error) {
	var limiter *rate.Limiter
	if e.opts.QueriesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(e.opts.QueriesPerSecond), 1)
	}

	results := make([][]sources.Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)

	for i, query := range queries {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return gctx.Err()
				}
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := fn(gctx, query)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Warn().Err(err).Str("query", query).Msg("search query failed")
				return nil
			}

			log.Debug().Str("query", query).Int("results", len(res)).Msg("search query finished")
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) pick(
	title string,
	key string,
	mode Mode,
	queries titles.Plan,
	results [][]sources.Result,
) (*Candidate, error) {
	var (
		flat      []sources.Result
		flatQuery []string
	)
	for i, res := range results {
		for _, r := range res {
			flat = append(flat, r)
			flatQuery = append(flatQuery, queries[i])
		}
	}

	if e.opts.TrustSoleResult && len(queries) == 1 && len(flat) == 1 {
		log.Debug().
			Str("title", title).
			Str("query", queries[0]).
			Str("result", flat[0].Title).
			Str("shortcut", "sole_result").
			Msg("accepting only search result without scoring")
		return &Candidate{Result: flat[0], Query: queries[0], Similarity: 1, SoleResult: true}, nil
	}

	candidates := make([]string, len(flat))
	for i, r := range flat {
		if mode == ModeDeep {
			candidates[i] = e.normalizer.Normalize(r.Title)
		} else {
			candidates[i] = r.Title
		}
	}

	matches := matcher.Rank(key, candidates, e.opts.Threshold)
	if len(matches) == 0 {
		log.Debug().
			Str("title", title).
			Int("results", len(flat)).
			Float64("threshold", e.opts.Threshold).
			Msg("no search result cleared the threshold")
		return nil, ErrNoCandidate
	}

	best := matches[0]
	log.Debug().
		Str("title", title).
		Str("result", flat[best.Index].Title).
		Float64("similarity", best.Similarity).
		Msg("selected search candidate")
	return &Candidate{
		Result:     flat[best.Index],
		Query:      flatQuery[best.Index],
		Similarity: best.Similarity,
	}, nil
}
