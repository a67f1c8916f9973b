// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Engine answers free-text title queries with either a co-rating score
// table or near-miss title suggestions. It is built once from fitted
// components and is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger

	// Fitted components (read-only)
	index     TitleIndex
	ranker    PopularityRanker
	finder    SimilarFinder
	suggester Suggester

	catalogSize int
	ratingCount int

	// Query result cache, nil when disabled
	cache *cache.LRU[*QueryResult]

	// Counters
	queryCount  atomic.Int64
	errorCount  atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// fittable is implemented by components that track their fit state.
type fittable interface {
	Name() string
	IsFitted() bool
}

// Stats is a point-in-time snapshot of engine counters and dataset sizes.
type Stats struct {
	CatalogSize    int   `json:"catalog_size"`
	RatingCount    int   `json:"rating_count"`
	VocabularySize int   `json:"vocabulary_size"`
	Queries        int64 `json:"queries"`
	Errors         int64 `json:"errors"`
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
	CacheEntries   int   `json:"cache_entries"`
}

// NewEngine creates an engine over fitted components.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, c Components, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch {
	case c.Index == nil:
		return nil, fmt.Errorf("%w: title index", ErrMissingComponent)
	case c.Ranker == nil:
		return nil, fmt.Errorf("%w: popularity ranker", ErrMissingComponent)
	case c.Finder == nil:
		return nil, fmt.Errorf("%w: similar finder", ErrMissingComponent)
	case c.Suggester == nil:
		return nil, fmt.Errorf("%w: suggester", ErrMissingComponent)
	}

	for _, comp := range []any{c.Index, c.Ranker, c.Finder, c.Suggester} {
		if f, ok := comp.(fittable); ok && !f.IsFitted() {
			return nil, fmt.Errorf("%w: %s", ErrNotReady, f.Name())
		}
	}

	e := &Engine{
		config:      cfg,
		logger:      logger.With().Str("component", "recommend").Logger(),
		index:       c.Index,
		ranker:      c.Ranker,
		finder:      c.Finder,
		suggester:   c.Suggester,
		catalogSize: c.CatalogSize,
		ratingCount: c.RatingCount,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*QueryResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	e.logger.Info().
		Int("movies", c.CatalogSize).
		Int("ratings", c.RatingCount).
		Int("vocabulary", c.Index.VocabularySize()).
		Bool("cache", cfg.Cache.Enabled).
		Msg("engine ready")

	return e, nil
}

// Search returns the top SearchResultLimit lexical hits for title along
// with their movie IDs in the same order.
func (e *Engine) Search(_ context.Context, title string) ([]SearchHit, []int) {
	start := time.Now()
	hits := e.index.Search(title, SearchResultLimit)
	metrics.RecordSearch(time.Since(start))

	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.Movie.ID
	}
	return hits, ids
}

// FindSimilarMovies returns the co-rating score table for movieID. A nil
// slice with a nil error means there is not enough ratings data.
func (e *Engine) FindSimilarMovies(ctx context.Context, movieID int) ([]Recommendation, error) {
	recs, err := e.finder.FindSimilar(ctx, movieID)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendAttempt(len(recs) > 0)
	return recs, nil
}

// SortByPopularity orders ids by distinct rater count, highest first.
func (e *Engine) SortByPopularity(ids []int) []int {
	return e.ranker.Rank(ids)
}

// Suggest returns near-miss catalog titles for a raw query.
func (e *Engine) Suggest(query string) []string {
	return e.suggester.Suggest(query)
}

// Query runs the full pipeline for one free-text title.
//
// When no catalog title shares a term with the query (best score 0) the
// result carries close-match suggestions, or OutcomeNoMovieFound when there
// are none. Otherwise the hits are ordered by popularity and tried one at a
// time; the first candidate with a non-empty score table wins. If every
// candidate lacks data the outcome is OutcomeNoRecommendations.
func (e *Engine) Query(ctx context.Context, title string) (*QueryResult, error) {
	start := time.Now()
	e.queryCount.Add(1)

	if e.cache != nil {
		if cached, ok := e.cache.Get(title); ok {
			e.cacheHits.Add(1)
			metrics.RecordQueryCache(true)
			return cached, nil
		}
		e.cacheMisses.Add(1)
		metrics.RecordQueryCache(false)
	}

	if e.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.QueryTimeout)
		defer cancel()
	}

	result, err := e.query(ctx, title)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	metrics.RecordQuery(result.Outcome.String(), time.Since(start))
	e.logger.Debug().
		Str("query", title).
		Str("outcome", result.Outcome.String()).
		Int("attempts", result.Attempts).
		Dur("duration", time.Since(start)).
		Msg("query answered")

	if e.cache != nil {
		e.cache.Add(title, result)
	}
	return result, nil
}

func (e *Engine) query(ctx context.Context, title string) (*QueryResult, error) {
	result := &QueryResult{Query: title, CleanQuery: CleanTitle(title)}

	hits, ids := e.Search(ctx, title)
	if !hasMatch(hits) {
		result.Suggestions = e.Suggest(title)
		if len(result.Suggestions) > 0 {
			result.Outcome = OutcomeSuggestions
		} else {
			result.Outcome = OutcomeNoMovieFound
		}
		return result, nil
	}
	result.Matches = hits

	var attemptErr error
	for movieID, recs := range e.attempts(ctx, e.SortByPopularity(ids), &attemptErr) {
		result.Attempts++
		if len(recs) > 0 {
			result.Outcome = OutcomeRecommendations
			result.SourceMovieID = movieID
			result.Recommendations = recs
			return result, nil
		}
	}
	if attemptErr != nil {
		return nil, fmt.Errorf("find similar movies: %w", attemptErr)
	}

	result.Outcome = OutcomeNoRecommendations
	return result, nil
}

// attempts lazily yields each candidate with its score table. A candidate
// is only scored when the consumer asks for it, so breaking out of the loop
// after the first non-empty table skips the remaining work. A scoring error
// is stored in errp and ends the sequence.
func (e *Engine) attempts(ctx context.Context, ids []int, errp *error) iter.Seq2[int, []Recommendation] {
	return func(yield func(int, []Recommendation) bool) {
		for _, id := range ids {
			recs, err := e.FindSimilarMovies(ctx, id)
			if err != nil {
				*errp = err
				return
			}
			if !yield(id, recs) {
				return
			}
		}
	}
}

// hasMatch reports whether any hit has positive similarity.
func hasMatch(hits []SearchHit) bool {
	for _, h := range hits {
		if h.Score > 0 {
			return true
		}
	}
	return false
}

// PurgeExpired drops query cache entries older than the cache TTL and
// returns how many were removed. It is a no-op when caching is disabled.
func (e *Engine) PurgeExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		CatalogSize:    e.catalogSize,
		RatingCount:    e.ratingCount,
		VocabularySize: e.index.VocabularySize(),
		Queries:        e.queryCount.Load(),
		Errors:         e.errorCount.Load(),
		CacheHits:      e.cacheHits.Load(),
		CacheMisses:    e.cacheMisses.Load(),
	}
	if e.cache != nil {
		s.CacheEntries = e.cache.Len()
	}
	return s
}
