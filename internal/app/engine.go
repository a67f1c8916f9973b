// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package app wires configuration, dataset loading and component fitting
// into a ready recommend.Engine. Both the server and the CLI start here.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
)

// EngineConfig maps the recommend config section onto engine settings.
func EngineConfig(rc config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		Cache: recommend.CacheConfig{
			Enabled:    rc.CacheEnabled,
			TTL:        rc.CacheTTL,
			MaxEntries: rc.CacheMaxEntries,
		},
		QueryTimeout: rc.QueryTimeout,
	}
}

// DatasetConfig maps the data config section onto loader settings.
func DatasetConfig(dc config.DataConfig) dataset.Config {
	return dataset.Config{
		MoviesPath:  dc.MoviesPath,
		RatingsPath: dc.RatingsPath,
		Kind:        dc.Loader,
		Threads:     dc.DuckDBThreads,
	}
}

// LoadEngine reads the catalog and ratings, fits every component and
// returns a ready engine. Dataset size gauges are set on success.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func LoadEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	loader, err := dataset.New(DatasetConfig(cfg.Data))
	if err != nil {
		return nil, err
	}

	ds, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info().
		Str("loader", ds.Stats.Loader).
		Int("movies", ds.Stats.MoviesRead).
		Int("movies_skipped", ds.Stats.MoviesSkipped).
		Int("ratings", ds.Stats.RatingsRead).
		Int("ratings_skipped", ds.Stats.RatingsSkipped).
		Dur("duration", ds.Stats.Duration).
		Msg("Dataset loaded")

	start := time.Now()
	components, err := algorithms.Build(ctx, ds.Movies, ds.Ratings)
	if err != nil {
		return nil, fmt.Errorf("fit components: %w", err)
	}

	engine, err := recommend.NewEngine(EngineConfig(cfg.Recommend), components, logger.With().Str("component", "recommend").Logger())
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	stats := engine.Stats()
	metrics.SetDatasetSize(stats.CatalogSize, stats.RatingCount, stats.VocabularySize)
	logger.Info().
		Int("vocabulary", stats.VocabularySize).
		Dur("duration", time.Since(start)).
		Msg("Engine ready")

	return engine, nil
}
