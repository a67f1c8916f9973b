// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Build fits every engine component over the same dataset and returns them
// ready for recommend.NewEngine. The fits are independent and run
// concurrently; the first failure cancels the rest.
func Build(ctx context.Context, movies []recommend.Movie, ratings []recommend.Rating) (recommend.Components, error) {
	index := NewTFIDFIndex(TFIDFConfig{})
	ranker := NewPopularity()
	finder := NewCoRating()
	suggester := NewCloseMatcher(CloseMatcherConfig{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := index.Fit(gctx, movies); err != nil {
			return fmt.Errorf("fit title index: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := ranker.Fit(gctx, ratings); err != nil {
			return fmt.Errorf("fit popularity: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := finder.Fit(gctx, movies, ratings); err != nil {
			return fmt.Errorf("fit co-rating: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		suggester.Fit(movies)
		return nil
	})

	if err := g.Wait(); err != nil {
		return recommend.Components{}, err
	}

	return recommend.Components{
		Index:       index,
		Ranker:      ranker,
		Finder:      finder,
		Suggester:   suggester,
		CatalogSize: len(movies),
		RatingCount: len(ratings),
	}, nil
}
