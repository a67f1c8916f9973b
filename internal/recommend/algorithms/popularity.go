// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"sort"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Popularity ranks movies by the number of distinct users who rated them.
// A user rating the same movie twice counts once. Movies nobody rated have
// popularity 0.
type Popularity struct {
	BaseAlgorithm

	// Fitted model: movie_id -> distinct raters
	raters map[int]int
}

// NewPopularity creates an unfitted popularity ranker.
func NewPopularity() *Popularity {
	return &Popularity{
		BaseAlgorithm: NewBaseAlgorithm("popularity"),
		raters:        make(map[int]int),
	}
}

// Fit counts distinct raters per movie.
//
//nolint:gocritic // rangeValCopy: Rating is small
func (p *Popularity) Fit(ctx context.Context, ratings []recommend.Rating) error {
	p.acquireFitLock()
	defer p.releaseFitLock()

	p.raters = make(map[int]int)

	type pair struct{ user, movie int }
	seen := make(map[pair]struct{}, len(ratings))
	for i, r := range ratings {
		if i%4096 == 0 && ContextCancelled(ctx) {
			return ctx.Err()
		}
		key := pair{r.UserID, r.MovieID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		p.raters[r.MovieID]++
	}

	p.markFitted()
	return nil
}

// Count returns the number of distinct raters of id.
func (p *Popularity) Count(id int) int {
	p.acquireQueryLock()
	defer p.releaseQueryLock()
	return p.raters[id]
}

// Rank returns a new slice with ids ordered by distinct rater count,
// highest first. Equal counts keep their input order and unknown ids sort
// last. The input slice is not modified.
func (p *Popularity) Rank(ids []int) []int {
	p.acquireQueryLock()
	defer p.releaseQueryLock()

	ranked := make([]int, len(ids))
	copy(ranked, ids)
	sort.SliceStable(ranked, func(i, j int) bool {
		return p.raters[ranked[i]] > p.raters[ranked[j]]
	})
	return ranked
}
