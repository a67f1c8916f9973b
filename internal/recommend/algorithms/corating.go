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

const (
	// HighRatingThreshold is the rating a user must exceed for a movie to
	// count as liked.
	HighRatingThreshold = 4.0

	// MinAffinityUsers is the smallest affinity set that yields a score
	// table. Smaller sets mean insufficient data.
	MinAffinityUsers = 100

	// MinSimilarShare is the share of the affinity set that must like a
	// candidate for it to survive. The comparison is strict.
	MinSimilarShare = 0.10

	// MaxRecommendations caps a score table.
	MaxRecommendations = 10
)

// CoRating scores movies by how much more fans of a source movie like them
// than the wider population does.
//
// For a source movie s with affinity set A (users who rated s above the
// threshold), each candidate m gets
//
//	similar(m) = |A ∩ likers(m)| / |A|
//	general(m) = |likers(m)| / |P|
//	score(m)   = similar(m) / general(m)
//
// where P is the union of likers over every candidate with
// similar(m) > MinSimilarShare. The source movie is a candidate like any
// other and usually scores at or near the top.
type CoRating struct {
	BaseAlgorithm

	// Fitted model
	likers  map[int][]int // movie_id -> distinct users who rated it highly
	liked   map[int][]int // user_id -> distinct movies they rated highly
	catalog map[int]recommend.Movie
}

// NewCoRating creates an unfitted co-rating recommender.
func NewCoRating() *CoRating {
	return &CoRating{
		BaseAlgorithm: NewBaseAlgorithm("corating"),
		likers:        make(map[int][]int),
		liked:         make(map[int][]int),
		catalog:       make(map[int]recommend.Movie),
	}
}

// Fit indexes high ratings in both directions and keeps the catalog for
// the title/genre join. Ratings at or below the threshold are ignored.
//
//nolint:gocritic // rangeValCopy: Movie and Rating are small
func (c *CoRating) Fit(ctx context.Context, movies []recommend.Movie, ratings []recommend.Rating) error {
	c.acquireFitLock()
	defer c.releaseFitLock()

	c.likers = make(map[int][]int)
	c.liked = make(map[int][]int)
	c.catalog = make(map[int]recommend.Movie, len(movies))

	for _, m := range movies {
		c.catalog[m.ID] = m
	}

	type pair struct{ user, movie int }
	seen := make(map[pair]struct{})
	for i, r := range ratings {
		if i%4096 == 0 && ContextCancelled(ctx) {
			return ctx.Err()
		}
		if r.Rating <= HighRatingThreshold {
			continue
		}
		key := pair{r.UserID, r.MovieID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		c.likers[r.MovieID] = append(c.likers[r.MovieID], r.UserID)
		c.liked[r.UserID] = append(c.liked[r.UserID], r.MovieID)
	}

	c.markFitted()
	return nil
}

// AffinitySize returns how many distinct users rated movieID highly.
func (c *CoRating) AffinitySize(movieID int) int {
	c.acquireQueryLock()
	defer c.releaseQueryLock()
	return len(c.likers[movieID])
}

// FindSimilar returns up to MaxRecommendations rows ordered by score,
// highest first, with ties broken by ascending movie ID. It returns nil
// with a nil error when the affinity set is smaller than MinAffinityUsers
// or when no surviving candidate is in the catalog. The only error is
// context cancellation.
func (c *CoRating) FindSimilar(ctx context.Context, movieID int) ([]recommend.Recommendation, error) {
	c.acquireQueryLock()
	defer c.releaseQueryLock()

	if !c.fitted {
		return nil, nil
	}

	affinity := c.likers[movieID]
	if len(affinity) < MinAffinityUsers {
		return nil, nil
	}

	shared := make(map[int]int)
	for i, user := range affinity {
		if i%256 == 0 && ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		for _, m := range c.liked[user] {
			shared[m]++
		}
	}

	affinitySize := float64(len(affinity))
	rows := make([]recommend.Recommendation, 0, len(shared))
	for m, count := range shared {
		similar := float64(count) / affinitySize
		if similar > MinSimilarShare {
			rows = append(rows, recommend.Recommendation{MovieID: m, Similar: similar})
		}
	}

	population := make(map[int]struct{})
	for _, row := range rows {
		for _, user := range c.likers[row.MovieID] {
			population[user] = struct{}{}
		}
	}
	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	populationSize := float64(len(population))
	for i := range rows {
		rows[i].General = float64(len(c.likers[rows[i].MovieID])) / populationSize
		rows[i].Score = rows[i].Similar / rows[i].General
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].MovieID < rows[j].MovieID
	})
	if len(rows) > MaxRecommendations {
		rows = rows[:MaxRecommendations]
	}

	out := make([]recommend.Recommendation, 0, len(rows))
	for _, row := range rows {
		movie, ok := c.catalog[row.MovieID]
		if !ok {
			continue
		}
		row.Title = movie.Title
		row.Genres = movie.Genres
		out = append(out, row)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
