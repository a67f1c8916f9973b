// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// likes returns ratings of rating for movieID by users first..last inclusive.
func likes(movieID, first, last int, rating float64) []recommend.Rating {
	out := make([]recommend.Rating, 0, last-first+1)
	for u := first; u <= last; u++ {
		out = append(out, recommend.Rating{UserID: u, MovieID: movieID, Rating: rating})
	}
	return out
}

func numberedCatalog(ids ...int) []recommend.Movie {
	movies := make([]recommend.Movie, len(ids))
	for i, id := range ids {
		movies[i] = recommend.NewMovie(id, fmt.Sprintf("Movie %d (2000)", id), "Drama")
	}
	return movies
}

func fitCoRating(t *testing.T, movies []recommend.Movie, ratings ...[]recommend.Rating) *CoRating {
	t.Helper()
	var all []recommend.Rating
	for _, r := range ratings {
		all = append(all, r...)
	}
	c := NewCoRating()
	if err := c.Fit(context.Background(), movies, all); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return c
}

func recIDs(recs []recommend.Recommendation) []int {
	ids := make([]int, len(recs))
	for i, r := range recs {
		ids[i] = r.MovieID
	}
	return ids
}

func TestCoRating_AffinityGuard(t *testing.T) {
	tests := []struct {
		name    string
		ratings []recommend.Rating
		wantNil bool
	}{
		{"99 fans is insufficient", likes(1, 1, 99, 5), true},
		{"100 fans is sufficient", likes(1, 1, 100, 5), false},
		{"ratings of exactly 4.0 are not high", likes(1, 1, 150, 4.0), true},
		{"ratings just above 4.0 are high", likes(1, 1, 100, 4.5), false},
		{"movie with no ratings", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fitCoRating(t, numberedCatalog(1), tt.ratings)
			recs, err := c.FindSimilar(context.Background(), 1)
			if err != nil {
				t.Fatalf("FindSimilar() error = %v", err)
			}
			if (recs == nil) != tt.wantNil {
				t.Errorf("FindSimilar() = %v, wantNil %v", recs, tt.wantNil)
			}
		})
	}
}

func TestCoRating_DuplicateRatingsCountOnce(t *testing.T) {
	// 60 users rate twice: still only 60 distinct fans
	c := fitCoRating(t, numberedCatalog(1), likes(1, 1, 60, 5), likes(1, 1, 60, 4.5))

	if got := c.AffinitySize(1); got != 60 {
		t.Errorf("AffinitySize(1) = %d, want 60", got)
	}
	recs, err := c.FindSimilar(context.Background(), 1)
	if err != nil || recs != nil {
		t.Errorf("FindSimilar() = %v, %v; want nil, nil", recs, err)
	}
}

func TestCoRating_SupportFilter(t *testing.T) {
	c := fitCoRating(t, numberedCatalog(1, 2, 3),
		likes(1, 1, 100, 5),
		likes(2, 1, 10, 5), // exactly 10% of fans
		likes(3, 1, 11, 5), // 11% of fans
	)

	recs, err := c.FindSimilar(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindSimilar() error = %v", err)
	}

	got := map[int]recommend.Recommendation{}
	for _, r := range recs {
		got[r.MovieID] = r
	}
	if _, ok := got[2]; ok {
		t.Error("movie 2 at exactly 10% support should be filtered out")
	}
	r3, ok := got[3]
	if !ok {
		t.Fatal("movie 3 at 11% support should survive")
	}
	if math.Abs(r3.Similar-0.11) > 1e-12 {
		t.Errorf("Similar(3) = %v, want 0.11", r3.Similar)
	}
	for _, r := range recs {
		if r.Similar <= MinSimilarShare {
			t.Errorf("movie %d has Similar %v <= %v", r.MovieID, r.Similar, MinSimilarShare)
		}
	}
}

func TestCoRating_ScoreTable(t *testing.T) {
	// 150 fans of A; 80 of them love B; C is loved by 20 fans and 650
	// outsiders. Population = users 1..800.
	c := fitCoRating(t, numberedCatalog(1, 2, 3),
		likes(1, 1, 150, 5),
		likes(2, 1, 80, 4.5),
		likes(3, 1, 20, 5),
		likes(3, 151, 800, 5),
		likes(2, 801, 900, 2), // low ratings of B by others do not count
	)

	recs, err := c.FindSimilar(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindSimilar() error = %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3: %v", len(recs), recIDs(recs))
	}

	byID := map[int]recommend.Recommendation{}
	for _, r := range recs {
		byID[r.MovieID] = r
	}

	tests := []struct {
		id                            int
		similar, general, score, tol float64
	}{
		{1, 1.0, 150.0 / 800, 800.0 / 150, 1e-9},
		{2, 80.0 / 150, 80.0 / 800, 800.0 / 150, 1e-9},
		{3, 20.0 / 150, 670.0 / 800, (20.0 / 150) / (670.0 / 800), 1e-9},
	}
	for _, tt := range tests {
		r, ok := byID[tt.id]
		if !ok {
			t.Errorf("movie %d missing", tt.id)
			continue
		}
		if math.Abs(r.Similar-tt.similar) > tt.tol {
			t.Errorf("Similar(%d) = %v, want %v", tt.id, r.Similar, tt.similar)
		}
		if math.Abs(r.General-tt.general) > tt.tol {
			t.Errorf("General(%d) = %v, want %v", tt.id, r.General, tt.general)
		}
		if math.Abs(r.Score-tt.score) > tt.tol {
			t.Errorf("Score(%d) = %v, want %v", tt.id, r.Score, tt.score)
		}
		if r.Title != fmt.Sprintf("Movie %d (2000)", tt.id) || r.Genres != "Drama" {
			t.Errorf("movie %d joined as %q/%q", tt.id, r.Title, r.Genres)
		}
	}

	if recs[2].MovieID != 3 {
		t.Errorf("lowest score = movie %d, want 3", recs[2].MovieID)
	}
}

func TestCoRating_OrderingAndCap(t *testing.T) {
	ids := []int{1}
	ratings := [][]recommend.Rating{likes(1, 1, 200, 5)}
	for m := 2; m <= 16; m++ {
		ids = append(ids, m)
		// fans share grows with m, outsiders vary so scores are spread
		ratings = append(ratings, likes(m, 1, 20+m*10, 5))
		ratings = append(ratings, likes(m, 1000+m*100, 1000+m*100+(m%5)*40, 5))
	}
	c := fitCoRating(t, numberedCatalog(ids...), ratings...)

	recs, err := c.FindSimilar(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindSimilar() error = %v", err)
	}
	if len(recs) == 0 || len(recs) > MaxRecommendations {
		t.Fatalf("len(recs) = %d, want 1..%d", len(recs), MaxRecommendations)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score < recs[i].Score {
			t.Errorf("recs[%d].Score = %v < recs[%d].Score = %v", i-1, recs[i-1].Score, i, recs[i].Score)
		}
		if recs[i-1].Score == recs[i].Score && recs[i-1].MovieID > recs[i].MovieID {
			t.Errorf("tie between %d and %d not broken by id", recs[i-1].MovieID, recs[i].MovieID)
		}
	}
}

func TestCoRating_OrphanCandidatesDropped(t *testing.T) {
	tests := []struct {
		name    string
		catalog []recommend.Movie
		want    []int
	}{
		{"orphan removed from table", numberedCatalog(1), []int{1}},
		{"all orphans means insufficient", numberedCatalog(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fitCoRating(t, tt.catalog, likes(1, 1, 100, 5), likes(77, 1, 100, 5))
			recs, err := c.FindSimilar(context.Background(), 1)
			if err != nil {
				t.Fatalf("FindSimilar() error = %v", err)
			}
			if tt.want == nil {
				if recs != nil {
					t.Errorf("FindSimilar() = %v, want nil", recIDs(recs))
				}
				return
			}
			if got := recIDs(recs); !equalInts(got, tt.want) {
				t.Errorf("FindSimilar() ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoRating_ContextCancelled(t *testing.T) {
	c := fitCoRating(t, numberedCatalog(1), likes(1, 1, 120, 5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FindSimilar(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FindSimilar() error = %v, want context.Canceled", err)
	}
}

func TestCoRating_Unfitted(t *testing.T) {
	recs, err := NewCoRating().FindSimilar(context.Background(), 1)
	if recs != nil || err != nil {
		t.Errorf("FindSimilar() = %v, %v; want nil, nil", recs, err)
	}
}
