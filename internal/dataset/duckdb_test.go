// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"errors"
	"testing"
)

// Both loaders must agree on rows that only fail type conversion.
const parityRatingsCSV = `userId,movieId,rating,timestamp
1,1,4.0,964982703
1,3,4.5,964981247
x,1,4.0,1
2,2,3.5,
3,3
4,2,5.0,notatime
`

func TestDuckDBLoader_MatchesCSV(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", testMoviesCSV)
	ratings := writeFile(t, dir, "ratings.csv", parityRatingsCSV)

	want, err := NewCSVLoader(movies, ratings).Load(context.Background())
	if err != nil {
		t.Fatalf("CSV Load() error = %v", err)
	}
	got, err := NewDuckDBLoader(movies, ratings, 1).Load(context.Background())
	if err != nil {
		t.Fatalf("DuckDB Load() error = %v", err)
	}

	if got.Stats.Loader != KindDuckDB {
		t.Errorf("Stats.Loader = %q, want %q", got.Stats.Loader, KindDuckDB)
	}
	if got.Stats.MoviesSkipped != want.Stats.MoviesSkipped || got.Stats.RatingsSkipped != want.Stats.RatingsSkipped {
		t.Errorf("skipped = %d/%d, want %d/%d",
			got.Stats.MoviesSkipped, got.Stats.RatingsSkipped,
			want.Stats.MoviesSkipped, want.Stats.RatingsSkipped)
	}

	if len(got.Movies) != len(want.Movies) {
		t.Fatalf("len(Movies) = %d, want %d", len(got.Movies), len(want.Movies))
	}
	for i := range want.Movies {
		if got.Movies[i] != want.Movies[i] {
			t.Errorf("Movies[%d] = %+v, want %+v", i, got.Movies[i], want.Movies[i])
		}
	}

	if len(got.Ratings) != len(want.Ratings) {
		t.Fatalf("len(Ratings) = %d, want %d", len(got.Ratings), len(want.Ratings))
	}
	for i := range want.Ratings {
		if got.Ratings[i] != want.Ratings[i] {
			t.Errorf("Ratings[%d] = %+v, want %+v", i, got.Ratings[i], want.Ratings[i])
		}
	}
}

func TestDuckDBLoader_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", "movieId,title\n1,Toy Story (1995)\n")
	ratings := writeFile(t, dir, "ratings.csv", parityRatingsCSV)

	_, err := NewDuckDBLoader(movies, ratings, 0).Load(context.Background())
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("Load() error = %v, want %v", err, ErrMalformedHeader)
	}
}
