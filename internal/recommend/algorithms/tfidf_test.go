// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"math"
	"testing"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

func testCatalog() []recommend.Movie {
	return []recommend.Movie{
		recommend.NewMovie(1, "Toy Story (1995)", "Adventure|Animation|Children|Comedy|Fantasy"),
		recommend.NewMovie(2, "Jumanji (1995)", "Adventure|Children|Fantasy"),
		recommend.NewMovie(3, "Toy Story 2 (1999)", "Adventure|Animation|Children|Comedy|Fantasy"),
		recommend.NewMovie(4, "Heat (1995)", "Action|Crime|Thriller"),
	}
}

func fitIndex(t *testing.T, movies []recommend.Movie) *TFIDFIndex {
	t.Helper()
	idx := NewTFIDFIndex(TFIDFConfig{})
	if err := idx.Fit(context.Background(), movies); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return idx
}

func hitIDs(hits []recommend.SearchHit) []int {
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.Movie.ID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewTFIDFIndex(t *testing.T) {
	tests := []struct {
		name string
		cfg  TFIDFConfig
		want int
	}{
		{"applies default n-gram range", TFIDFConfig{}, 2},
		{"keeps provided n-gram range", TFIDFConfig{MaxNGram: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewTFIDFIndex(tt.cfg)
			if idx.maxNGram != tt.want {
				t.Errorf("maxNGram = %d, want %d", idx.maxNGram, tt.want)
			}
			if idx.IsFitted() {
				t.Error("new index should not be fitted")
			}
		})
	}
}

func TestTFIDFIndex_Terms(t *testing.T) {
	idx := NewTFIDFIndex(TFIDFConfig{})

	got := idx.terms("toy story  1995")
	want := []string{"toy", "story", "1995", "toy story", "story 1995"}
	if len(got) != len(want) {
		t.Fatalf("terms() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("terms()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := idx.terms(""); len(got) != 0 {
		t.Errorf("terms(\"\") = %v, want empty", got)
	}
}

func TestTFIDFIndex_Fit(t *testing.T) {
	idx := fitIndex(t, testCatalog())

	// toy, story, 1995, toy story, story 1995, jumanji, jumanji 1995,
	// 2, 1999, story 2, 2 1999, heat, heat 1995
	if got := idx.VocabularySize(); got != 13 {
		t.Errorf("VocabularySize() = %d, want 13", got)
	}

	n := 4.0
	wantIDF := map[string]float64{
		"toy":       math.Log((1+n)/(1+2)) + 1,
		"1995":      math.Log((1+n)/(1+3)) + 1,
		"heat 1995": math.Log((1+n)/(1+1)) + 1,
	}
	for term, want := range wantIDF {
		dim, ok := idx.vocab[term]
		if !ok {
			t.Errorf("term %q missing from vocabulary", term)
			continue
		}
		if math.Abs(idx.idf[dim]-want) > 1e-12 {
			t.Errorf("idf(%q) = %v, want %v", term, idx.idf[dim], want)
		}
	}

	if !idx.IsFitted() || idx.Version() != 1 {
		t.Errorf("IsFitted() = %v, Version() = %d; want true, 1", idx.IsFitted(), idx.Version())
	}
}

func TestTFIDFIndex_Search(t *testing.T) {
	idx := fitIndex(t, testCatalog())

	tests := []struct {
		name   string
		query  string
		k      int
		verify func(t *testing.T, hits []recommend.SearchHit)
	}{
		{
			name:  "closest title ranks first",
			query: "Toy Story",
			k:     10,
			verify: func(t *testing.T, hits []recommend.SearchHit) {
				if got := hitIDs(hits); !equalInts(got, []int{1, 3, 2, 4}) {
					t.Errorf("ids = %v, want [1 3 2 4]", got)
				}
				if !(hits[0].Score > hits[1].Score && hits[1].Score > 0) {
					t.Errorf("scores = %v, %v; want strictly decreasing and positive", hits[0].Score, hits[1].Score)
				}
			},
		},
		{
			name:  "query is normalized before projection",
			query: "  TOY story!!! ",
			k:     1,
			verify: func(t *testing.T, hits []recommend.SearchHit) {
				if len(hits) != 1 || hits[0].Movie.ID != 1 {
					t.Errorf("hits = %v, want movie 1 only", hitIDs(hits))
				}
			},
		},
		{
			name:  "out of vocabulary query returns zero scores in catalog order",
			query: "zzzz qqqq",
			k:     10,
			verify: func(t *testing.T, hits []recommend.SearchHit) {
				if got := hitIDs(hits); !equalInts(got, []int{1, 2, 3, 4}) {
					t.Errorf("ids = %v, want catalog order", got)
				}
				for _, h := range hits {
					if h.Score != 0 {
						t.Errorf("score for %d = %v, want 0", h.Movie.ID, h.Score)
					}
				}
			},
		},
		{
			name:  "empty query is degenerate, not an error",
			query: "",
			k:     2,
			verify: func(t *testing.T, hits []recommend.SearchHit) {
				if len(hits) != 2 || hits[0].Score != 0 {
					t.Errorf("hits = %v, want two zero-score hits", hits)
				}
			},
		},
		{
			name:  "k is capped at catalog size",
			query: "heat",
			k:     50,
			verify: func(t *testing.T, hits []recommend.SearchHit) {
				if len(hits) != 4 {
					t.Errorf("len(hits) = %d, want 4", len(hits))
				}
				if hits[0].Movie.ID != 4 {
					t.Errorf("top hit = %d, want 4", hits[0].Movie.ID)
				}
			},
		},
		{
			name:  "non-positive k returns nothing",
			query: "heat",
			k:     0,
			verify: func(t *testing.T, hits []recommend.SearchHit) {
				if len(hits) != 0 {
					t.Errorf("len(hits) = %d, want 0", len(hits))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, idx.Search(tt.query, tt.k))
		})
	}
}

func TestTFIDFIndex_SelfSimilarity(t *testing.T) {
	movies := testCatalog()
	idx := fitIndex(t, movies)

	for _, m := range movies {
		t.Run(m.Title, func(t *testing.T) {
			hits := idx.Search(m.CleanTitle, 10)
			if len(hits) == 0 {
				t.Fatal("no hits")
			}
			if hits[0].Movie.ID != m.ID {
				t.Errorf("top hit = %d, want %d", hits[0].Movie.ID, m.ID)
			}
			if math.Abs(hits[0].Score-1) > 1e-9 {
				t.Errorf("self similarity = %v, want 1", hits[0].Score)
			}
		})
	}
}

func TestTFIDFIndex_TiesKeepCatalogOrder(t *testing.T) {
	movies := []recommend.Movie{
		recommend.NewMovie(10, "Alpha (2001)", ""),
		recommend.NewMovie(20, "Heat (1995)", ""),
		recommend.NewMovie(30, "Beta (2002)", ""),
		recommend.NewMovie(40, "Heat (1995)", ""),
	}
	idx := fitIndex(t, movies)

	hits := idx.Search("heat 1995", 10)
	if got := hitIDs(hits); !equalInts(got, []int{20, 40, 10, 30}) {
		t.Errorf("ids = %v, want [20 40 10 30]", got)
	}
	if hits[0].Score != hits[1].Score {
		t.Errorf("duplicate titles scored %v and %v, want equal", hits[0].Score, hits[1].Score)
	}
}

func TestTFIDFIndex_EmptyAndUnfitted(t *testing.T) {
	if hits := NewTFIDFIndex(TFIDFConfig{}).Search("toy", 10); hits != nil {
		t.Errorf("unfitted Search() = %v, want nil", hits)
	}

	idx := fitIndex(t, nil)
	if hits := idx.Search("toy", 10); len(hits) != 0 {
		t.Errorf("empty catalog Search() = %v, want empty", hits)
	}
}

func TestTFIDFIndex_FitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := NewTFIDFIndex(TFIDFConfig{})
	if err := idx.Fit(ctx, testCatalog()); err == nil {
		t.Error("Fit() with canceled context should fail")
	}
	if idx.IsFitted() {
		t.Error("index should not be marked fitted after cancellation")
	}
}

func TestTopKStable(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		k      int
		want   []int
	}{
		{"descending with ties by index", []float64{0.5, 0.9, 0.5, 0.1, 0.9}, 3, []int{1, 4, 0}},
		{"all equal keeps order", []float64{0, 0, 0}, 2, []int{0, 1}},
		{"k equals length", []float64{0.1, 0.3, 0.2}, 3, []int{1, 2, 0}},
		{"late winner displaces", []float64{0.1, 0.2, 0.3, 0.4}, 2, []int{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topKStable(tt.scores, tt.k); !equalInts(got, tt.want) {
				t.Errorf("topKStable() = %v, want %v", got, tt.want)
			}
		})
	}
}
