// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Loader kinds accepted by New.
const (
	KindCSV    = "csv"
	KindDuckDB = "duckdb"
)

var (
	// ErrEmptyCatalog is returned when the movies file yields no usable rows.
	ErrEmptyCatalog = errors.New("catalog contains no movies")

	// ErrMalformedHeader is returned when a file lacks a required column.
	ErrMalformedHeader = errors.New("missing required column")
)

// Required header columns. Matching is case-insensitive.
var (
	movieColumns  = []string{"movieid", "title", "genres"}
	ratingColumns = []string{"userid", "movieid", "rating"}
)

// Config selects and configures a Loader.
type Config struct {
	MoviesPath  string
	RatingsPath string
	Kind        string

	// Threads caps DuckDB worker threads. Zero lets DuckDB decide.
	Threads int
}

// Dataset is the in-memory catalog and rating table handed to the engine.
type Dataset struct {
	Movies  []recommend.Movie
	Ratings []recommend.Rating
	Stats   LoadStats
}

// LoadStats reports what a load read and what it had to skip.
type LoadStats struct {
	Loader         string        `json:"loader"`
	MoviesRead     int           `json:"movies_read"`
	MoviesSkipped  int           `json:"movies_skipped"`
	RatingsRead    int           `json:"ratings_read"`
	RatingsSkipped int           `json:"ratings_skipped"`
	Duration       time.Duration `json:"duration"`
}

// Loader reads a MovieLens-shaped catalog and rating table.
type Loader interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}

// New returns the loader named by cfg.Kind. An empty kind selects CSV.
func New(cfg Config) (Loader, error) {
	switch strings.ToLower(cfg.Kind) {
	case "", KindCSV:
		return NewCSVLoader(cfg.MoviesPath, cfg.RatingsPath), nil
	case KindDuckDB:
		return NewDuckDBLoader(cfg.MoviesPath, cfg.RatingsPath, cfg.Threads), nil
	default:
		return nil, fmt.Errorf("unknown loader %q (want %s or %s)", cfg.Kind, KindCSV, KindDuckDB)
	}
}

// headerIndex maps each required column to its position in header.
func headerIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMalformedHeader, col)
		}
	}
	return idx, nil
}

// movieSet accumulates catalog rows shared by both loaders so they agree on
// what counts as a usable row.
type movieSet struct {
	movies  []recommend.Movie
	seen    map[int]struct{}
	skipped int
}

func newMovieSet() *movieSet {
	return &movieSet{seen: make(map[int]struct{})}
}

// add keeps the first row for each movie ID. Rows without a title are
// skipped.
func (s *movieSet) add(id int, title, genres string) {
	if title == "" {
		s.skipped++
		return
	}
	if _, dup := s.seen[id]; dup {
		s.skipped++
		return
	}
	s.seen[id] = struct{}{}
	s.movies = append(s.movies, recommend.NewMovie(id, title, genres))
}

func (s *movieSet) result() ([]recommend.Movie, error) {
	if len(s.movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return s.movies, nil
}

// ratingSet accumulates rating rows. Ratings referencing movies missing from
// the catalog are kept; the engine tolerates them.
type ratingSet struct {
	ratings []recommend.Rating
	skipped int
}

func (s *ratingSet) add(userID, movieID int, rating float64, ts int64) {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		s.skipped++
		return
	}
	s.ratings = append(s.ratings, recommend.Rating{
		UserID:    userID,
		MovieID:   movieID,
		Rating:    rating,
		Timestamp: ts,
	})
}
