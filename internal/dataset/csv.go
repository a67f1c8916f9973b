// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// ctxCheckInterval is how many rows are read between cancellation checks.
const ctxCheckInterval = 4096

// CSVLoader streams both files with encoding/csv.
type CSVLoader struct {
	moviesPath  string
	ratingsPath string
}

// NewCSVLoader creates a loader for the given file paths.
func NewCSVLoader(moviesPath, ratingsPath string) *CSVLoader {
	return &CSVLoader{moviesPath: moviesPath, ratingsPath: ratingsPath}
}

// Name returns the loader kind.
func (l *CSVLoader) Name() string { return KindCSV }

// Load reads the catalog, then the ratings.
func (l *CSVLoader) Load(ctx context.Context) (*Dataset, error) {
	start := time.Now()

	mf, err := os.Open(l.moviesPath)
	if err != nil {
		return nil, fmt.Errorf("open movies: %w", err)
	}
	defer closeQuietly(mf)

	movies, mstats, err := ReadMovies(ctx, mf)
	if err != nil {
		return nil, fmt.Errorf("read movies %s: %w", l.moviesPath, err)
	}
	metrics.RecordDatasetLoad(KindCSV, "movies", time.Since(start), mstats.MoviesSkipped)

	ratingsStart := time.Now()
	rf, err := os.Open(l.ratingsPath)
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer closeQuietly(rf)

	ratings, rstats, err := ReadRatings(ctx, rf)
	if err != nil {
		return nil, fmt.Errorf("read ratings %s: %w", l.ratingsPath, err)
	}
	metrics.RecordDatasetLoad(KindCSV, "ratings", time.Since(ratingsStart), rstats.RatingsSkipped)

	stats := LoadStats{
		Loader:         KindCSV,
		MoviesRead:     mstats.MoviesRead,
		MoviesSkipped:  mstats.MoviesSkipped,
		RatingsRead:    rstats.RatingsRead,
		RatingsSkipped: rstats.RatingsSkipped,
		Duration:       time.Since(start),
	}
	return &Dataset{Movies: movies, Ratings: ratings, Stats: stats}, nil
}

// ReadMovies parses a movies.csv stream with a movieId,title,genres header.
func ReadMovies(ctx context.Context, r io.Reader) ([]recommend.Movie, LoadStats, error) {
	var stats LoadStats
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header, movieColumns)
	if err != nil {
		return nil, stats, err
	}
	idCol, titleCol, genresCol := idx["movieid"], idx["title"], idx["genres"]

	set := newMovieSet()
	err = eachRecord(ctx, cr, func(rec []string) {
		if !hasColumns(rec, idCol, titleCol, genresCol) {
			set.skipped++
			return
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[idCol]))
		if err != nil {
			set.skipped++
			return
		}
		set.add(id, rec[titleCol], rec[genresCol])
	}, &set.skipped)
	if err != nil {
		return nil, stats, err
	}

	movies, err := set.result()
	stats.MoviesRead = len(set.movies)
	stats.MoviesSkipped = set.skipped
	if set.skipped > 0 {
		logging.Warn().Int("skipped", set.skipped).Msg("Skipped malformed movie rows")
	}
	return movies, stats, err
}

// ReadRatings parses a ratings.csv stream with a userId,movieId,rating
// header. A timestamp column is read when present.
func ReadRatings(ctx context.Context, r io.Reader) ([]recommend.Rating, LoadStats, error) {
	var stats LoadStats
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("read header: %w", err)
	}
	idx, err := headerIndex(header, ratingColumns)
	if err != nil {
		return nil, stats, err
	}
	userCol, movieCol, ratingCol := idx["userid"], idx["movieid"], idx["rating"]
	tsCol, hasTS := idx["timestamp"]

	var set ratingSet
	err = eachRecord(ctx, cr, func(rec []string) {
		if !hasColumns(rec, userCol, movieCol, ratingCol) {
			set.skipped++
			return
		}
		user, err1 := strconv.Atoi(strings.TrimSpace(rec[userCol]))
		movie, err2 := strconv.Atoi(strings.TrimSpace(rec[movieCol]))
		rating, err3 := strconv.ParseFloat(strings.TrimSpace(rec[ratingCol]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			set.skipped++
			return
		}
		var ts int64
		if hasTS && tsCol < len(rec) {
			// A bad timestamp does not invalidate the rating.
			ts, _ = strconv.ParseInt(strings.TrimSpace(rec[tsCol]), 10, 64)
		}
		set.add(user, movie, rating, ts)
	}, &set.skipped)
	if err != nil {
		return nil, stats, err
	}

	stats.RatingsRead = len(set.ratings)
	stats.RatingsSkipped = set.skipped
	if set.skipped > 0 {
		logging.Warn().Int("skipped", set.skipped).Msg("Skipped malformed rating rows")
	}
	return set.ratings, stats, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}

// eachRecord calls fn for every data row. Rows the CSV reader cannot parse
// are counted in skipped and reading continues.
func eachRecord(ctx context.Context, cr *csv.Reader, fn func([]string), skipped *int) error {
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				*skipped++
				continue
			}
			return err
		}
		fn(rec)
	}
}

func hasColumns(rec []string, cols ...int) bool {
	for _, c := range cols {
		if c >= len(rec) {
			return false
		}
	}
	return true
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		logging.Debug().Err(err).Msg("close failed")
	}
}
