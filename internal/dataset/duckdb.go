// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// DuckDBLoader reads both files through an in-memory DuckDB instance using
// read_csv. Every column is read as text and converted with TRY_CAST so a
// malformed row is skipped instead of failing the load.
type DuckDBLoader struct {
	moviesPath  string
	ratingsPath string
	threads     int
}

// NewDuckDBLoader creates a DuckDB backed loader. threads <= 0 leaves the
// DuckDB default in place.
func NewDuckDBLoader(moviesPath, ratingsPath string, threads int) *DuckDBLoader {
	return &DuckDBLoader{moviesPath: moviesPath, ratingsPath: ratingsPath, threads: threads}
}

// Name returns the loader kind.
func (l *DuckDBLoader) Name() string { return KindDuckDB }

// Load opens a throwaway in-memory database and scans both files.
func (l *DuckDBLoader) Load(ctx context.Context) (*Dataset, error) {
	start := time.Now()

	connStr := ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"
	if l.threads > 0 {
		connStr += fmt.Sprintf("&threads=%d", l.threads)
	}
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer closeQuietly(conn)

	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}

	movies, skippedMovies, err := l.loadMovies(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("read movies %s: %w", l.moviesPath, err)
	}
	metrics.RecordDatasetLoad(KindDuckDB, "movies", time.Since(start), skippedMovies)

	ratingsStart := time.Now()
	ratings, skippedRatings, err := l.loadRatings(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("read ratings %s: %w", l.ratingsPath, err)
	}
	metrics.RecordDatasetLoad(KindDuckDB, "ratings", time.Since(ratingsStart), skippedRatings)

	if skippedMovies > 0 || skippedRatings > 0 {
		logging.Warn().
			Int("movies_skipped", skippedMovies).
			Int("ratings_skipped", skippedRatings).
			Msg("Skipped malformed dataset rows")
	}

	return &Dataset{
		Movies:  movies,
		Ratings: ratings,
		Stats: LoadStats{
			Loader:         KindDuckDB,
			MoviesRead:     len(movies),
			MoviesSkipped:  skippedMovies,
			RatingsRead:    len(ratings),
			RatingsSkipped: skippedRatings,
			Duration:       time.Since(start),
		},
	}, nil
}

func (l *DuckDBLoader) loadMovies(ctx context.Context, conn *sql.DB) ([]recommend.Movie, int, error) {
	source := csvSource(l.moviesPath)
	if _, err := describeColumns(ctx, conn, source, movieColumns); err != nil {
		return nil, 0, err
	}

	//nolint:gosec // source is a quoted literal built by csvSource
	query := `SELECT TRY_CAST(movieId AS BIGINT), title, genres FROM ` + source
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("query movies: %w", err)
	}
	defer closeQuietly(rows)

	set := newMovieSet()
	for rows.Next() {
		var (
			id            sql.NullInt64
			title, genres sql.NullString
		)
		if err := rows.Scan(&id, &title, &genres); err != nil {
			return nil, 0, fmt.Errorf("scan movie: %w", err)
		}
		if !id.Valid {
			set.skipped++
			continue
		}
		set.add(int(id.Int64), title.String, genres.String)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate movies: %w", err)
	}

	movies, err := set.result()
	return movies, set.skipped, err
}

func (l *DuckDBLoader) loadRatings(ctx context.Context, conn *sql.DB) ([]recommend.Rating, int, error) {
	source := csvSource(l.ratingsPath)
	cols, err := describeColumns(ctx, conn, source, ratingColumns)
	if err != nil {
		return nil, 0, err
	}

	tsExpr := "NULL"
	if _, ok := cols["timestamp"]; ok {
		tsExpr = `TRY_CAST("timestamp" AS BIGINT)`
	}

	//nolint:gosec // source is a quoted literal built by csvSource
	query := `SELECT TRY_CAST(userId AS BIGINT), TRY_CAST(movieId AS BIGINT), TRY_CAST(rating AS DOUBLE), ` +
		tsExpr + ` FROM ` + source
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("query ratings: %w", err)
	}
	defer closeQuietly(rows)

	var set ratingSet
	for rows.Next() {
		var (
			user, movie, ts sql.NullInt64
			rating          sql.NullFloat64
		)
		if err := rows.Scan(&user, &movie, &rating, &ts); err != nil {
			return nil, 0, fmt.Errorf("scan rating: %w", err)
		}
		if !user.Valid || !movie.Valid || !rating.Valid {
			set.skipped++
			continue
		}
		set.add(int(user.Int64), int(movie.Int64), rating.Float64, ts.Int64)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ratings: %w", err)
	}
	return set.ratings, set.skipped, nil
}

// csvSource renders a read_csv table function call for path. Every column
// is read as VARCHAR so conversion failures surface as NULL per row. Short
// rows are padded with NULL and counted as skipped; lines the CSV parser
// rejects outright are dropped by DuckDB without being counted.
func csvSource(path string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	return "read_csv(" + quoted + ", header = true, all_varchar = true, null_padding = true, ignore_errors = true)"
}

// describeColumns returns the lower-cased column names of source and checks
// the required ones are present.
func describeColumns(ctx context.Context, conn *sql.DB, source string, required []string) (map[string]int, error) {
	rows, err := conn.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	defer closeQuietly(rows)

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("describe columns: %w", err)
	}

	var names []string
	for rows.Next() {
		// DESCRIBE returns column_name first; the remaining fields are unused.
		dest := make([]any, len(cols))
		var name string
		dest[0] = &name
		for i := 1; i < len(dest); i++ {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan describe: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate describe: %w", err)
	}
	return headerIndex(names, required)
}
