// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package dataset loads a MovieLens-shaped catalog and rating table.
//
// Two loaders are provided:
//
//   - CSVLoader streams movies.csv and ratings.csv with encoding/csv
//   - DuckDBLoader scans the same files through DuckDB's read_csv
//
// Columns are located by header name, case-insensitively. Rows with
// unparsable identifiers or ratings are skipped and counted in LoadStats.
// Duplicate movie IDs keep the first row. An empty catalog is an error
// (ErrEmptyCatalog); an empty rating table is not.
package dataset
