// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads and validates application configuration.
//
// Configuration is layered with koanf: built-in defaults, then an optional
// YAML file, then environment variables. The file is taken from CONFIG_PATH
// or the first of config.yaml, config.yml, /etc/reelmatch/config.yaml and
// /etc/reelmatch/config.yml that exists.
//
// # Environment Variables
//
// Data:
//   - MOVIES_PATH, RATINGS_PATH: dataset files
//   - DATA_LOADER: csv (default) or duckdb
//   - DUCKDB_THREADS: DuckDB worker threads
//
// Server:
//   - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:8080)
//   - HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//
// Security:
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//   - CORS_ORIGINS: comma-separated list
//
// Recommend:
//   - RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_TTL, RECOMMEND_CACHE_MAX_ENTRIES
//   - RECOMMEND_QUERY_TIMEOUT
//
// Logging:
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Unmapped environment variables are ignored.
//
// # Validation
//
// Field constraints are declared as validator struct tags and checked with
// the shared validator from internal/validation. Rules spanning fields, such
// as rate limit bounds that only apply when limiting is enabled, are checked
// in Validate.
package config
