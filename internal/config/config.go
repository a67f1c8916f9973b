// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates the dataset and selects how it is loaded.
//
// Environment Variables:
//   - MOVIES_PATH: path to movies.csv (default: data/movies.csv)
//   - RATINGS_PATH: path to ratings.csv (default: data/ratings.csv)
//   - DATA_LOADER: csv or duckdb (default: csv)
//   - DUCKDB_THREADS: DuckDB worker threads, 0 for the DuckDB default
type DataConfig struct {
	MoviesPath    string `koanf:"movies_path" validate:"required"`
	RatingsPath   string `koanf:"ratings_path" validate:"required"`
	Loader        string `koanf:"loader" validate:"oneof=csv duckdb"`
	DuckDBThreads int    `koanf:"duckdb_threads" validate:"gte=0,lte=256"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds request throttling and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RecommendConfig holds query engine settings. Scoring thresholds are not
// configurable.
type RecommendConfig struct {
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
	QueryTimeout    time.Duration `koanf:"query_timeout" validate:"gte=0"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
