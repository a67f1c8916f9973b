// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"time"
)

// SearchResultLimit is the number of lexical hits considered per query.
const SearchResultLimit = 10

// Config contains configuration for the engine. Scoring thresholds are
// fixed constants in the algorithms package and are not configurable.
type Config struct {
	// Cache contains query result caching parameters.
	Cache CacheConfig `json:"cache"`

	// QueryTimeout bounds a single Query call. Zero disables the bound.
	QueryTimeout time.Duration `json:"query_timeout"`
}

// CacheConfig contains parameters for the query result cache.
type CacheConfig struct {
	// Enabled turns on memoization of Query results keyed by raw query.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached result is served.
	TTL time.Duration `json:"ttl"`

	// MaxEntries caps the number of cached queries.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 1024,
		},
		QueryTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.QueryTimeout < 0 {
		return fmt.Errorf("query_timeout must be non-negative, got %v", c.QueryTimeout)
	}
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %v", c.Cache.TTL)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
	}
	return nil
}
