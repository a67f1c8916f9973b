// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// Validate checks field constraints declared in struct tags, then the
// cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateCache()
}

// validateRateLimits validates rate limiting bounds unless limiting is off.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateCache requires a usable cache size and TTL when caching is on.
func (c *Config) validateCache() error {
	if !c.Recommend.CacheEnabled {
		return nil
	}
	if c.Recommend.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the query cache is enabled")
	}
	if c.Recommend.CacheMaxEntries <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_MAX_ENTRIES must be positive when the query cache is enabled")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
