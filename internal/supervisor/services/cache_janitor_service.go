// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// minSweepInterval keeps a tiny cache TTL from turning the janitor into a
// busy loop.
const minSweepInterval = time.Second

// CachePurger drops expired query cache entries. *recommend.Engine
// satisfies it.
type CachePurger interface {
	PurgeExpired() int
}

// CacheJanitorService periodically purges expired entries from the engine's
// query cache. Expired entries are never served, but without a sweep they
// occupy LRU slots until evicted.
type CacheJanitorService struct {
	purger   CachePurger
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService creates a janitor that sweeps every interval.
// Intervals below one second are raised to one second.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(purger CachePurger, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	return &CacheJanitorService{
		purger:   purger,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	if removed := s.purger.PurgeExpired(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired query cache entries purged")
	}
}

// String returns the service name for logging.
func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
