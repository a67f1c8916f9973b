// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// Health handles GET /api/v1/health.
//
// The engine is fitted before the router is built, so a served request
// always reports "healthy" with the loaded dataset sizes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.engine.Stats()

	respondSuccess(w, HealthResponse{
		Status:         "healthy",
		Version:        h.version,
		Uptime:         time.Since(h.startTime).Seconds(),
		CatalogSize:    stats.CatalogSize,
		RatingCount:    stats.RatingCount,
		VocabularySize: stats.VocabularySize,
		Queries:        stats.Queries,
		CacheEntries:   stats.CacheEntries,
	}, start)
}
