// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"html/template"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommender is the engine surface the handlers need. *recommend.Engine
// satisfies it.
type Recommender interface {
	Search(ctx context.Context, title string) ([]recommend.SearchHit, []int)
	FindSimilarMovies(ctx context.Context, movieID int) ([]recommend.Recommendation, error)
	Query(ctx context.Context, title string) (*recommend.QueryResult, error)
	Stats() recommend.Stats
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON envelope and validation helpers
//   - handlers_health.go: health endpoint
//   - handlers_recommend.go: search, similar and recommendations endpoints
//   - handlers_form.go: HTML form
type Handler struct {
	engine    Recommender
	version   string
	startTime time.Time
	form      *template.Template
}

// NewHandler creates a handler over a fitted engine. version is reported on
// the health endpoint and may be empty.
func NewHandler(engine Recommender, version string) *Handler {
	return &Handler{
		engine:    engine,
		version:   version,
		startTime: time.Now(),
		form:      formTemplate,
	}
}
