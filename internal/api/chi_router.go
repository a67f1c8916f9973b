// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelmatch/internal/middleware"
)

// compressionLevel is the gzip level for JSON and HTML responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMW uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMW}
}

// SetupChi builds the route tree:
//
//	GET  /metrics                               Prometheus scrape
//	GET  /api/v1/health                         dataset sizes and uptime
//	GET  /api/v1/search?q=                      top lexical matches
//	GET  /api/v1/movies/{movieID}/similar       co-rating score table
//	GET  /api/v1/recommendations?q=             full query pipeline
//	GET  /                                      HTML form
//	POST /                                      HTML form submission
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, outermost first
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(compressionLevel, "application/json", "text/html"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	// One limiter shared by the API and the form so both draw on the same
	// per-IP budget.
	rateLimit := router.chiMiddleware.RateLimit()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)
		r.Get("/search", router.handler.Search)
		r.Get("/movies/{movieID}/similar", router.handler.SimilarMovies)
		r.Get("/recommendations", router.handler.Recommendations)
	})

	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", router.handler.Form)
		r.Post("/", router.handler.Form)
	})

	return r
}
