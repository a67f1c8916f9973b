// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware for the ReelMatch server.

All middleware has the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the context for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - AccessLog: one zerolog line per request

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)         // must run first so logs carry the IDs
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    ...
	})

PrometheusMetrics and AccessLog read the route pattern after the inner
handler returns, so they work at any depth in the chi tree.
*/
package middleware
