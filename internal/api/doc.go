// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP surface of ReelMatch: a small JSON API and a
browser form, both served by a chi router over a fitted recommend.Engine.

Endpoints:

	GET  /api/v1/health                    dataset sizes, vocabulary, uptime
	GET  /api/v1/search?q=                 top 10 lexical matches with scores
	GET  /api/v1/movies/{movieID}/similar  score table, 404 INSUFFICIENT_DATA
	GET  /api/v1/recommendations?q=        full query pipeline result
	GET  /                                 HTML form
	POST /                                 HTML form submission (field "title")
	GET  /metrics                          Prometheus scrape

Response Format:

Every JSON endpoint answers with the same envelope, encoded with goccy/go-json:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-02T15:04:05Z", "query_time_ms": 3}
	}

Failures set status to "error", leave data null and add an error object
with a machine-readable code (BAD_REQUEST, VALIDATION_ERROR,
INVALID_MOVIE_ID, INSUFFICIENT_DATA, TIMEOUT, TOO_MANY_REQUESTS,
INTERNAL_ERROR).

The recommendations endpoint returns 200 for every pipeline outcome; the
outcome field ("recommendations", "suggestions", "no_movie_found",
"no_recommendations") says which one applied.

Middleware:

Global: request ID, real IP, access log, panic recovery, CORS, gzip.
API and form routes add an httprate per-IP limiter, security headers and
Prometheus request metrics.

Usage:

	handler := api.NewHandler(engine, version)
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	srv := &http.Server{Handler: api.NewRouter(handler, chiMW).SetupChi()}
*/
package api
