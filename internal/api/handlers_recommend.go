// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// Search handles GET /api/v1/search?q=
// Returns the top lexical matches for a title with their cosine scores.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := parseTitleQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	hits, ids := h.engine.Search(r.Context(), req.Query)
	respondSuccess(w, SearchResponse{
		Query:    req.Query,
		Results:  hits,
		MovieIDs: ids,
	}, start)
}

// SimilarMovies handles GET /api/v1/movies/{movieID}/similar
// Returns the co-rating score table for one movie, or 404 INSUFFICIENT_DATA
// when the movie has too few high ratings to score.
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, ok := parseMovieID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrCodeInvalidMovieID, "Movie ID must be an integer", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	recs, err := h.engine.FindSimilarMovies(r.Context(), req.MovieID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	if len(recs) == 0 {
		respondError(w, http.StatusNotFound, ErrCodeInsufficientData,
			"Not enough ratings to recommend movies similar to this one", nil)
		return
	}

	respondSuccess(w, SimilarResponse{MovieID: req.MovieID, Recommendations: recs}, start)
}

// Recommendations handles GET /api/v1/recommendations?q=
// Runs the full query pipeline. Every outcome, including "no movie found",
// is a 200 with the outcome named in the payload.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := parseTitleQuery(r)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	result, err := h.engine.Query(r.Context(), req.Query)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(req.Query)).
		Str("outcome", result.Outcome.String()).
		Msg("Recommendations served")

	respondSuccess(w, result, start)
}

// respondEngineError maps engine failures to HTTP statuses. Timeouts get a
// 504 so clients can retry; anything else is a 500.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, ErrCodeTimeout, "Query timed out", err)
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		logging.Ctx(r.Context()).Debug().Msg("Client cancelled request")
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError, "Failed to compute recommendations", err)
	}
}
