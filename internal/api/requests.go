// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// MaxQueryLength bounds free-text titles accepted by the API and the form.
const MaxQueryLength = 200

// TitleQueryRequest is the validated input of the search and
// recommendations endpoints.
type TitleQueryRequest struct {
	Query string `query:"q" validate:"notblank,printable,max=200"`
}

// SimilarRequest is the validated input of the similar-movies endpoint.
type SimilarRequest struct {
	MovieID int `query:"movieID" validate:"gt=0"`
}

func parseTitleQuery(r *http.Request) TitleQueryRequest {
	return TitleQueryRequest{Query: r.URL.Query().Get("q")}
}

// parseMovieID reads the {movieID} path parameter. ok is false when the
// parameter is not an integer.
func parseMovieID(r *http.Request) (SimilarRequest, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "movieID")))
	if err != nil {
		return SimilarRequest{}, false
	}
	return SimilarRequest{MovieID: id}, true
}
