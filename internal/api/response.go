// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// APIResponse is the standard envelope for every JSON endpoint.
//
// Success:
//
//	{"status":"success","data":{...},"metadata":{"timestamp":"...","query_time_ms":3}}
//
// Error:
//
//	{"status":"error","data":null,"metadata":{...},"error":{"code":"BAD_REQUEST","message":"..."}}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the error payload of a failed request.
type APIError struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains per-field validation messages (optional)
	Details interface{} `json:"details,omitempty"`
}

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes for API responses
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeTimeout          = "TIMEOUT"
	ErrCodeInvalidMovieID   = "INVALID_MOVIE_ID"
	ErrCodeInsufficientData = "INSUFFICIENT_DATA"
)

// SearchResponse is the data payload of GET /api/v1/search.
type SearchResponse struct {
	Query    string                `json:"query"`
	Results  []recommend.SearchHit `json:"results"`
	MovieIDs []int                 `json:"movie_ids"`
}

// SimilarResponse is the data payload of GET /api/v1/movies/{movieID}/similar.
type SimilarResponse struct {
	MovieID         int                        `json:"movie_id"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// HealthResponse is the data payload of GET /api/v1/health.
type HealthResponse struct {
	Status         string  `json:"status"`
	Version        string  `json:"version,omitempty"`
	Uptime         float64 `json:"uptime_seconds"`
	CatalogSize    int     `json:"catalog_size"`
	RatingCount    int     `json:"rating_count"`
	VocabularySize int     `json:"vocabulary_size"`
	Queries        int64   `json:"queries"`
	CacheEntries   int     `json:"cache_entries"`
}
