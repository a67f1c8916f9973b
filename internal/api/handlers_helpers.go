// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// sanitizeLogValue escapes control characters so user-supplied titles
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=60")
	}
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope timed from start.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status: StatusSuccess,
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response. err is logged, never returned to
// the client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, &APIError{Code: code, Message: message}, err)
}

func respondErrorDetails(w http.ResponseWriter, status int, apiErr *APIError, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(apiErr.Code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &APIResponse{
		Status:   StatusError,
		Data:     nil,
		Metadata: Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator and
// converts failures to the API error shape.
//
//	req := TitleQueryRequest{Query: r.URL.Query().Get("q")}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
//	    return
//	}
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	out := &APIError{Code: apiErr.Code, Message: apiErr.Message}
	if len(apiErr.Details) > 0 {
		out.Details = apiErr.Details
	}
	return out
}
