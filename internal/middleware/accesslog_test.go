// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger := logging.Logger()
	prevLevel := zerolog.GlobalLevel()
	logging.SetLogger(logging.NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logging.SetLogger(prevLogger)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs at debug", http.StatusOK, "debug"},
		{"client error logs at debug", http.StatusBadRequest, "debug"},
		{"server error logs at error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			r := chi.NewRouter()
			r.Use(RequestID)
			r.Use(AccessLog)
			r.Get("/api/v1/search", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=heat", nil))

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if entry["route"] != "/api/v1/search" {
				t.Errorf("route = %v, want /api/v1/search", entry["route"])
			}
			if got, ok := entry["status"].(float64); !ok || int(got) != tt.status {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
			if entry["request_id"] != w.Header().Get(RequestIDHeader) {
				t.Errorf("request_id = %v, want %v", entry["request_id"], w.Header().Get(RequestIDHeader))
			}
			if entry["correlation_id"] == nil {
				t.Error("correlation_id missing from access log")
			}
		})
	}
}
