// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// SlowRequestThreshold is the latency above which a request is logged at
// warn level instead of debug.
const SlowRequestThreshold = 500 * time.Millisecond

// AccessLog writes one structured line per request with the request and
// correlation IDs from RequestID. Server errors log at error level and slow
// requests at warn.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)
		logger := logging.Ctx(r.Context())

		var event *zerolog.Event
		switch {
		case wrapper.statusCode >= http.StatusInternalServerError:
			event = logger.Error()
		case duration > SlowRequestThreshold:
			event = logger.Warn()
		default:
			event = logger.Debug()
		}

		event.
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	})
}
