// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the zerolog-based structured logger shared by the
// ReelMatch server, the CLI and the recommendation engine.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", len(movies)).Msg("Catalog loaded")
//	logging.Err(err).Msg("Failed to load ratings")
//
// # Component Loggers
//
// Long-lived objects take a child logger tagged with their component:
//
//	logger := logging.WithComponent("recommend")
//
// # Context-Aware Logging
//
// HTTP middleware stores a request ID in the context and the CLI stores a
// correlation ID per query. Ctx picks both up:
//
//	logging.Ctx(ctx).Info().Msg("Query answered")
//
// # slog Adapter
//
// SlogHandler bridges zerolog to log/slog for libraries (sutureslog) that
// only speak slog.
//
// # Testing
//
// NewTestLogger writes JSON to any io.Writer so tests can assert on output.
package logging
