// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package algorithms implements the four components behind recommend.Engine.
//
// # Components
//
//   - TFIDFIndex: lexical title search, unigram+bigram TF-IDF with cosine
//     similarity
//   - Popularity: distinct-rater counts used to order search candidates
//   - CoRating: lift-style score table of movies fans of a title also love
//   - CloseMatcher: SequenceMatcher "did you mean" suggestions over raw titles
//
// Build fits all four over one dataset.
//
// # Insufficient Data
//
// Following the engine convention, "not enough data" is a nil result with a
// nil error, never an error value. Errors are reserved for context
// cancellation.
//
// # Thread Safety
//
// Every component is safe for concurrent use. Fit acquires an exclusive lock
// while queries take a shared lock; after Fit the components are read-only.
package algorithms
