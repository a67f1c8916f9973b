// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend answers free-text movie title queries.
//
// # Pipeline
//
// A query flows through four components supplied by the caller:
//
//  1. TitleIndex finds the ten catalog titles lexically closest to the query.
//  2. If none shares a term with the query, Suggester offers near-miss titles.
//  3. Otherwise PopularityRanker orders the hits by distinct rater count.
//  4. SimilarFinder scores each hit in that order until one yields a
//     non-empty table of movies its fans also love.
//
// Candidates are scored lazily, so a popular title with enough ratings data
// saves the cost of scoring the rest.
//
// Outcomes are reported as an Outcome value on QueryResult, never as errors.
// The only errors Query returns come from context cancellation or deadline.
//
// # Usage
//
//	components, err := algorithms.Build(ctx, movies, ratings)
//	if err != nil {
//	    return err
//	}
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), components, logger)
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Query(ctx, "Toy Story")
//
// # Thread Safety
//
// Engine is safe for concurrent use. Components are read-only once fitted and
// the query cache is internally synchronized.
package recommend
