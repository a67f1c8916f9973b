// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the ReelMatch server.

ReelMatch answers free-text movie titles with "people who loved this also
loved" recommendations computed from a MovieLens-shaped ratings table, or
with near-miss title suggestions when nothing matches.

# Startup

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog initialised from the logging section
 3. Dataset: movies.csv and ratings.csv via the csv or duckdb loader
 4. Fitting: title index, popularity, co-rating tables and suggester, fitted
    concurrently
 5. Supervisor tree: HTTP server and query cache janitor

	RootSupervisor ("reelmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── cache-janitor (only when the query cache is enabled)
	└── APISupervisor ("api-layer")
	    └── http-server

The dataset is loaded once. Restart the process to pick up new data.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT.

# Example

	export MOVIES_PATH=/data/ml-latest-small/movies.csv
	export RATINGS_PATH=/data/ml-latest-small/ratings.csv
	export LOG_FORMAT=console
	./reelmatch

	curl 'http://localhost:8080/api/v1/recommendations?q=toy+story'
*/
package main
