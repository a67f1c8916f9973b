// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics for the ReelMatch server.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Title query outcomes and latency
  - Co-rating attempts per candidate
  - Query cache hit/miss rates
  - Dataset size and load time

# Metrics Endpoint

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

All collectors are registered on the default registry through promauto, so
importing the package is enough to expose them.
*/
package metrics
