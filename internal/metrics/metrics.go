// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Query Metrics
	QueryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_query_outcomes_total",
			Help: "Total number of title queries by terminal outcome",
		},
		[]string{"outcome"},
	)

	QueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_query_duration_seconds",
			Help:    "End-to-end duration of title queries in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_search_duration_seconds",
			Help:    "Duration of lexical TF-IDF title searches in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommend_attempts_total",
			Help: "Co-rating attempts per candidate movie by result",
		},
		[]string{"result"}, // "ok", "insufficient"
	)

	// Query Cache Metrics
	QueryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_query_cache_hits_total",
			Help: "Total number of query result cache hits",
		},
	)

	QueryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelmatch_query_cache_misses_total",
			Help: "Total number of query result cache misses",
		},
	)

	// Dataset Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	RatingsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_ratings_loaded",
			Help: "Number of ratings in the loaded dataset",
		},
	)

	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_dataset_rows_skipped_total",
			Help: "Rows dropped while loading the dataset because they failed to parse",
		},
		[]string{"file"}, // "movies", "ratings"
	)

	IndexVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelmatch_index_vocabulary_terms",
			Help: "Number of unigram and bigram terms in the title index",
		},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_dataset_load_duration_seconds",
			Help:    "Time spent loading dataset files in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"loader", "file"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordQuery records the outcome and latency of one title query.
func RecordQuery(outcome string, duration time.Duration) {
	QueryOutcomes.WithLabelValues(outcome).Inc()
	QueryDuration.Observe(duration.Seconds())
}

// RecordSearch records the latency of one lexical search.
func RecordSearch(duration time.Duration) {
	SearchDuration.Observe(duration.Seconds())
}

// RecordRecommendAttempt counts one co-rating attempt.
func RecordRecommendAttempt(sufficient bool) {
	if sufficient {
		RecommendAttempts.WithLabelValues("ok").Inc()
		return
	}
	RecommendAttempts.WithLabelValues("insufficient").Inc()
}

// RecordQueryCache counts a query cache lookup.
func RecordQueryCache(hit bool) {
	if hit {
		QueryCacheHits.Inc()
	} else {
		QueryCacheMisses.Inc()
	}
}

// RecordDatasetLoad records the time to load one dataset file and the rows
// that had to be skipped.
func RecordDatasetLoad(loader, file string, duration time.Duration, skipped int) {
	DatasetLoadDuration.WithLabelValues(loader, file).Observe(duration.Seconds())
	if skipped > 0 {
		RowsSkipped.WithLabelValues(file).Add(float64(skipped))
	}
}

// SetDatasetSize publishes catalog, rating and vocabulary sizes.
func SetDatasetSize(movies, ratings, vocabulary int) {
	CatalogMovies.Set(float64(movies))
	RatingsLoaded.Set(float64(ratings))
	IndexVocabularySize.Set(float64(vocabulary))
}
