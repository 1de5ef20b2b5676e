// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MongoDB Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_operation_errors_total",
			Help: "Total number of failed MongoDB operations",
		},
		[]string{"operation", "collection", "error_type"},
	)

	// API Endpoint Metrics
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
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Seed Metrics
	SeedDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seed_duration_seconds",
			Help:    "Duration of seeding a collection in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"collection"},
	)

	SeedRecordsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_records_inserted_total",
			Help: "Total number of documents inserted by seeding",
		},
		[]string{"collection"},
	)

	SeedRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_records_skipped_total",
			Help: "Total number of source records skipped as malformed or invalid",
		},
		[]string{"collection"},
	)

	SeedErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_errors_total",
			Help: "Total number of collections whose seeding was abandoned",
		},
		[]string{"collection", "error_type"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// maxErrorLabelLen bounds label cardinality for free-form error text.
const maxErrorLabelLen = 50

// RecordDBQuery records a MongoDB operation metric
func RecordDBQuery(operation, collection string, duration time.Duration, err error) {
	DBOperationDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		DBOperationErrors.WithLabelValues(operation, collection, truncate(err.Error())).Inc()
	}
}

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

// RecordSeed records the outcome of seeding one collection. errorType is
// empty on success.
func RecordSeed(collection string, duration time.Duration, inserted, skipped int, errorType string) {
	SeedDuration.WithLabelValues(collection).Observe(duration.Seconds())
	if inserted > 0 {
		SeedRecordsInserted.WithLabelValues(collection).Add(float64(inserted))
	}
	if skipped > 0 {
		SeedRecordsSkipped.WithLabelValues(collection).Add(float64(skipped))
	}
	if errorType != "" {
		SeedErrors.WithLabelValues(collection, errorType).Inc()
	}
}

func truncate(s string) string {
	if len(s) > maxErrorLabelLen {
		return s[:maxErrorLabelLen]
	}
	return s
}
