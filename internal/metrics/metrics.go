// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package metrics registers CineTrack's Prometheus collectors with the
// default registry and exposes small Record helpers for callers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinetrack_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Entry store
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinetrack_store_operation_duration_seconds",
			Help:    "Duration of entry store operations",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"backend", "operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_store_operation_errors_total",
			Help: "Entry store operations that failed or degraded to an empty collection",
		},
		[]string{"backend", "operation"},
	)

	StoreEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_store_entries",
			Help: "Number of entries after the most recent store operation",
		},
	)

	// Aggregation
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinetrack_aggregation_duration_seconds",
			Help:    "Time spent computing derived statistics",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"view"},
	)

	// Recommendation gateway
	GatewayCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_gateway_calls_total",
			Help: "Recommendation gateway calls by operation and result source",
		},
		[]string{"operation", "source"}, // source: live, cache, fallback
	)

	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinetrack_gateway_call_duration_seconds",
			Help:    "Duration of recommendation gateway calls",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"operation"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_cache_hits_total",
			Help: "Cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_cache_misses_total",
			Help: "Cache misses",
		},
		[]string{"cache"},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinetrack_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected, canceled
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinetrack_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinetrack_websocket_messages_sent_total",
			Help: "WebSocket messages queued for clients",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinetrack_websocket_errors_total",
			Help: "WebSocket errors",
		},
		[]string{"error_type"},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records a store call and, when known, the resulting
// collection size. Pass size < 0 when it is unknown.
func RecordStoreOperation(backend, operation string, duration time.Duration, size int, err error) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(backend, operation).Inc()
	}
	if size >= 0 {
		StoreEntries.Set(float64(size))
	}
}

// RecordAggregation records how long a derived view took to compute since
// start. It is meant to be deferred.
func RecordAggregation(view string, start time.Time) {
	AggregationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

// RecordGatewayCall records a gateway call and where its answer came from.
func RecordGatewayCall(operation, source string, duration time.Duration) {
	GatewayCalls.WithLabelValues(operation, source).Inc()
	GatewayCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheLookup counts a hit or a miss.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}
