// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package metrics holds the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto:
//   - API request count, latency and in-flight gauge (labelled by chi route pattern)
//   - Store operation latency and errors per city partition
//   - Authentication outcomes
//   - Circuit breaker state around the store
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
			Name: "foodiug_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodiug_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "foodiug_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodiug_store_operation_duration_seconds",
			Help:    "Duration of document store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "partition"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodiug_store_operation_errors_total",
			Help: "Total number of failed document store operations",
		},
		[]string{"operation", "partition"},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "foodiug_store_up",
			Help: "Whether the last store ping succeeded (1) or failed (0)",
		},
	)

	// Auth Metrics
	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodiug_auth_events_total",
			Help: "Authentication events by kind and outcome",
		},
		[]string{"event", "outcome"}, // event: signup, login, token; outcome: success, duplicate, invalid, ...
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "foodiug_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodiug_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodiug_circuit_breaker_rejections_total",
			Help: "Calls rejected while a circuit breaker was open",
		},
		[]string{"name"},
	)
)

// RecordStoreOperation records a store call. Pass a nil err for expected
// outcomes such as not-found.
func RecordStoreOperation(operation, partition string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, partition).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation, partition).Inc()
	}
}

// SetStoreUp records the outcome of a store ping.
func SetStoreUp(up bool) {
	if up {
		StoreUp.Set(1)
		return
	}
	StoreUp.Set(0)
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

// RecordAuthEvent counts an authentication outcome.
func RecordAuthEvent(event, outcome string) {
	AuthEventsTotal.WithLabelValues(event, outcome).Inc()
}

// RecordBreakerTransition updates state gauges and transition counters.
// State values follow gobreaker: 0 closed, 1 half-open, 2 open.
func RecordBreakerTransition(name, from, to string, toState int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(toState))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordBreakerRejection counts a call refused by an open breaker.
func RecordBreakerRejection(name string) {
	CircuitBreakerRejections.WithLabelValues(name).Inc()
}
