// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package metrics provides Prometheus instrumentation for the API
// surface, the record store and the recommendation engines. Metrics
// register on the default registry and are served at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "convene_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "convene_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "convene_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Record store metrics.
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "convene_store_operation_duration_seconds",
			Help:    "Duration of record store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "entity"},
	)

	StoreOpErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "convene_store_operation_errors_total",
			Help: "Total number of record store operation errors",
		},
		[]string{"operation", "entity"},
	)

	// Recommendation engine metrics.
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "convene_recommendation_duration_seconds",
			Help:    "Recommendation computation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"engine"},
	)

	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "convene_recommendation_results",
			Help:    "Number of results returned per recommendation call",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"engine"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOp records one record store operation.
func RecordStoreOp(operation, entity string, duration time.Duration, err error) {
	StoreOpDuration.WithLabelValues(operation, entity).Observe(duration.Seconds())
	if err != nil {
		StoreOpErrors.WithLabelValues(operation, entity).Inc()
	}
}

// RecordRecommendation records one recommendation computation.
func RecordRecommendation(engine string, results int, duration time.Duration) {
	RecommendDuration.WithLabelValues(engine).Observe(duration.Seconds())
	RecommendResults.WithLabelValues(engine).Observe(float64(results))
}
