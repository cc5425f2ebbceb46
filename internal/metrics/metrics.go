// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package metrics provides Prometheus instrumentation for HTTP traffic, the
// generation gate, and the AI completion backend.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Generation gate metrics
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_plan_generations_total",
			Help: "Total trip plan generation attempts by outcome",
		},
		[]string{"outcome"}, // "success", "quota_exceeded", "insufficient_preferences", "not_found", "failed"
	)

	QuotaRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "generation_quota_rejections_total",
			Help: "Total generation attempts rejected by the daily quota",
		},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trip_plan_generation_duration_seconds",
			Help:    "Duration of successful AI plan generations in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)

	// Completion backend circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "completion_circuit_breaker_state",
			Help: "Completion backend circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_circuit_breaker_requests_total",
			Help: "Completion requests by circuit breaker result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)
)

// ObserveHTTPRequest records one HTTP request observation.
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
}
