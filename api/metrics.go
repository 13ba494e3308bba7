package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the server metrics.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	transfersTotal  *prometheus.CounterVec
	rateLimited     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orbits_request_duration_seconds",
				Help:    "Time spent processing request",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"route", "method"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orbits_requests_total",
				Help: "Total number of requests",
			},
			[]string{"route", "method", "status"},
		),
		transfersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orbits_transfers_total",
				Help: "Total number of transfer computations by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orbits_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
	reg.MustRegister(m.requestDuration, m.requestsTotal, m.transfersTotal, m.rateLimited)
	return m
}

// RecordRequest records a served request.
func (m *Metrics) RecordRequest(route, method, status string, duration time.Duration) {
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(route, method, status).Inc()
}

// RecordTransfer records a transfer computation. The outcome is "ok" or the error kind.
func (m *Metrics) RecordTransfer(kind, outcome string) {
	m.transfersTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimited() {
	m.rateLimited.Inc()
}
