package jwtgate

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/elgris/jwtgate/core"
)

// PrometheusMetrics implements core.Metrics with two collectors:
//
//   - jwtgate_requests_total{outcome}: one increment per request through the gate
//   - jwtgate_verification_duration_seconds{outcome}: time spent verifying tokens
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jwtgate",
			Name:      "requests_total",
			Help:      "Requests seen by the authentication gate, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jwtgate",
			Name:      "verification_duration_seconds",
			Help:      "Time spent verifying bearer tokens, by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering gate metrics: %w", err)
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) IncOutcome(outcome core.Outcome) {
	m.requests.WithLabelValues(string(outcome)).Inc()
}

func (m *PrometheusMetrics) ObserveVerification(outcome core.Outcome, duration time.Duration) {
	m.duration.WithLabelValues(string(outcome)).Observe(duration.Seconds())
}
