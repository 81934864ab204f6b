// Package telemetry registers the Prometheus metrics of the membership service.
//
// Metrics live in the default registry and are served on the side-channel
// listener started by cmd/api (METRICS_PORT, default 9090):
//
//	GET http://<host>:<METRICS_PORT>/metrics
//
// HTTP metrics are labelled by chi route pattern, never the raw URL, so
// invitation tokens and ids do not inflate label cardinality.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orgmembers"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)
)

// Saga metrics. outcome is "success" or "failure" for runs and
// "compensated" or "failed" for compensations.
//
// Example PromQL:
//   - Failed bootstraps:    sum(rate(orgmembers_saga_runs_total{saga="owner_bootstrap",outcome="failure"}[1h]))
//   - Stuck compensations:  orgmembers_saga_compensations_total{outcome="failed"}
var (
	SagaRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saga_runs_total",
			Help:      "Total number of saga runs, by saga and outcome.",
		},
		[]string{"saga", "outcome"},
	)

	SagaCompensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saga_compensations_total",
			Help:      "Total number of compensation actions, by saga, step, and outcome.",
		},
		[]string{"saga", "step", "outcome"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SagaObserver feeds saga outcomes into the saga counters.
type SagaObserver struct{}

func (SagaObserver) SagaCompleted(saga string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	SagaRunsTotal.WithLabelValues(saga, outcome).Inc()
}

func (SagaObserver) StepCompensated(saga, step string, err error) {
	outcome := "compensated"
	if err != nil {
		outcome = "failed"
	}
	SagaCompensationsTotal.WithLabelValues(saga, step, outcome).Inc()
}
