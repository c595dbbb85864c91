// Package metrics exposes Prometheus counters for remote-call resilience:
// retried attempts per operation and classified failures per kind.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pharmagarde/pharmagarde/pkg/retry"
)

type Metrics struct {
	registry         *prometheus.Registry
	retries          *prometheus.CounterVec
	retryDelay       *prometheus.CounterVec
	classifiedErrors *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pharmagarde_retries_total",
				Help: "Failed remote attempts that were retried",
			},
			[]string{"operation"},
		),
		retryDelay: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pharmagarde_retry_delay_seconds_total",
				Help: "Total backoff time spent before retries",
			},
			[]string{"operation"},
		),
		classifiedErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pharmagarde_errors_total",
				Help: "Remote failures surfaced to users, by classified kind",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(
		m.retries,
		m.retryDelay,
		m.classifiedErrors,
		collectors.NewGoCollector(),
	)
	return m
}

// OnRetry returns a retry hook counting retried attempts of operation.
func (m *Metrics) OnRetry(operation string) retry.OnRetryFunc {
	return func(_ context.Context, _ int, delay time.Duration, _ error) {
		m.retries.WithLabelValues(operation).Inc()
		m.retryDelay.WithLabelValues(operation).Add(delay.Seconds())
	}
}

// ObserveError counts a classified failure.
func (m *Metrics) ObserveError(kind string) {
	m.classifiedErrors.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
