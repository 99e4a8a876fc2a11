// Package metrics provides Prometheus metrics export for the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exports summarization metrics in Prometheus format.
type Metrics struct {
	registry *prometheus.Registry

	summarizeRequests *prometheus.CounterVec
	summarizeLatency  *prometheus.HistogramVec
	pageFetches       *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		summarizeRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gistify",
				Subsystem: "summarize",
				Name:      "requests_total",
				Help:      "Total number of summarize requests",
			},
			[]string{"provider", "status"},
		),
		summarizeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gistify",
				Subsystem: "summarize",
				Name:      "latency_seconds",
				Help:      "Summarize request latency in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"provider"},
		),
		pageFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gistify",
				Subsystem: "article",
				Name:      "fetches_total",
				Help:      "Total number of article page fetches",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(m.summarizeRequests, m.summarizeLatency, m.pageFetches)

	return m
}

// ObserveSummarize records one summarize request outcome.
func (m *Metrics) ObserveSummarize(provider, status string, elapsed time.Duration) {
	m.summarizeRequests.WithLabelValues(provider, status).Inc()
	m.summarizeLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObservePageFetch records one article fetch outcome.
func (m *Metrics) ObservePageFetch(status string) {
	m.pageFetches.WithLabelValues(status).Inc()
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
