package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const OutcomeSuccess = "success"

// Metrics holds Prometheus metrics for the note generation pipeline.
// Each instance owns its registry so tests can build as many as they like.
type Metrics struct {
	GenerationTotal    *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	NotesListed        prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics instance
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		GenerationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "requests_total",
				Help:      "Total number of note generation requests by outcome",
			},
			[]string{"outcome"}, // success or an error kind
		),
		GenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "duration_seconds",
				Help:      "End-to-end note generation duration in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"outcome"},
		),
		NotesListed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "listing",
				Name:      "requests_total",
				Help:      "Total number of note listing requests",
			},
		),
		registry: reg,
	}
}

func (m *Metrics) ObserveGeneration(outcome string, elapsed time.Duration) {
	m.GenerationTotal.WithLabelValues(outcome).Inc()
	m.GenerationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
