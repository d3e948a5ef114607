// Package metrics holds the prometheus collectors of the title engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for DocumentsTotal.
const (
	OutcomeProcessed = "processed"
	OutcomeSkipped   = "skipped"
	OutcomeFiltered  = "filtered"
)

// Metrics contains the title generation collectors and the registry they live in.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsTotal     *prometheus.CounterVec
	RankIterations     prometheus.Histogram
	GenerationDuration *prometheus.HistogramVec
	JobsTotal          *prometheus.CounterVec
}

// New creates the collectors and registers them, plus Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		DocumentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "titlegen",
				Name:      "documents_total",
				Help:      "Documents handled by outcome (processed, skipped, filtered)",
			},
			[]string{"method", "outcome"},
		),

		RankIterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "titlegen",
				Name:      "rank_iterations",
				Help:      "Power iterations needed per ranking",
				Buckets:   []float64{1, 5, 10, 20, 40, 60, 80, 100},
			},
		),

		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "titlegen",
				Name:      "generation_seconds",
				Help:      "Time spent generating one title",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),

		JobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "titlegen",
				Name:      "jobs_total",
				Help:      "Batch jobs by final status",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		m.DocumentsTotal,
		m.RankIterations,
		m.GenerationDuration,
		m.JobsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// ObserveDocument records one document outcome and, unless it was filtered, its duration.
func (m *Metrics) ObserveDocument(method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DocumentsTotal.WithLabelValues(method, outcome).Inc()
	if outcome != OutcomeFiltered {
		m.GenerationDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

// ObserveIterations records the iteration count of one ranking.
func (m *Metrics) ObserveIterations(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RankIterations.Observe(float64(n))
}

// ObserveJob records a job reaching a terminal status.
func (m *Metrics) ObserveJob(status string) {
	if m == nil {
		return
	}
	m.JobsTotal.WithLabelValues(status).Inc()
}
