// Package metrics records solver and tiling statistics in a Prometheus
// registry that can be dumped in the text exposition format.
package metrics

import (
	"github.com/octatile/hyperbolic"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry *prometheus.Registry

	attempts   *prometheus.CounterVec
	iterations prometheus.Histogram
	objective  prometheus.Gauge
	octagons   prometheus.Gauge
	edges      prometheus.Gauge
}

// New returns metrics registered with a fresh registry, so that several
// instances can coexist in one process.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "octatile_solver_attempts_total",
				Help: "Number of finished descents, by outcome.",
			},
			[]string{"outcome"},
		),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "octatile_solver_iterations",
			Help:    "Number of gradient steps taken per descent.",
			Buckets: prometheus.LinearBuckets(25, 25, 8),
		}),
		objective: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "octatile_solver_objective",
			Help: "Objective value of the accepted octagon.",
		}),
		octagons: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "octatile_tiling_octagons",
			Help: "Number of octagons in the generated tiling.",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "octatile_tiling_edges",
			Help: "Number of edges drawn for the generated tiling.",
		}),
	}
	m.registry.MustRegister(m.attempts, m.iterations, m.objective, m.octagons, m.edges)
	return m
}

// ObserveAttempt records one descent. It has the signature of a solver
// attempt hook.
func (m *Metrics) ObserveAttempt(a hyperbolic.Attempt) {
	outcome := "failure"
	if a.Result.OK {
		outcome = "success"
	}
	m.attempts.WithLabelValues(outcome).Inc()
	m.iterations.Observe(float64(a.Result.Iterations))
}

func (m *Metrics) ObserveSolution(res hyperbolic.SolveResult) {
	m.objective.Set(res.Objective)
}

func (m *Metrics) ObserveTiling(t *hyperbolic.Tiling, edges int) {
	m.octagons.Set(float64(t.Len()))
	m.edges.Set(float64(edges))
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes all metrics to path in the format read by the node
// exporter's textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
