// SPDX-License-Identifier: MIT

package observe

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ozsolver/solver"
)

// Status label values of solves_total.
const (
	statusConverged     = "converged"
	statusMaxIterations = "max_iterations"
	statusDiverged      = "diverged"
	statusFailed        = "failed"
)

// Metrics exports solver progress to Prometheus.
type Metrics struct {
	iterations prometheus.Counter
	residual   prometheus.Gauge
	solves     *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg under namespace.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Total number of OZ operator applications",
		}),
		residual: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "residual",
			Help:      "Residual of the most recent iteration",
		}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves by outcome",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{m.iterations, m.residual, m.solves} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("observe: register metrics: %w", err)
		}
	}

	return m, nil
}

// Observer returns the per-iteration hook.
func (m *Metrics) Observer() solver.Observer {
	return func(it solver.Iteration) {
		m.iterations.Inc()
		m.residual.Set(it.Residual)
	}
}

// RecordResult counts a finished solve under its outcome.
func (m *Metrics) RecordResult(res solver.Result, err error) {
	m.solves.WithLabelValues(outcome(res, err)).Inc()
}

func outcome(res solver.Result, err error) string {
	switch {
	case errors.Is(err, solver.ErrNumericalDivergence):
		return statusDiverged
	case err != nil:
		return statusFailed
	case res.Status == solver.Converged:
		return statusConverged
	default:
		return statusMaxIterations
	}
}

// IterationsCollector exposes the iteration counter, mainly for tests.
func (m *Metrics) IterationsCollector() prometheus.Collector { return m.iterations }

// ResidualCollector exposes the residual gauge, mainly for tests.
func (m *Metrics) ResidualCollector() prometheus.Collector { return m.residual }
