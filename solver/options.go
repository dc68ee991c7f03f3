// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the residual below which Solve reports Converged.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations caps the number of operator applications.
	DefaultMaxIterations = 10000

	// DefaultDamping is the mixing fraction α of the new candidate.
	DefaultDamping = 0.2

	// DefaultMetric keeps the sum-difference criterion.
	DefaultMetric = SumDifference
)

// Option mutates Options. Values are validated once, in Builder.Build.
type Option func(*Options)

// Options is the effective iteration configuration of a Solver.
type Options struct {
	tolerance     float64
	maxIterations int
	damping       float64
	metric        Metric
	observers     []Observer
}

// Tolerance returns the convergence threshold.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the iteration cap.
func (o Options) MaxIterations() int { return o.maxIterations }

// Damping returns the mixing fraction.
func (o Options) Damping() float64 { return o.damping }

// Metric returns the residual metric.
func (o Options) Metric() Metric { return o.metric }

// WithTolerance sets the convergence threshold; must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the iteration cap; must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIterations = n }
}

// WithDamping sets α in C_new = C + α(C_cand − C); must lie in (0, 1].
// α = 1 is plain successive substitution.
func WithDamping(alpha float64) Option {
	return func(o *Options) { o.damping = alpha }
}

// WithMetric selects the residual metric.
func WithMetric(m Metric) Option {
	return func(o *Options) { o.metric = m }
}

// WithObserver appends an iteration observer. Nil observers are ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func defaultOptions() Options {
	return Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		damping:       DefaultDamping,
		metric:        DefaultMetric,
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if math.IsNaN(o.tolerance) || math.IsInf(o.tolerance, 0) || o.tolerance <= 0 {
		return Options{}, fmt.Errorf("%w: tolerance %g must be positive and finite", ErrInvalidOption, o.tolerance)
	}
	if o.maxIterations <= 0 {
		return Options{}, fmt.Errorf("%w: max iterations %d must be > 0", ErrInvalidOption, o.maxIterations)
	}
	if math.IsNaN(o.damping) || o.damping <= 0 || o.damping > 1 {
		return Options{}, fmt.Errorf("%w: damping %g must lie in (0, 1]", ErrInvalidOption, o.damping)
	}
	if !o.metric.valid() {
		return Options{}, fmt.Errorf("%w: unknown metric %d", ErrInvalidOption, int(o.metric))
	}

	return o, nil
}
