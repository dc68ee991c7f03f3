// SPDX-License-Identifier: MIT

package potential

import (
	"fmt"
	"math"
)

// Potential maps radii to pair-interaction energies u(r).
// The returned slice has the same length as r and is freshly allocated.
type Potential interface {
	Calculate(r []float64) ([]float64, error)
	Name() string
}

// LennardJones is the 12-6 potential with well depth Epsilon and zero
// crossing at Sigma.
type LennardJones struct {
	Sigma   float64
	Epsilon float64
}

// NewLennardJones validates sigma and epsilon (both finite and > 0).
func NewLennardJones(sigma, epsilon float64) (LennardJones, error) {
	if !positiveFinite(sigma) {
		return LennardJones{}, fmt.Errorf("%w: sigma %g", ErrInvalidParameter, sigma)
	}
	if !positiveFinite(epsilon) {
		return LennardJones{}, fmt.Errorf("%w: epsilon %g", ErrInvalidParameter, epsilon)
	}

	return LennardJones{Sigma: sigma, Epsilon: epsilon}, nil
}

// Name implements Potential.
func (LennardJones) Name() string { return "lennard-jones" }

// Calculate implements Potential. r must be bounded away from zero; the grid
// guarantees r ≥ dr/2.
func (lj LennardJones) Calculate(r []float64) ([]float64, error) {
	if len(r) == 0 {
		return nil, ErrEmptyInput
	}

	u := make([]float64, len(r))
	fourEps := 4 * lj.Epsilon
	for i, ri := range r {
		s := lj.Sigma / ri
		s6 := s * s * s
		s6 *= s6
		u[i] = fourEps * (s6*s6 - s6)
	}

	return u, nil
}

// Minimum returns the radius 2^(1/6)·σ where u reaches −ε.
func (lj LennardJones) Minimum() float64 {
	return math.Pow(2, 1.0/6.0) * lj.Sigma
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
