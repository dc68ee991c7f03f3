// SPDX-License-Identifier: MIT

package closure

import (
	"fmt"
	"math"
)

// Closure maps (r, u, t, β) to a candidate direct correlation function.
type Closure interface {
	Calculate(r, u, t []float64, beta float64) ([]float64, error)
	Name() string
}

// HNC is the Hypernetted-Chain closure.
type HNC struct{}

// Name implements Closure.
func (HNC) Name() string { return "hnc" }

// Calculate implements Closure. r is accepted for interface symmetry with
// closures that depend on it explicitly; HNC does not.
func (HNC) Calculate(r, u, t []float64, beta float64) ([]float64, error) {
	if err := checkLengths(r, u, t); err != nil {
		return nil, err
	}

	c := make([]float64, len(t))
	for i := range c {
		c[i] = math.Exp(-beta*u[i]+t[i]) - 1 - t[i]
	}

	return c, nil
}

func checkLengths(r, u, t []float64) error {
	if len(r) == 0 || len(u) == 0 || len(t) == 0 {
		return ErrEmptyInput
	}
	if len(r) != len(u) || len(r) != len(t) {
		return fmt.Errorf("%w: r=%d u=%d t=%d", ErrLengthMismatch, len(r), len(u), len(t))
	}

	return nil
}
