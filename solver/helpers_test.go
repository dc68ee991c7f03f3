// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ozsolver/closure"
	"github.com/katalvlaran/ozsolver/grid"
	"github.com/katalvlaran/ozsolver/integral"
	"github.com/katalvlaran/ozsolver/potential"
	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/state"
	"github.com/stretchr/testify/require"
)

// zeroPotential is u ≡ 0.
type zeroPotential struct{}

func (zeroPotential) Name() string { return "zero" }

func (zeroPotential) Calculate(r []float64) ([]float64, error) {
	return make([]float64, len(r)), nil
}

// fixedClosure ignores its inputs and returns a copy of c.
type fixedClosure struct{ c []float64 }

func (fixedClosure) Name() string { return "fixed" }

func (f fixedClosure) Calculate(r, _, _ []float64, _ float64) ([]float64, error) {
	return append([]float64(nil), f.c...), nil
}

// nanClosure poisons one point.
type nanClosure struct{}

func (nanClosure) Name() string { return "nan" }

func (nanClosure) Calculate(r, _, _ []float64, _ float64) ([]float64, error) {
	out := make([]float64, len(r))
	out[len(out)/2] = math.NaN()

	return out, nil
}

// infEquation returns +Inf everywhere.
type infEquation struct{}

func (infEquation) Name() string { return "inf" }

func (infEquation) Calculate(ck, _ []float64, _ float64) ([]float64, error) {
	out := make([]float64, len(ck))
	for i := range out {
		out[i] = math.Inf(1)
	}

	return out, nil
}

// shortEquation drops the last point.
type shortEquation struct{}

func (shortEquation) Name() string { return "short" }

func (shortEquation) Calculate(ck, _ []float64, _ float64) ([]float64, error) {
	return make([]float64, len(ck)-1), nil
}

func newGrid(t testing.TB, n int, radius float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(n, radius)
	require.NoError(t, err)

	return g
}

func newState(t testing.TB, n int, density float64) *state.State {
	t.Helper()
	s, err := state.NewBuilder().
		BoltzmannConstant(1).
		Temperature(85).
		Density(density).
		Points(n).
		Build()
	require.NoError(t, err)

	return s
}

// argonBuilder assembles the Lennard-Jones/HNC reference problem.
func argonBuilder(t testing.TB, n int, radius float64) *solver.Builder {
	t.Helper()

	return solver.NewBuilder().
		Grid(newGrid(t, n, radius)).
		Potential(potential.LennardJones{Sigma: 3.4, Epsilon: 120}).
		Closure(closure.HNC{}).
		IntegralEquation(integral.OZ{}).
		State(newState(t, n, 0.0210175))
}

func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
