// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/katalvlaran/ozsolver/closure"
	"github.com/katalvlaran/ozsolver/integral"
	"github.com/katalvlaran/ozsolver/potential"
	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_MissingCollaborator names each absent field.
func TestBuild_MissingCollaborator(t *testing.T) {
	g := newGrid(t, 32, 3.2)
	st := newState(t, 32, 0.01)
	lj := potential.LennardJones{Sigma: 1, Epsilon: 1}

	cases := []struct {
		field string
		b     *solver.Builder
	}{
		{solver.FieldGrid, solver.NewBuilder().Potential(lj).Closure(closure.HNC{}).IntegralEquation(integral.OZ{}).State(st)},
		{solver.FieldPotential, solver.NewBuilder().Grid(g).Closure(closure.HNC{}).IntegralEquation(integral.OZ{}).State(st)},
		{solver.FieldClosure, solver.NewBuilder().Grid(g).Potential(lj).IntegralEquation(integral.OZ{}).State(st)},
		{solver.FieldIntegralEquation, solver.NewBuilder().Grid(g).Potential(lj).Closure(closure.HNC{}).State(st)},
		{solver.FieldState, solver.NewBuilder().Grid(g).Potential(lj).Closure(closure.HNC{}).IntegralEquation(integral.OZ{})},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			s, err := tc.b.Build()
			assert.Nil(t, s)
			assert.ErrorIs(t, err, solver.ErrIncompleteConfiguration)
			assert.ErrorContains(t, err, tc.field)
		})
	}
}

func TestBuild_StateSizeMismatch(t *testing.T) {
	_, err := argonBuilder(t, 32, 3.2).State(newState(t, 16, 0.01)).Build()
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}

// TestBuild_TransformBinding accepts a matching plan and rejects a foreign one.
func TestBuild_TransformBinding(t *testing.T) {
	own, err := transform.New(newGrid(t, 64, 6.4))
	require.NoError(t, err)
	s, err := argonBuilder(t, 64, 6.4).Transform(own).Build()
	require.NoError(t, err)
	assert.Equal(t, solver.PhaseBuilt, s.Phase())

	foreign, err := transform.New(newGrid(t, 128, 6.4))
	require.NoError(t, err)
	_, err = argonBuilder(t, 64, 6.4).Transform(foreign).Build()
	assert.ErrorIs(t, err, transform.ErrPlanMismatch)
}

func TestBuild_Options(t *testing.T) {
	s, err := argonBuilder(t, 16, 1.6).Build()
	require.NoError(t, err)
	o := s.Options()
	assert.Equal(t, solver.DefaultTolerance, o.Tolerance())
	assert.Equal(t, solver.DefaultMaxIterations, o.MaxIterations())
	assert.Equal(t, solver.DefaultDamping, o.Damping())
	assert.Equal(t, solver.SumDifference, o.Metric())

	s, err = argonBuilder(t, 16, 1.6).Build(
		solver.WithTolerance(1e-8),
		solver.WithMaxIterations(7),
		solver.WithDamping(1),
		solver.WithMetric(solver.MaxAbs),
		solver.WithObserver(nil),
	)
	require.NoError(t, err)
	o = s.Options()
	assert.Equal(t, 1e-8, o.Tolerance())
	assert.Equal(t, 7, o.MaxIterations())
	assert.Equal(t, 1.0, o.Damping())
	assert.Equal(t, solver.MaxAbs, o.Metric())
}

func TestBuild_InvalidOptions(t *testing.T) {
	bad := map[string]solver.Option{
		"zero tolerance":  solver.WithTolerance(0),
		"negative tol":    solver.WithTolerance(-1),
		"zero iterations": solver.WithMaxIterations(0),
		"zero damping":    solver.WithDamping(0),
		"damping above 1": solver.WithDamping(1.5),
		"unknown metric":  solver.WithMetric(solver.Metric(42)),
	}
	for name, opt := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := argonBuilder(t, 16, 1.6).Build(opt)
			assert.ErrorIs(t, err, solver.ErrInvalidOption)
		})
	}
}
