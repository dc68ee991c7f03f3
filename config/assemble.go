// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/ozsolver/closure"
	"github.com/katalvlaran/ozsolver/grid"
	"github.com/katalvlaran/ozsolver/integral"
	"github.com/katalvlaran/ozsolver/potential"
	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/state"
)

// Assemble validates c and builds a solver from it. extra options are applied
// after the ones derived from c, so they win on conflict.
func Assemble(c Config, extra ...solver.Option) (*solver.Solver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(c.Grid.Points, c.Grid.Radius)
	if err != nil {
		return nil, err
	}
	pot, err := newPotential(c.Potential)
	if err != nil {
		return nil, err
	}
	clo, err := newClosure(c.Closure)
	if err != nil {
		return nil, err
	}
	eq, err := newEquation(c.IntegralEquation)
	if err != nil {
		return nil, err
	}
	metric, ok := solver.ParseMetric(c.Solver.Metric)
	if !ok {
		return nil, fmt.Errorf("%w: metric %q", ErrUnknownStrategy, c.Solver.Metric)
	}

	st, err := state.NewBuilder().
		BoltzmannConstant(c.State.BoltzmannConstant).
		Temperature(c.State.Temperature).
		Density(c.State.Density).
		Points(c.Grid.Points).
		Build()
	if err != nil {
		return nil, err
	}

	opts := append([]solver.Option{
		solver.WithTolerance(c.Solver.Tolerance),
		solver.WithMaxIterations(c.Solver.MaxIterations),
		solver.WithDamping(c.Solver.Damping),
		solver.WithMetric(metric),
	}, extra...)

	return solver.NewBuilder().
		Grid(g).
		Potential(pot).
		Closure(clo).
		IntegralEquation(eq).
		State(st).
		Build(opts...)
}

func newPotential(p Potential) (potential.Potential, error) {
	switch p.Type {
	case "lennard-jones":
		return potential.NewLennardJones(p.Sigma, p.Epsilon)
	default:
		return nil, fmt.Errorf("%w: potential %q", ErrUnknownStrategy, p.Type)
	}
}

func newClosure(name string) (closure.Closure, error) {
	switch name {
	case closure.HNC{}.Name():
		return closure.HNC{}, nil
	default:
		return nil, fmt.Errorf("%w: closure %q", ErrUnknownStrategy, name)
	}
}

func newEquation(name string) (integral.Equation, error) {
	switch name {
	case integral.OZ{}.Name():
		return integral.OZ{}, nil
	case integral.LegacyOZ{}.Name():
		return integral.LegacyOZ{}, nil
	default:
		return nil, fmt.Errorf("%w: integral equation %q", ErrUnknownStrategy, name)
	}
}
