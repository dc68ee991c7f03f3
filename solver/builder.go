// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/ozsolver/closure"
	"github.com/katalvlaran/ozsolver/grid"
	"github.com/katalvlaran/ozsolver/integral"
	"github.com/katalvlaran/ozsolver/potential"
	"github.com/katalvlaran/ozsolver/state"
	"github.com/katalvlaran/ozsolver/transform"
)

// Names reported by ErrIncompleteConfiguration.
const (
	FieldGrid             = "grid"
	FieldPotential        = "potential"
	FieldClosure          = "closure"
	FieldIntegralEquation = "integral_equation"
	FieldState            = "state"
)

// Builder accumulates the collaborators of a Solver.
type Builder struct {
	grid      *grid.Grid
	potential potential.Potential
	closure   closure.Closure
	equation  integral.Equation
	state     *state.State
	transform *transform.Transform
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Grid sets the shared, read-only grid.
func (b *Builder) Grid(g *grid.Grid) *Builder {
	b.grid = g
	return b
}

// Potential sets the pair potential strategy.
func (b *Builder) Potential(p potential.Potential) *Builder {
	b.potential = p
	return b
}

// Closure sets the closure strategy.
func (b *Builder) Closure(c closure.Closure) *Builder {
	b.closure = c
	return b
}

// IntegralEquation sets the OZ relation strategy.
func (b *Builder) IntegralEquation(e integral.Equation) *Builder {
	b.equation = e
	return b
}

// State hands ownership of s to the solver.
func (b *Builder) State(s *state.State) *Builder {
	b.state = s
	return b
}

// Transform supplies a prebuilt plan. Optional: Build plans one from the grid
// when absent. A plan built for another grid is rejected.
func (b *Builder) Transform(t *transform.Transform) *Builder {
	b.transform = t
	return b
}

// Build validates the configuration and returns a Solver in PhaseBuilt.
//
// Errors:
//   - ErrIncompleteConfiguration naming the first missing collaborator
//     (grid, potential, closure, integral_equation, state).
//   - ErrDimensionMismatch if the state's N differs from the grid's.
//   - transform.ErrPlanMismatch for a plan bound to another grid;
//     transform.ErrPlanConstruction if planning fails.
//   - ErrInvalidOption for out-of-range options.
func (b *Builder) Build(opts ...Option) (*Solver, error) {
	switch {
	case b.grid == nil:
		return nil, missing(FieldGrid)
	case b.potential == nil:
		return nil, missing(FieldPotential)
	case b.closure == nil:
		return nil, missing(FieldClosure)
	case b.equation == nil:
		return nil, missing(FieldIntegralEquation)
	case b.state == nil:
		return nil, missing(FieldState)
	}

	n := b.grid.N()
	if b.state.N() != n {
		return nil, fmt.Errorf("%w: state has %d points, grid has %d", ErrDimensionMismatch, b.state.N(), n)
	}
	if err := b.state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}

	tr := b.transform
	if tr == nil {
		var err error
		if tr, err = transform.New(b.grid); err != nil {
			return nil, err
		}
	} else if err := tr.Bound(b.grid); err != nil {
		return nil, err
	}

	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Solver{
		grid:      b.grid,
		potential: b.potential,
		closure:   b.closure,
		equation:  b.equation,
		state:     b.state,
		transform: tr,
		opts:      o,
		r:         b.grid.R(),
		k:         b.grid.K(),
		phase:     PhaseBuilt,
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrIncompleteConfiguration, field)
}
