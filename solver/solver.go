// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ozsolver/closure"
	"github.com/katalvlaran/ozsolver/grid"
	"github.com/katalvlaran/ozsolver/integral"
	"github.com/katalvlaran/ozsolver/potential"
	"github.com/katalvlaran/ozsolver/state"
	"github.com/katalvlaran/ozsolver/transform"
)

// Solver iterates one OZ problem. Build it with Builder.
type Solver struct {
	grid      *grid.Grid
	potential potential.Potential
	closure   closure.Closure
	equation  integral.Equation
	state     *state.State
	transform *transform.Transform
	opts      Options

	// private copies of the grid points, read-only
	r []float64
	k []float64

	phase  Phase
	result Result
}

// Phase returns the current lifecycle phase.
func (s *Solver) Phase() Phase { return s.phase }

// State returns the solver's state. Profiles are only meaningful as c(r),
// t(r), h(r) once the solver is finalised.
func (s *Solver) State() *state.State { return s.state }

// Grid returns the grid the solver was built on.
func (s *Solver) Grid() *grid.Grid { return s.grid }

// Options returns the effective options.
func (s *Solver) Options() Options { return s.opts }

// Result returns the outcome of the last Solve (zero before Solve).
func (s *Solver) Result() Result { return s.result }

// Initialise seeds u = potential(r) and C = guess. guess is taken in the
// r-weighted convention (r·c(r)); all zeros is the usual start.
//
// Errors:
//   - ErrInvalidPhase unless the solver is in PhaseBuilt or PhaseInitialised.
//   - ErrDimensionMismatch if len(guess) != N.
//   - potential errors, wrapped.
func (s *Solver) Initialise(guess []float64) error {
	if s.phase != PhaseBuilt && s.phase != PhaseInitialised {
		return fmt.Errorf("%w: Initialise in phase %s", ErrInvalidPhase, s.phase)
	}
	if len(guess) != len(s.r) {
		return fmt.Errorf("%w: initial guess has %d points, grid has %d", ErrDimensionMismatch, len(guess), len(s.r))
	}

	u, err := s.potential.Calculate(s.r)
	if err != nil {
		return fmt.Errorf("solver: potential %s: %w", s.potential.Name(), err)
	}
	if len(u) != len(s.r) {
		return fmt.Errorf("%w: potential returned %d points", ErrDimensionMismatch, len(u))
	}

	s.state.U = u
	s.state.C = append(s.state.C[:0], guess...)
	s.phase = PhaseInitialised

	return nil
}

// Solve repeats the OZ operator with damped mixing until the residual drops
// below the tolerance or the iteration cap is hit. Both are terminal,
// non-error outcomes distinguished by Result.Status.
//
// Errors:
//   - ErrInvalidPhase unless the solver is initialised.
//   - ErrNumericalDivergence (phase becomes PhaseDiverged).
//   - strategy or transform errors, wrapped (phase becomes PhaseFailed).
func (s *Solver) Solve() (Result, error) {
	if s.phase != PhaseInitialised {
		return Result{}, fmt.Errorf("%w: Solve in phase %s", ErrInvalidPhase, s.phase)
	}
	s.phase = PhaseIterating

	prev := append([]float64(nil), s.state.C...)
	next := make([]float64, len(prev))
	alpha := s.opts.damping

	for it := 1; ; it++ {
		cand, t, err := s.operator(prev, it)
		if err != nil {
			s.phase = PhaseFailed
			if errors.Is(err, ErrNumericalDivergence) {
				s.phase = PhaseDiverged
			}
			return Result{Iterations: it}, err
		}

		// next = prev + α(cand − prev)
		floats.SubTo(next, cand, prev)
		floats.AddScaledTo(next, prev, alpha, next)
		if !finite(next) {
			s.phase = PhaseDiverged
			return Result{Iterations: it}, diverged(it, "mixed c(r)")
		}

		residual := s.opts.metric.Residual(next, prev)
		s.notify(Iteration{Index: it, Residual: residual, Summary: summarize(next)})
		if math.IsNaN(residual) || math.IsInf(residual, 0) {
			s.phase = PhaseDiverged
			return Result{Iterations: it, Residual: residual}, diverged(it, "residual")
		}

		switch {
		case residual < s.opts.tolerance:
			s.finish(next, t, PhaseConverged, Result{Status: Converged, Iterations: it, Residual: residual})
			return s.result, nil
		case it >= s.opts.maxIterations:
			s.finish(next, t, PhaseMaxIterations, Result{Status: MaxIterationsReached, Iterations: it, Residual: residual})
			return s.result, nil
		}

		prev, next = next, prev
	}
}

// operator applies one OZ cycle to the r-weighted c and returns the
// r-weighted closure candidate together with the r-weighted t.
func (s *Solver) operator(c []float64, it int) (cand, t []float64, err error) {
	n := len(c)
	_, weighted := s.equation.(integral.KWeighted)

	// c(r) → c(k); Forward yields k·ĉ(k)
	ck, err := s.transform.Forward(c)
	if err != nil {
		return nil, nil, fmt.Errorf("solver: forward transform: %w", err)
	}
	if !weighted {
		floats.Div(ck, s.k)
	}

	tk, err := s.equation.Calculate(ck, s.k, s.state.Density())
	if err != nil {
		return nil, nil, fmt.Errorf("solver: integral equation %s: %w", s.equation.Name(), err)
	}
	if len(tk) != n {
		return nil, nil, fmt.Errorf("%w: integral equation returned %d points", ErrDimensionMismatch, len(tk))
	}
	if !finite(tk) {
		return nil, nil, diverged(it, "t(k)")
	}

	// t(k) → t(r); Backward of k·t̂(k) yields r·t(r)
	if !weighted {
		floats.Mul(tk, s.k)
	}
	t, err = s.transform.Backward(tk)
	if err != nil {
		return nil, nil, fmt.Errorf("solver: backward transform: %w", err)
	}
	if !finite(t) {
		return nil, nil, diverged(it, "t(r)")
	}

	tr := make([]float64, n)
	floats.DivTo(tr, t, s.r)
	cand, err = s.closure.Calculate(s.r, s.state.U, tr, s.state.Beta())
	if err != nil {
		return nil, nil, fmt.Errorf("solver: closure %s: %w", s.closure.Name(), err)
	}
	if len(cand) != n {
		return nil, nil, fmt.Errorf("%w: closure returned %d points", ErrDimensionMismatch, len(cand))
	}
	floats.Mul(cand, s.r)
	if !finite(cand) {
		return nil, nil, diverged(it, "closure c(r)")
	}

	return cand, t, nil
}

func (s *Solver) finish(c, t []float64, p Phase, res Result) {
	s.state.C = append(s.state.C[:0], c...)
	s.state.T = append(s.state.T[:0], t...)
	s.phase = p
	s.result = res
}

func (s *Solver) notify(it Iteration) {
	for _, obs := range s.opts.observers {
		obs(it)
	}
}

// CleanUp undoes the r-weighting (c = C/r, t = T/r) and sets h = t + c.
//
// Errors:
//   - ErrInvalidPhase unless Solve ended in PhaseConverged or PhaseMaxIterations.
func (s *Solver) CleanUp() error {
	if s.phase != PhaseConverged && s.phase != PhaseMaxIterations {
		return fmt.Errorf("%w: CleanUp in phase %s", ErrInvalidPhase, s.phase)
	}

	st := s.state
	floats.Div(st.C, s.r)
	floats.Div(st.T, s.r)
	if len(st.H) != len(s.r) {
		st.H = make([]float64, len(s.r))
	}
	floats.AddTo(st.H, st.T, st.C)
	s.phase = PhaseFinalised

	return nil
}

// Run is Initialise, Solve and CleanUp in sequence.
func (s *Solver) Run(guess []float64) (Result, error) {
	if err := s.Initialise(guess); err != nil {
		return Result{}, err
	}
	res, err := s.Solve()
	if err != nil {
		return res, err
	}
	if err := s.CleanUp(); err != nil {
		return res, err
	}

	return res, nil
}

func diverged(it int, stage string) error {
	return fmt.Errorf("%w: iteration %d: non-finite %s", ErrNumericalDivergence, it, stage)
}

func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
