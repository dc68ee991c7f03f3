// SPDX-License-Identifier: MIT

package solver

// Phase is the lifecycle position of a Solver.
type Phase int

const (
	// PhaseBuilt: all collaborators assembled, profiles not seeded.
	PhaseBuilt Phase = iota
	// PhaseInitialised: u and the starting c are in place.
	PhaseInitialised
	// PhaseIterating: Solve is running.
	PhaseIterating
	// PhaseConverged: the residual dropped below tolerance.
	PhaseConverged
	// PhaseMaxIterations: the iteration cap was reached first.
	PhaseMaxIterations
	// PhaseDiverged: a non-finite value was detected; terminal, no clean-up.
	PhaseDiverged
	// PhaseFailed: a strategy or transform returned an error; terminal.
	PhaseFailed
	// PhaseFinalised: CleanUp has produced c, t and h.
	PhaseFinalised
)

var phaseNames = [...]string{
	PhaseBuilt:         "built",
	PhaseInitialised:   "initialised",
	PhaseIterating:     "iterating",
	PhaseConverged:     "converged",
	PhaseMaxIterations: "max-iterations",
	PhaseDiverged:      "diverged",
	PhaseFailed:        "failed",
	PhaseFinalised:     "finalised",
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}

	return phaseNames[p]
}

// Status is the terminal outcome of Solve.
type Status int

const (
	// Converged means the residual fell below the tolerance.
	Converged Status = iota + 1
	// MaxIterationsReached means the cap was hit; the last iterate is kept.
	MaxIterationsReached
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations-reached"
	default:
		return "unknown"
	}
}

// Result summarises a finished Solve.
type Result struct {
	Status     Status
	Iterations int
	Residual   float64
}

// Converged reports whether the tolerance was met.
func (r Result) Converged() bool { return r.Status == Converged }
