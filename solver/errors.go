// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrIncompleteConfiguration is returned by Builder.Build when a required
	// collaborator is missing. The wrapped message names it.
	ErrIncompleteConfiguration = errors.New("solver: incomplete configuration")

	// ErrDimensionMismatch signals a sequence or state whose length differs
	// from the grid's point count.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrInvalidOption is returned by Build for out-of-range option values.
	ErrInvalidOption = errors.New("solver: invalid option")

	// ErrInvalidPhase is returned when an operation is called out of order,
	// e.g. Solve before Initialise or CleanUp before a terminal phase.
	ErrInvalidPhase = errors.New("solver: operation not valid in current phase")

	// ErrNumericalDivergence is returned by Solve when NaN or ±Inf shows up
	// in t̂(k), t(r), the closure output, the mixed c or the residual.
	ErrNumericalDivergence = errors.New("solver: numerical divergence")
)
