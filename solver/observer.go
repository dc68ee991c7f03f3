// SPDX-License-Identifier: MIT

package solver

import "gonum.org/v1/gonum/floats"

// Observer is invoked once per iteration, after mixing and before the
// convergence decision. It must not retain or modify the solver's slices.
type Observer func(Iteration)

// Iteration describes one completed application of the OZ operator.
type Iteration struct {
	// Index is 1-based: the first operator application is Index 1.
	Index    int
	Residual float64
	Summary  Summary
}

// Summary condenses the freshly mixed (r-weighted) C.
type Summary struct {
	Min float64
	Max float64
	Sum float64
	L2  float64
}

func summarize(c []float64) Summary {
	return Summary{
		Min: floats.Min(c),
		Max: floats.Max(c),
		Sum: floats.Sum(c),
		L2:  floats.Norm(c, 2),
	}
}
