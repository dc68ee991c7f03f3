// SPDX-License-Identifier: MIT

package observe

import "github.com/katalvlaran/ozsolver/solver"

// History records every iteration it observes. Not safe for concurrent use;
// a solver calls its observers sequentially.
type History struct {
	Iterations []solver.Iteration
}

// Observer returns the recording hook.
func (h *History) Observer() solver.Observer {
	return func(it solver.Iteration) {
		h.Iterations = append(h.Iterations, it)
	}
}

// Residuals returns the residual sequence.
func (h *History) Residuals() []float64 {
	out := make([]float64, len(h.Iterations))
	for i, it := range h.Iterations {
		out[i] = it.Residual
	}

	return out
}

// Last returns the most recent iteration and false when empty.
func (h *History) Last() (solver.Iteration, bool) {
	if len(h.Iterations) == 0 {
		return solver.Iteration{}, false
	}

	return h.Iterations[len(h.Iterations)-1], true
}
