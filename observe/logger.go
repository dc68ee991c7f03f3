// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ozsolver/solver"
)

// Logger returns an observer that writes one debug event every `every`
// iterations (and always for the first one). every <= 0 logs each iteration.
func Logger(logger zerolog.Logger, every int) solver.Observer {
	if every <= 0 {
		every = 1
	}

	return func(it solver.Iteration) {
		if it.Index != 1 && it.Index%every != 0 {
			return
		}
		logger.Debug().
			Int("iteration", it.Index).
			Float64("residual", it.Residual).
			Float64("c_min", it.Summary.Min).
			Float64("c_max", it.Summary.Max).
			Float64("c_sum", it.Summary.Sum).
			Float64("c_l2", it.Summary.L2).
			Msg("oz iteration")
	}
}
