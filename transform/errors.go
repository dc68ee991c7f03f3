// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrPlanConstruction is returned by New when the grid size cannot be
	// planned (nil grid, zero points, or more than MaxPoints).
	ErrPlanConstruction = errors.New("transform: plan construction failed")

	// ErrPlanMismatch signals that a plan was used with a grid or a sequence
	// of a different size than the one it was built for.
	ErrPlanMismatch = errors.New("transform: plan does not match grid size")
)
