// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrInvalidGrid is returned by New when the point count is not positive
	// or the radius is not a positive finite number.
	ErrInvalidGrid = errors.New("grid: invalid grid parameters")

	// ErrOutOfRange indicates an index outside [0, N).
	ErrOutOfRange = errors.New("grid: index out of range")
)
