// SPDX-License-Identifier: MIT

package potential

import "errors"

var (
	// ErrEmptyInput is returned when Calculate receives no radii.
	ErrEmptyInput = errors.New("potential: input sequence must be non-empty")

	// ErrInvalidParameter is returned by constructors on non-positive or
	// non-finite parameters.
	ErrInvalidParameter = errors.New("potential: invalid parameter")
)
