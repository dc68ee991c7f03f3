// SPDX-License-Identifier: MIT

package state

import "errors"

var (
	// ErrIncompleteConfiguration is returned by Builder.Build when a required
	// parameter was never set. The wrapped message names the field.
	ErrIncompleteConfiguration = errors.New("state: incomplete configuration")

	// ErrInvalidParameter is returned for non-positive or non-finite
	// parameters (negative for density).
	ErrInvalidParameter = errors.New("state: invalid parameter")

	// ErrDimensionMismatch is returned by Validate when a profile length
	// differs from N.
	ErrDimensionMismatch = errors.New("state: profile length does not match point count")
)
