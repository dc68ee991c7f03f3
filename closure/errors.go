// SPDX-License-Identifier: MIT

package closure

import "errors"

var (
	// ErrEmptyInput is returned when Calculate receives empty sequences.
	ErrEmptyInput = errors.New("closure: input sequences must be non-empty")

	// ErrLengthMismatch is returned when r, u and t differ in length.
	ErrLengthMismatch = errors.New("closure: input sequences differ in length")
)
