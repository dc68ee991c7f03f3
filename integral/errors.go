// SPDX-License-Identifier: MIT

package integral

import "errors"

var (
	// ErrEmptyInput is returned when Calculate receives empty sequences.
	ErrEmptyInput = errors.New("integral: input sequences must be non-empty")

	// ErrLengthMismatch is returned when c(k) and k differ in length.
	ErrLengthMismatch = errors.New("integral: input sequences differ in length")
)
