// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownStrategy is returned by Assemble for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("config: unknown strategy")
)
