// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrNotFound is returned by GetRun for an unknown id.
	ErrNotFound = errors.New("store: run not found")

	// ErrEmptyPath is returned by Open when no database path is given.
	ErrEmptyPath = errors.New("store: database path is required")

	// ErrProfileLength is returned when profile columns differ in length.
	ErrProfileLength = errors.New("store: profile columns differ in length")
)
