// SPDX-License-Identifier: MIT

// Package potential defines the pair-interaction strategy of an
// Ornstein–Zernike solve and its Lennard-Jones reference implementation.
//
//	u(r) = 4ε[(σ/r)¹² − (σ/r)⁶]
//
// Implementations are pure: no state besides their fixed parameters, safe to
// call repeatedly and from several goroutines.
package potential
