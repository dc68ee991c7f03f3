// SPDX-License-Identifier: MIT

// Package integral encodes the Ornstein–Zernike relation between the direct
// and indirect correlation functions in reciprocal space.
//
//	OZ (default):  t̂(k)   = p·ĉ(k)² / (1 − p·ĉ(k))
//	LegacyOZ:      k·t̂(k) = p·K(k)² / (k − p·K(k)),  K = k·ĉ(k)
//
// LegacyOZ is the same relation in the form an older code path used on
// k-weighted transforms. It implements KWeighted, so the solver feeds it the
// raw forward transform; results match OZ to rounding. Never the default.
//
// A denominator that changes sign stays finite and is not an error.
//
// A vanishing denominator produces ±Inf/NaN, which the solver reports as
// numerical divergence.
package integral
