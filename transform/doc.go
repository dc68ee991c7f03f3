// SPDX-License-Identifier: MIT

// Package transform implements the radial Fourier–Bessel transform pair used
// by Ornstein–Zernike theory on top of a discrete sine transform (DST-IV).
//
// 🚀 Convention
//
//	For an isotropic function f the 3D Fourier transform reduces to
//	  k·f̂(k) = 4π ∫ r·f(r)·sin(kr) dr
//	  r·f(r) = 1/(2π²) ∫ k·f̂(k)·sin(kr) dk
//
//	On a half-offset grid (see package grid) sin(k_j·r_n) is exactly the
//	DST-IV kernel, so with the un-normalised DST
//	  Y[k] = 2·Σₙ x[n]·sin(π(2n+1)(2k+1)/(4N))
//	the pair becomes
//	  Forward(x)  = 2π·dr      · DST(x)
//	  Backward(y) = dk/(2π)²   · DST(y)
//	and Backward(Forward(x)) == x up to rounding.
//
// ✨ Plan
//
//	A Transform is bound to the grid it was built for. It is read-only after
//	New and may be shared between goroutines; every call allocates its own
//	scratch buffers. Sequences whose length differs from the plan's N are
//	rejected with ErrPlanMismatch.
//
// Performance:
//
//   - Time:   O(N log N) per call (one complex FFT of length 8N)
//   - Memory: O(N) per call
package transform
