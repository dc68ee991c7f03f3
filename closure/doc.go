// SPDX-License-Identifier: MIT

// Package closure defines the closure strategy that, together with the
// Ornstein–Zernike relation, determines the direct correlation function.
//
// The reference implementation is the Hypernetted-Chain closure
//
//	c(r) = exp(−β·u(r) + t(r)) − 1 − t(r)
//
// Closures work on physical (un-weighted) t(r) and return un-weighted c(r).
// Overflow of the exponential is not an error: +Inf/NaN come back to the
// caller, which is expected to treat them as divergence.
package closure
