// SPDX-License-Identifier: MIT

// Package state holds the numerical record of one Ornstein–Zernike problem:
// the thermodynamic parameters (kT, T, p and the derived β = 1/(kT·T)) and
// the profiles u, c, t and h sampled on the grid.
//
// A State is built through Builder, which requires every parameter; a missing
// one is reported as ErrIncompleteConfiguration naming the field. β cannot be
// set directly.
//
// While a solver iterates, C and T carry the r-weighted values of the
// Fourier–Bessel convention and H is stale. Only after the solver's clean-up
// do C, T and H hold c(r), t(r) and h(r) = t(r) + c(r).
package state
