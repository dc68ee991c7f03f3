// SPDX-License-Identifier: MIT

// Package grid defines the radial discretisation shared by every stage of an
// Ornstein–Zernike solve: N real-space points and N reciprocal-space points,
// both offset by half a cell.
//
// 🚀 What is the grid?
//
//	For a box of radius R split into N cells:
//	  dr    = R / N
//	  dk    = π / (N·dr)
//	  r[i]  = (i + ½)·dr
//	  k[i]  = (i + ½)·dk
//
//	The half-cell offsets keep every sample away from r = 0 and k = 0, which
//	is what the DST-IV based Fourier–Bessel transform in package transform
//	requires.
//
// ✨ Guarantees:
//   - Immutable after New; safe to share between goroutines.
//   - R() and K() hand out copies, never the backing arrays.
//
// ⚙️ Usage:
//
//	g, err := grid.New(1024, 10.24)
//	if err != nil {
//	  // errors.Is(err, grid.ErrInvalidGrid)
//	}
//	r := g.R() // radii, len 1024
package grid
