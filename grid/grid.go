// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Grid is an immutable pair of half-offset radial grids in real and
// reciprocal space. Construct it with New.
type Grid struct {
	n      int
	radius float64
	dr     float64
	dk     float64
	ri     []float64
	ki     []float64
}

// New builds a Grid of n points spanning radius.
//
// Errors:
//   - ErrInvalidGrid if n <= 0, or radius is <= 0, NaN or ±Inf.
//
// Complexity: O(n) time and space.
func New(n int, radius float64) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: point count %d must be > 0", ErrInvalidGrid, n)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: radius %g must be positive and finite", ErrInvalidGrid, radius)
	}

	dr := radius / float64(n)
	dk := math.Pi / (float64(n) * dr)

	ri := make([]float64, n)
	ki := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i) + 0.5
		ri[i] = x * dr
		ki[i] = x * dk
	}

	return &Grid{n: n, radius: radius, dr: dr, dk: dk, ri: ri, ki: ki}, nil
}

// N returns the number of points.
func (g *Grid) N() int { return g.n }

// Radius returns the real-space extent R.
func (g *Grid) Radius() float64 { return g.radius }

// Dr returns the real-space spacing R/N.
func (g *Grid) Dr() float64 { return g.dr }

// Dk returns the reciprocal-space spacing π/(N·dr).
func (g *Grid) Dk() float64 { return g.dk }

// R returns a copy of the real-space sample points.
func (g *Grid) R() []float64 {
	out := make([]float64, g.n)
	copy(out, g.ri)

	return out
}

// K returns a copy of the reciprocal-space sample points.
func (g *Grid) K() []float64 {
	out := make([]float64, g.n)
	copy(out, g.ki)

	return out
}

// RAt returns r[i].
func (g *Grid) RAt(i int) (float64, error) {
	if i < 0 || i >= g.n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, g.n)
	}

	return g.ri[i], nil
}

// KAt returns k[i].
func (g *Grid) KAt(i int) (float64, error) {
	if i < 0 || i >= g.n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, g.n)
	}

	return g.ki[i], nil
}

// Equal reports whether g and other describe the same discretisation.
// A nil grid is only equal to another nil grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.n == other.n && g.radius == other.radius
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(N=%d, R=%g, dr=%g, dk=%g)", g.n, g.radius, g.dr, g.dk)
}
