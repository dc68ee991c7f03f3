// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ozsolver/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestNew_InvalidParameters verifies ErrInvalidGrid for every bad input class.
func TestNew_InvalidParameters(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		radius float64
	}{
		{"zero points", 0, 1},
		{"negative points", -4, 1},
		{"zero radius", 8, 0},
		{"negative radius", 8, -1},
		{"NaN radius", 8, math.NaN()},
		{"Inf radius", 8, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.n, tc.radius)
			assert.ErrorIs(t, err, grid.ErrInvalidGrid)
			assert.Nil(t, g)
		})
	}
}

// TestNew_Spacing checks dr, dk and the half-cell offsets for several shapes.
func TestNew_Spacing(t *testing.T) {
	shapes := []struct {
		n      int
		radius float64
	}{
		{1, 1}, {7, 0.3}, {64, 6.4}, {1024, 10.24}, {4096, 50},
	}
	for _, s := range shapes {
		g, err := grid.New(s.n, s.radius)
		require.NoError(t, err)

		dr := s.radius / float64(s.n)
		dk := math.Pi / (float64(s.n) * dr)
		assert.InDelta(t, dr, g.Dr(), eps, "dr = R/N")
		assert.InDelta(t, dk, g.Dk(), eps, "dk = π/(N·dr)")
		assert.Equal(t, s.n, g.N())
		assert.Equal(t, s.radius, g.Radius())

		r, k := g.R(), g.K()
		require.Len(t, r, s.n)
		require.Len(t, k, s.n)
		assert.InDelta(t, 0.5*dr, r[0], eps, "r[0] = dr/2")
		assert.InDelta(t, (float64(s.n)-0.5)*dr, r[s.n-1], eps, "r[N-1] = (N-½)·dr")
		assert.InDelta(t, 0.5*dk, k[0], eps, "k[0] = dk/2")
		assert.InDelta(t, (float64(s.n)-0.5)*dk, k[s.n-1], eps, "k[N-1] = (N-½)·dk")

		for i := 1; i < s.n; i++ {
			assert.InDelta(t, dr, r[i]-r[i-1], 1e-9)
		}
	}
}

// TestGrid_CopiesAreDetached ensures callers cannot mutate the grid.
func TestGrid_CopiesAreDetached(t *testing.T) {
	g, err := grid.New(16, 1.6)
	require.NoError(t, err)

	r := g.R()
	r[0] = 42
	k := g.K()
	k[3] = -1

	r0, err := g.RAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, r0, eps)
	k3, err := g.KAt(3)
	require.NoError(t, err)
	assert.InDelta(t, 3.5*g.Dk(), k3, eps)
}

func TestGrid_IndexOutOfRange(t *testing.T) {
	g, err := grid.New(4, 1)
	require.NoError(t, err)

	_, err = g.RAt(4)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.KAt(-1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestGrid_Equal(t *testing.T) {
	a, _ := grid.New(32, 3.2)
	b, _ := grid.New(32, 3.2)
	c, _ := grid.New(64, 3.2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var nilGrid *grid.Grid
	assert.True(t, nilGrid.Equal(nil))
}
