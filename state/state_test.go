// SPDX-License-Identifier: MIT

package state_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ozsolver/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argon() *state.Builder {
	return state.NewBuilder().
		BoltzmannConstant(1).
		Temperature(85).
		Density(0.0210175).
		Points(8)
}

func TestBuild_Complete(t *testing.T) {
	s, err := argon().Build()
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.KT())
	assert.Equal(t, 85.0, s.Temperature())
	assert.Equal(t, 0.0210175, s.Density())
	assert.InDelta(t, 1.0/85.0, s.Beta(), 1e-15)
	assert.Equal(t, 8, s.N())
	for _, p := range [][]float64{s.U, s.C, s.T, s.H} {
		assert.Equal(t, make([]float64, 8), p)
	}
	assert.NoError(t, s.Validate())
}

// TestBuild_MissingField names each absent parameter.
func TestBuild_MissingField(t *testing.T) {
	cases := []struct {
		field string
		b     *state.Builder
	}{
		{state.FieldBoltzmannConstant, state.NewBuilder().Temperature(1).Density(1).Points(1)},
		{state.FieldTemperature, state.NewBuilder().BoltzmannConstant(1).Density(1).Points(1)},
		{state.FieldDensity, state.NewBuilder().BoltzmannConstant(1).Temperature(1).Points(1)},
		{state.FieldPoints, state.NewBuilder().BoltzmannConstant(1).Temperature(1).Density(1)},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			s, err := tc.b.Build()
			assert.Nil(t, s)
			assert.ErrorIs(t, err, state.ErrIncompleteConfiguration)
			assert.ErrorContains(t, err, tc.field)
		})
	}

	_, err := state.NewBuilder().Build()
	assert.ErrorContains(t, err, state.FieldBoltzmannConstant, "first missing field is reported")
}

func TestBuild_InvalidParameter(t *testing.T) {
	cases := map[string]*state.Builder{
		"zero kT":          argon().BoltzmannConstant(0),
		"negative T":       argon().Temperature(-1),
		"NaN T":            argon().Temperature(math.NaN()),
		"negative density": argon().Density(-0.1),
		"Inf density":      argon().Density(math.Inf(1)),
		"zero points":      argon().Points(0),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := b.Build()
			assert.ErrorIs(t, err, state.ErrInvalidParameter)
		})
	}

	s, err := argon().Density(0).Build()
	require.NoError(t, err, "zero density is the ideal-gas limit")
	assert.Equal(t, 0.0, s.Density())
}

func TestState_CloneIsDeep(t *testing.T) {
	s, err := argon().Build()
	require.NoError(t, err)
	s.C[0] = 1

	c := s.Clone()
	c.C[0] = 2
	c.H[1] = 3

	assert.Equal(t, 1.0, s.C[0])
	assert.Equal(t, 0.0, s.H[1])
	assert.Equal(t, s.Beta(), c.Beta())
}

func TestState_RDF(t *testing.T) {
	s, err := argon().Points(3).Build()
	require.NoError(t, err)
	s.H = []float64{-1, 0, 0.25}

	assert.Equal(t, []float64{0, 1, 1.25}, s.RDF())
	assert.Equal(t, -1.0, s.H[0], "RDF must not alias H")
}

func TestState_Validate(t *testing.T) {
	s, err := argon().Build()
	require.NoError(t, err)
	s.T = s.T[:3]

	assert.ErrorIs(t, s.Validate(), state.ErrDimensionMismatch)
	assert.ErrorContains(t, s.Validate(), "t has 3 points")

	// the first bad profile in u, c, t, h order is reported every time
	s.C = s.C[:2]
	s.H = nil
	for i := 0; i < 10; i++ {
		assert.ErrorContains(t, s.Validate(), "c has 2 points")
	}
}
