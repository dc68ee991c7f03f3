// SPDX-License-Identifier: MIT

package state

import (
	"fmt"
	"math"
)

// Field names reported by ErrIncompleteConfiguration.
const (
	FieldBoltzmannConstant = "boltzmann_constant"
	FieldTemperature       = "temperature"
	FieldDensity           = "density"
	FieldPoints            = "points"
)

// Builder accumulates the required parameters of a State.
// The zero value is ready to use; setters return the builder for chaining.
type Builder struct {
	kT      *float64
	temp    *float64
	density *float64
	points  *int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// BoltzmannConstant sets the reference thermal energy unit kT.
func (b *Builder) BoltzmannConstant(kT float64) *Builder {
	b.kT = &kT
	return b
}

// Temperature sets T.
func (b *Builder) Temperature(t float64) *Builder {
	b.temp = &t
	return b
}

// Density sets the number density p.
func (b *Builder) Density(p float64) *Builder {
	b.density = &p
	return b
}

// Points sets the profile length N; it must match the grid.
func (b *Builder) Points(n int) *Builder {
	b.points = &n
	return b
}

// Build validates the accumulated parameters and allocates zeroed profiles.
//
// Errors:
//   - ErrIncompleteConfiguration naming the first missing field
//     (kT, T, p, N order).
//   - ErrInvalidParameter if kT, T or N are not positive, p is negative, or
//     any value is NaN/Inf.
func (b *Builder) Build() (*State, error) {
	switch {
	case b.kT == nil:
		return nil, missing(FieldBoltzmannConstant)
	case b.temp == nil:
		return nil, missing(FieldTemperature)
	case b.density == nil:
		return nil, missing(FieldDensity)
	case b.points == nil:
		return nil, missing(FieldPoints)
	}

	kT, temp, p, n := *b.kT, *b.temp, *b.density, *b.points
	if !positiveFinite(kT) {
		return nil, fmt.Errorf("%w: %s=%g", ErrInvalidParameter, FieldBoltzmannConstant, kT)
	}
	if !positiveFinite(temp) {
		return nil, fmt.Errorf("%w: %s=%g", ErrInvalidParameter, FieldTemperature, temp)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return nil, fmt.Errorf("%w: %s=%g", ErrInvalidParameter, FieldDensity, p)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %s=%d", ErrInvalidParameter, FieldPoints, n)
	}

	return &State{
		kT:          kT,
		temperature: temp,
		density:     p,
		beta:        1 / (kT * temp),
		n:           n,
		U:           make([]float64, n),
		C:           make([]float64, n),
		T:           make([]float64, n),
		H:           make([]float64, n),
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrIncompleteConfiguration, field)
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
