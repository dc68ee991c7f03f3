// SPDX-License-Identifier: MIT

package state

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// State is the mutable record updated by the solver.
//
// Profiles:
//   - U — pair potential u(r)
//   - C — direct correlation function
//   - T — indirect correlation function
//   - H — total correlation function, valid only after clean-up
type State struct {
	kT          float64
	temperature float64
	density     float64
	beta        float64
	n           int

	U []float64
	C []float64
	T []float64
	H []float64
}

// KT returns the reference thermal energy unit.
func (s *State) KT() float64 { return s.kT }

// Temperature returns T.
func (s *State) Temperature() float64 { return s.temperature }

// Density returns the number density p.
func (s *State) Density() float64 { return s.density }

// Beta returns the inverse thermal energy 1/(kT·T).
func (s *State) Beta() float64 { return s.beta }

// N returns the profile length.
func (s *State) N() int { return s.n }

// Validate checks every profile has length N.
func (s *State) Validate() error {
	profiles := [...]struct {
		name string
		p    []float64
	}{{"u", s.U}, {"c", s.C}, {"t", s.T}, {"h", s.H}}
	for _, pr := range profiles {
		if len(pr.p) != s.n {
			return fmt.Errorf("%w: %s has %d points, want %d", ErrDimensionMismatch, pr.name, len(pr.p), s.n)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	out := *s
	out.U = append([]float64(nil), s.U...)
	out.C = append([]float64(nil), s.C...)
	out.T = append([]float64(nil), s.T...)
	out.H = append([]float64(nil), s.H...)

	return &out
}

// RDF returns the radial distribution function g(r) = 1 + h(r).
func (s *State) RDF() []float64 {
	g := make([]float64, len(s.H))
	copy(g, s.H)
	floats.AddConst(1, g)

	return g
}
