// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ozsolver/grid"
)

// MaxPoints bounds the grid size a plan accepts. The FFT runs on 8N samples.
const MaxPoints = 1 << 22

// embedFactor is the length ratio between the FFT buffer and the DST input.
const embedFactor = 8

// Transform is a DST-IV plan with the Fourier–Bessel scale factors of one grid.
type Transform struct {
	n             int
	radius        float64
	forwardScale  float64
	backwardScale float64
}

// New builds a plan for g.
//
// Errors:
//   - ErrPlanConstruction if g is nil, or g.N() is 0 or larger than MaxPoints.
func New(g *grid.Grid) (*Transform, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrPlanConstruction)
	}
	n := g.N()
	if n <= 0 || n > MaxPoints {
		return nil, fmt.Errorf("%w: unsupported size %d", ErrPlanConstruction, n)
	}

	m := embedFactor * n
	if m&(m-1) == 0 {
		// power-of-two lengths go straight to radix-2; compute the twiddles once
		fft.EnsureRadix2Factors(m)
	}

	return &Transform{
		n:             n,
		radius:        g.Radius(),
		forwardScale:  2 * math.Pi * g.Dr(),
		backwardScale: g.Dk() / ((2 * math.Pi) * (2 * math.Pi)),
	}, nil
}

// N returns the sequence length the plan was built for.
func (t *Transform) N() int { return t.n }

// ForwardScale returns 2π·dr.
func (t *Transform) ForwardScale() float64 { return t.forwardScale }

// BackwardScale returns dk/(2π)².
func (t *Transform) BackwardScale() float64 { return t.backwardScale }

// Bound reports ErrPlanMismatch unless g has the same discretisation the
// plan was built for.
func (t *Transform) Bound(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrPlanMismatch)
	}
	if g.N() != t.n || g.Radius() != t.radius {
		return fmt.Errorf("%w: plan N=%d R=%g, grid N=%d R=%g",
			ErrPlanMismatch, t.n, t.radius, g.N(), g.Radius())
	}

	return nil
}

// Forward maps a real-space sequence to reciprocal space: 2π·dr·DST(fr).
func (t *Transform) Forward(fr []float64) ([]float64, error) {
	out, err := t.DST(fr)
	if err != nil {
		return nil, err
	}
	floats.Scale(t.forwardScale, out)

	return out, nil
}

// Backward maps a reciprocal-space sequence to real space: dk/(2π)²·DST(fk).
func (t *Transform) Backward(fk []float64) ([]float64, error) {
	out, err := t.DST(fk)
	if err != nil {
		return nil, err
	}
	floats.Scale(t.backwardScale, out)

	return out, nil
}

// DST returns the un-normalised DST-IV of x:
//
//	Y[k] = 2·Σₙ x[n]·sin(π(2n+1)(2k+1)/(4N))
//
// x is embedded as an odd sequence v of length M = 8N with v[2n+1] = x[n] and
// v[M-2n-1] = -x[n]. Its DFT at odd bins is V[2k+1] = -i·Y[k].
func (t *Transform) DST(x []float64) ([]float64, error) {
	if len(x) != t.n {
		return nil, fmt.Errorf("%w: sequence length %d, plan N=%d", ErrPlanMismatch, len(x), t.n)
	}

	m := embedFactor * t.n
	v := make([]float64, m)
	for i, xi := range x {
		v[2*i+1] = xi
		v[m-2*i-1] = -xi
	}

	spec := fft.FFTReal(v)
	out := make([]float64, t.n)
	for k := range out {
		out[k] = -imag(spec[2*k+1])
	}

	return out, nil
}
