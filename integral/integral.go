// SPDX-License-Identifier: MIT

package integral

import "fmt"

// Equation maps (ĉ(k), k, density) to t̂(k).
type Equation interface {
	Calculate(ck, k []float64, density float64) ([]float64, error)
	Name() string
}

// OZ is the standard Ornstein–Zernike relation.
type OZ struct{}

// Name implements Equation.
func (OZ) Name() string { return "oz" }

// Calculate implements Equation.
func (OZ) Calculate(ck, k []float64, density float64) ([]float64, error) {
	if err := checkLengths(ck, k); err != nil {
		return nil, err
	}

	tk := make([]float64, len(ck))
	if density == 0 {
		return tk, nil
	}
	for i, c := range ck {
		pc := density * c
		tk[i] = pc * c / (1 - pc)
	}

	return tk, nil
}

// KWeighted marks an equation that takes k·ĉ(k) and returns k·t̂(k), so the
// caller must not strip or restore the k weight around it.
type KWeighted interface {
	Equation
	KWeighted()
}

// LegacyOZ is the OZ relation written on k-weighted transforms: given
// K = k·ĉ(k) it returns p·K²/(k − p·K), which equals k·p·ĉ²/(1 − p·ĉ).
// It reproduces runs made with that form and agrees with OZ to rounding.
type LegacyOZ struct{}

// KWeighted implements KWeighted.
func (LegacyOZ) KWeighted() {}

// Name implements Equation.
func (LegacyOZ) Name() string { return "legacy-oz" }

// Calculate implements Equation.
func (LegacyOZ) Calculate(ck, k []float64, density float64) ([]float64, error) {
	if err := checkLengths(ck, k); err != nil {
		return nil, err
	}

	tk := make([]float64, len(ck))
	if density == 0 {
		return tk, nil
	}
	for i, kc := range ck {
		pc := density * kc
		tk[i] = pc * kc / (k[i] - pc)
	}

	return tk, nil
}

func checkLengths(ck, k []float64) error {
	if len(ck) == 0 || len(k) == 0 {
		return ErrEmptyInput
	}
	if len(ck) != len(k) {
		return fmt.Errorf("%w: c(k)=%d k=%d", ErrLengthMismatch, len(ck), len(k))
	}

	return nil
}
