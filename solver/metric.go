// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric selects how the change between successive iterates is measured.
type Metric int

const (
	// SumDifference is |Σ c_new − Σ c_prev|. It is the classic criterion but
	// positive and negative pointwise changes can cancel.
	SumDifference Metric = iota
	// L2 is the Euclidean norm of c_new − c_prev.
	L2
	// MaxAbs is max |c_new − c_prev|.
	MaxAbs
)

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case SumDifference:
		return "sum"
	case L2:
		return "l2"
	case MaxAbs:
		return "max"
	default:
		return "unknown"
	}
}

// ParseMetric maps "sum", "l2" and "max" to a Metric.
func ParseMetric(name string) (Metric, bool) {
	switch name {
	case "sum", "":
		return SumDifference, true
	case "l2":
		return L2, true
	case "max":
		return MaxAbs, true
	default:
		return 0, false
	}
}

// Residual returns the distance between next and prev under m.
// The slices must have equal length.
func (m Metric) Residual(next, prev []float64) float64 {
	switch m {
	case L2:
		return floats.Distance(next, prev, 2)
	case MaxAbs:
		return floats.Distance(next, prev, math.Inf(1))
	default:
		return math.Abs(floats.Sum(next) - floats.Sum(prev))
	}
}

func (m Metric) valid() bool {
	return m >= SumDifference && m <= MaxAbs
}
