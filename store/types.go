// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/state"
)

// Params are the inputs that define a run.
type Params struct {
	Points           int     `db:"points"`
	Radius           float64 `db:"radius"`
	Potential        string  `db:"potential"`
	Sigma            float64 `db:"sigma"`
	Epsilon          float64 `db:"epsilon"`
	Closure          string  `db:"closure"`
	IntegralEquation string  `db:"integral_equation"`
	KT               float64 `db:"kt"`
	Temperature      float64 `db:"temperature"`
	Density          float64 `db:"density"`
	Tolerance        float64 `db:"tolerance"`
	MaxIterations    int     `db:"max_iterations"`
	Damping          float64 `db:"damping"`
	Metric           string  `db:"metric"`
}

// Run is one persisted solve.
type Run struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	Status     string    `db:"status"`
	Iterations int       `db:"iterations"`
	Residual   float64   `db:"residual"`
	Params

	Profile Profile `db:"-"`
}

// Profile holds the finalised correlation functions column by column.
type Profile struct {
	R []float64
	C []float64
	T []float64
	H []float64
	G []float64
}

// Len returns the number of rows after checking the columns agree.
func (p Profile) Len() (int, error) {
	n := len(p.R)
	cols := [...]struct {
		name string
		col  []float64
	}{{"c", p.C}, {"t", p.T}, {"h", p.H}, {"g", p.G}}
	for _, c := range cols {
		if len(c.col) != n {
			return 0, fmt.Errorf("%w: %s has %d rows, r has %d", ErrProfileLength, c.name, len(c.col), n)
		}
	}

	return n, nil
}

// NewProfile copies the finalised profiles of st sampled at r.
func NewProfile(r []float64, st *state.State) Profile {
	return Profile{
		R: append([]float64(nil), r...),
		C: append([]float64(nil), st.C...),
		T: append([]float64(nil), st.T...),
		H: append([]float64(nil), st.H...),
		G: st.RDF(),
	}
}

// NewRun stamps a fresh id and creation time on a finished solve.
func NewRun(p Params, res solver.Result, r []float64, st *state.State) Run {
	return Run{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Params:     p,
		Profile:    NewProfile(r, st),
	}
}
