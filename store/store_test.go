// SPDX-License-Identifier: MIT

package store_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/state"
	"github.com/katalvlaran/ozsolver/store"
)

func sampleRun(t *testing.T) store.Run {
	t.Helper()
	st, err := state.NewBuilder().BoltzmannConstant(1).Temperature(85).Density(0.02).Points(3).Build()
	require.NoError(t, err)
	st.C = []float64{-2, -0.5, 0.01}
	st.T = []float64{1, 0.25, 0}
	st.H = []float64{-1, -0.25, 0.01}

	params := store.Params{
		Points: 3, Radius: 3, Potential: "lennard-jones", Sigma: 3.4, Epsilon: 120,
		Closure: "hnc", IntegralEquation: "oz", KT: 1, Temperature: 85, Density: 0.02,
		Tolerance: 1e-5, MaxIterations: 100, Damping: 0.2, Metric: "sum",
	}
	res := solver.Result{Status: solver.Converged, Iterations: 42, Residual: 3e-6}

	return store.NewRun(params, res, []float64{0.5, 1.5, 2.5}, st)
}

func openDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewRun(t *testing.T) {
	run := sampleRun(t)
	assert.Len(t, run.ID, 36)
	assert.Equal(t, "converged", run.Status)
	assert.Equal(t, []float64{0, 0.75, 1.01}, run.Profile.G)
	n, err := run.Profile.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := store.Open("")
	assert.ErrorIs(t, err, store.ErrEmptyPath)
}

func TestSaveGetRun(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	run := sampleRun(t)
	require.NoError(t, db.SaveRun(ctx, run))

	got, err := db.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.Status, got.Status)
	assert.Equal(t, run.Iterations, got.Iterations)
	assert.Equal(t, run.Residual, got.Residual)
	assert.Equal(t, run.Params, got.Params)
	assert.WithinDuration(t, run.CreatedAt, got.CreatedAt, time.Second)
	assert.Equal(t, run.Profile, got.Profile)

	_, err = db.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveRun_BadProfile(t *testing.T) {
	db := openDB(t)
	run := sampleRun(t)
	run.Profile.G = run.Profile.G[:1]
	assert.ErrorIs(t, db.SaveRun(context.Background(), run), store.ErrProfileLength)

	runs, err := db.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestListRuns(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	first := sampleRun(t)
	first.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := sampleRun(t)
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	require.NoError(t, db.SaveRun(ctx, first))
	require.NoError(t, db.SaveRun(ctx, second))

	runs, err := db.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID, "newest first")
	assert.Equal(t, first.ID, runs[1].ID)
	assert.Nil(t, runs[0].Profile.R, "list omits profiles")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	run := sampleRun(t)
	require.NoError(t, store.WriteCSV(&buf, run.Profile))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"r", "c", "t", "h", "g"}, records[0])
	assert.Equal(t, []string{"0.5", "-2", "1", "-1", "0"}, records[1])
	assert.Equal(t, []string{"2.5", "0.01", "0", "0.01", "1.01"}, records[3])
}

func TestProfileLen_ReportsFirstBadColumn(t *testing.T) {
	p := store.Profile{R: []float64{1, 2}, C: []float64{1, 2}, T: []float64{1}, G: []float64{1}}
	for i := 0; i < 10; i++ {
		_, err := p.Len()
		assert.ErrorIs(t, err, store.ErrProfileLength)
		assert.ErrorContains(t, err, "t has 1 rows")
	}
}

func TestWriteCSV_BadProfile(t *testing.T) {
	err := store.WriteCSV(&bytes.Buffer{}, store.Profile{R: []float64{1}})
	assert.ErrorIs(t, err, store.ErrProfileLength)
}
