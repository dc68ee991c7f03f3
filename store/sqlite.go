// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection holding solved runs.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	// a single writer keeps SQLite free of lock contention
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		residual REAL NOT NULL,
		points INTEGER NOT NULL,
		radius REAL NOT NULL,
		potential TEXT NOT NULL,
		sigma REAL NOT NULL,
		epsilon REAL NOT NULL,
		closure TEXT NOT NULL,
		integral_equation TEXT NOT NULL,
		kt REAL NOT NULL,
		temperature REAL NOT NULL,
		density REAL NOT NULL,
		tolerance REAL NOT NULL,
		max_iterations INTEGER NOT NULL,
		damping REAL NOT NULL,
		metric TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profiles (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		idx INTEGER NOT NULL,
		r REAL NOT NULL,
		c REAL NOT NULL,
		t REAL NOT NULL,
		h REAL NOT NULL,
		g REAL NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)

	return err
}

// SaveRun inserts run and its profile in one transaction.
func (db *DB) SaveRun(ctx context.Context, run Run) error {
	n, err := run.Profile.Len()
	if err != nil {
		return err
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, `INSERT INTO runs
		(id, created_at, status, iterations, residual, points, radius, potential,
		 sigma, epsilon, closure, integral_equation, kt, temperature, density,
		 tolerance, max_iterations, damping, metric)
		VALUES (:id, :created_at, :status, :iterations, :residual, :points, :radius, :potential,
		 :sigma, :epsilon, :closure, :integral_equation, :kt, :temperature, :density,
		 :tolerance, :max_iterations, :damping, :metric)`, run); err != nil {
		return fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO profiles
		(run_id, idx, r, c, t, h, g) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare profile: %w", err)
	}
	defer stmt.Close()

	p := run.Profile
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, run.ID, i, p.R[i], p.C[i], p.T[i], p.H[i], p.G[i]); err != nil {
			return fmt.Errorf("store: insert profile row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetRun loads a run and its profile.
func (db *DB) GetRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := db.conn.GetContext(ctx, &run, `SELECT * FROM runs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get run: %w", err)
	}

	var rows []struct {
		R float64 `db:"r"`
		C float64 `db:"c"`
		T float64 `db:"t"`
		H float64 `db:"h"`
		G float64 `db:"g"`
	}
	if err := db.conn.SelectContext(ctx, &rows,
		`SELECT r, c, t, h, g FROM profiles WHERE run_id = ? ORDER BY idx`, id); err != nil {
		return nil, fmt.Errorf("store: get profile: %w", err)
	}

	p := Profile{
		R: make([]float64, len(rows)),
		C: make([]float64, len(rows)),
		T: make([]float64, len(rows)),
		H: make([]float64, len(rows)),
		G: make([]float64, len(rows)),
	}
	for i, row := range rows {
		p.R[i], p.C[i], p.T[i], p.H[i], p.G[i] = row.R, row.C, row.T, row.H, row.G
	}
	run.Profile = p

	return &run, nil
}

// ListRuns returns every run without profiles, newest first.
func (db *DB) ListRuns(ctx context.Context) ([]Run, error) {
	var runs []Run
	if err := db.conn.SelectContext(ctx, &runs, `SELECT * FROM runs ORDER BY created_at DESC, id`); err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	return runs, nil
}
