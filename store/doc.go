// SPDX-License-Identifier: MIT

// Package store persists finished solves in SQLite and exports correlation
// profiles as CSV.
//
// A Run records the problem parameters, the outcome and the full
// (r, c, t, h, g) profile. Runs are keyed by a UUID string.
//
// ⚙️ Usage:
//
//	db, err := store.Open("runs.db")
//	defer db.Close()
//	run := store.NewRun(params, res, s.Grid().R(), s.State())
//	err = db.SaveRun(ctx, run)
package store
