// SPDX-License-Identifier: MIT

// Package observe provides ready-made solver.Observer implementations so the
// iteration loop itself stays free of logging and metrics code.
//
//   - Logger  — zerolog debug events every n-th iteration
//   - Metrics — Prometheus iteration counter, residual gauge, per-status solve counter
//   - History — in-memory record of every iteration
//
// ⚙️ Usage:
//
//	m, _ := observe.NewMetrics(prometheus.DefaultRegisterer, "ozsolver")
//	hist := &observe.History{}
//	s, _ := builder.Build(
//	  solver.WithObserver(observe.Logger(log.Logger, 100)),
//	  solver.WithObserver(m.Observer()),
//	  solver.WithObserver(hist.Observer()),
//	)
//	res, err := s.Run(guess)
//	m.RecordResult(res, err)
package observe
