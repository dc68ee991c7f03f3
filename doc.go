// SPDX-License-Identifier: MIT

// Package ozsolver solves the Ornstein–Zernike integral equation for
// homogeneous, isotropic, single-component liquids.
//
// 🚀 What does it compute?
//
//	Given a pair potential u(r) and a closure relation, the solver finds the
//	self-consistent pair correlation functions of a liquid:
//		• c(r) — direct correlation function
//		• t(r) — indirect correlation function, t = h − c
//		• h(r) — total correlation function, h = t + c
//		• g(r) — radial distribution function, g = 1 + h
//
// ✨ How?
//
//   - Damped Picard iteration of the OZ operator, c ← c + α(c_new − c)
//   - O(N log N) Fourier–Bessel transforms via a discrete sine transform
//   - Pluggable strategies: Potential, Closure, integral Equation
//   - Required-field builders that name what is missing
//   - Per-iteration observers: zerolog, Prometheus, in-memory history
//
// Layout:
//
//	grid/       — immutable real and reciprocal radial grid
//	transform/  — forward/backward Fourier–Bessel transform (DST-IV)
//	potential/  — Potential strategy, Lennard-Jones
//	closure/    — Closure strategy, hypernetted chain (HNC)
//	integral/   — Equation strategy, Ornstein–Zernike
//	state/      — thermodynamic state and correlation profiles
//	solver/     — builder, options, phase machine and iteration
//	observe/    — logging, metrics and history observers
//	store/      — SQLite run history and CSV export
//	config/     — YAML run descriptions
//	cmd/ozsolve — command-line front end
//
// Quick start:
//
//	g, _ := grid.New(1024, 10.24)
//	st, _ := state.NewBuilder().BoltzmannConstant(1).Temperature(85).
//		Density(0.0210175).Points(1024).Build()
//	s, _ := solver.NewBuilder().Grid(g).
//		Potential(potential.LennardJones{Sigma: 3.4, Epsilon: 120}).
//		Closure(closure.HNC{}).IntegralEquation(integral.OZ{}).
//		State(st).Build()
//	res, err := s.Run(make([]float64, 1024))
//	gr := s.State().RDF()
//
// See examples/argon_hnc for a complete program.
package ozsolver
