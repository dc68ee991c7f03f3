// SPDX-License-Identifier: MIT

// Package solver drives an Ornstein–Zernike solve to self-consistency with a
// damped (Picard) fixed-point iteration.
//
// 🚀 One iteration (the OZ operator applied to the current C = r·c):
//
//  1. ĉ(k)   = Forward(C) / k
//  2. t̂(k)   = Equation(ĉ, k, p)
//  3. T      = Backward(k·t̂)                 (T = r·t)
//  4. C_cand = r · Closure(r, u, T/r, β)
//  5. C_new  = C + α·(C_cand − C)
//  6. residual = Metric(C_new, C); stop when residual < tol
//
// ✨ Lifecycle:
//
//	Builder.Build → PhaseBuilt
//	Initialise    → PhaseInitialised
//	Solve         → PhaseIterating → PhaseConverged | PhaseMaxIterations | PhaseDiverged | PhaseFailed
//	CleanUp       → PhaseFinalised (c = C/r, t = T/r, h = t + c)
//
// Reaching the iteration cap is a normal outcome reported through
// Result.Status; NaN/Inf anywhere in the loop is ErrNumericalDivergence.
//
// ⚙️ Usage:
//
//	s, err := solver.NewBuilder().
//	  Grid(g).
//	  Potential(potential.LennardJones{Sigma: 3.4, Epsilon: 120}).
//	  Closure(closure.HNC{}).
//	  IntegralEquation(integral.OZ{}).
//	  State(st).
//	  Build(solver.WithTolerance(1e-5), solver.WithDamping(0.2))
//	res, err := s.Run(make([]float64, g.N()))
//	g := s.State().RDF()
//
// The solver is single-threaded; iterations are strictly sequential. A Solver
// owns its State exclusively until it is finalised.
package solver
