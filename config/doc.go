// SPDX-License-Identifier: MIT

// Package config describes a solver run as a YAML document.
//
// A Config names every strategy by string and carries the numeric inputs of
// the grid, the thermodynamic state and the iteration. Load reads a file over
// Default, Validate checks it with struct tags, and Assemble turns it into a
// ready *solver.Solver.
//
//	grid:
//	  points: 1024
//	  radius: 10.24
//	potential:
//	  type: lennard-jones
//	  sigma: 3.4
//	  epsilon: 120
//	closure: hnc
//	integral_equation: oz
//	state:
//	  boltzmann_constant: 1
//	  temperature: 85
//	  density: 0.0210175
//	solver:
//	  tolerance: 1e-5
//	  max_iterations: 10000
//	  damping: 0.2
//	  metric: sum
//	output:
//	  csv: argon.csv
//	  database: runs.db
package config
