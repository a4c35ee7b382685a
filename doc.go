// Package nlsolve solves a fixed pair of nonlinear equations in two unknowns
// with four classical iterative methods and records every step.
//
//	x² + xy − 10  = 0
//	y + 3xy² − 57 = 0
//
// 🚀 What is inside?
//
//	• Fixed-point iteration: Jacobi-style (simultaneous) and Seidel-style (sequential)
//	• Newton–Raphson with the analytic Jacobian
//	• Secant method with a forward-difference Jacobian
//	• Per-iteration logs, CSV export, console summaries, convergence charts
//
// ✨ Policies worth knowing:
//
//   - Fixed-point maps stall instead of failing: a negative radicand or a
//     near-zero denominator holds the variable unchanged.
//   - Derivative methods fail loudly: a singular 2×2 Jacobian aborts the run
//     with linalg.ErrSingular. Nothing is retried.
//   - Every run is independent and reentrant; no package-level state.
//
// Packages:
//
//	system/  — the equation pair, fixed-point maps, Jacobian builders
//	linalg/  — 2×2 Cramer's-rule solver and Euclidean step norm
//	iterate/ — the four drivers, options, Result/Record types
//	report/  — CSV export, console summary, convergence plot
//	runner/  — session config (TOML) and the all-methods run
//	cmd/nlsolve — command-line entry point
//
// Quick start:
//
//	res, err := iterate.NewtonRaphson(1.5, 3.5)
//	// res.X ≈ 2, res.Y ≈ 3 after 4 iterations
//
//	go run github.com/katalvlaran/nlsolve/cmd/nlsolve
package nlsolve
