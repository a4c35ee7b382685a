// SPDX-License-Identifier: MIT

// Package iterate runs the four classical iteration schemes for the fixed
// nonlinear system in package system and records every step.
//
// 🚀 Methods:
//
//	Jacobi        — fixed-point, both updates from the same prior iterate
//	Seidel        — fixed-point, y update reuses the fresh x
//	NewtonRaphson — analytic Jacobian + 2×2 linear solve per step
//	Secant        — forward-difference Jacobian (step h) + 2×2 linear solve
//
// ✨ Shared contract:
//   - After each step the error norm is computed (successive-iterate
//     distance for the fixed-point schemes, correction length for the
//     derivative schemes), a Record is appended and the state advances.
//   - The run stops as soon as the error drops below eps; that iteration
//     is counted and is the last record. Otherwise it stops at MaxIter.
//   - len(Result.Log) == Result.Iterations ≤ Result.MaxIter.
//
// Error policy:
//   - Jacobi and Seidel cannot fail: their maps hold a variable instead.
//   - NewtonRaphson and Secant abort on linalg.ErrSingular, wrapped with the
//     method name and iteration index. Nothing is retried.
//
// ⚙️ Usage:
//
//	res, err := iterate.NewtonRaphson(1.5, 3.5, iterate.WithEpsilon(1e-8))
//	if err != nil {
//	  // errors.Is(err, linalg.ErrSingular)
//	}
//	fmt.Println(res.X, res.Y, res.Iterations, res.FinalError())
//
// Every call owns its own state and log; concurrent calls are safe.
package iterate
