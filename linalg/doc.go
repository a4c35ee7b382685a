// SPDX-License-Identifier: MIT

// Package linalg provides the closed-form 2×2 kernels shared by the
// derivative-based solvers in nlsolve.
//
// 🚀 What is inside?
//
//	• Det2      — determinant of a 2×2 matrix
//	• Solve2x2  — Cramer's-rule solve of A·(u,v) = (r1,r2)
//	• Norm2     — Euclidean length of a 2-vector (overflow-safe hypot)
//
// The matrix is passed as four scalars in row-major order:
//
//	| a  b |   | u |   | r1 |
//	| c  d | · | v | = | r2 |
//
// ⚙️ Usage:
//
//	u, v, err := linalg.Solve2x2(2, 1, 1, 3, 3, 5)
//	if errors.Is(err, linalg.ErrSingular) {
//	  // |det| < SingularThreshold — no unique solution
//	}
//
// Errors:
//   - ErrSingular is the only failure. It is never retried or recovered
//     inside this package; callers decide whether to abort.
//
// Complexity: every function is O(1) time and O(1) memory.
package linalg
