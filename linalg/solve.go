// SPDX-License-Identifier: MIT

package linalg

import "math"

// SingularThreshold is the determinant magnitude below which Solve2x2
// reports ErrSingular.
const SingularThreshold = 1e-15

// Det2 returns the determinant ad − bc of the matrix [[a, b], [c, d]].
// Complexity: O(1).
func Det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// Solve2x2 solves the linear system
//
//	a·u + b·v = r1
//	c·u + d·v = r2
//
// by Cramer's rule.
//
// Implementation:
//   - Stage 1: det = ad − bc; fail with ErrSingular when |det| < SingularThreshold.
//   - Stage 2: u = (r1·d − b·r2)/det, v = (a·r2 − r1·c)/det.
//
// Errors:
//   - ErrSingular (returned unwrapped; u and v are zero).
//
// Complexity: O(1) time, O(1) space.
func Solve2x2(a, b, c, d, r1, r2 float64) (u, v float64, err error) {
	det := Det2(a, b, c, d)
	if math.Abs(det) < SingularThreshold {
		return 0, 0, ErrSingular
	}
	u = (r1*d - b*r2) / det
	v = (a*r2 - r1*c) / det

	return u, v, nil
}

// Norm2 returns the Euclidean norm √(dx² + dy²) without intermediate
// overflow or underflow.
func Norm2(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
