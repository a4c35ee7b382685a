// SPDX-License-Identifier: MIT

package iterate

import "fmt"

// Solve dispatches to the driver for m. Fixed-point methods always return a
// nil error.
//
// Errors:
//   - ErrUnknownMethod for m outside Methods().
//   - wrapped linalg.ErrSingular from NewtonRaphson or Secant.
func Solve(m Method, x0, y0 float64, opts ...Option) (Result, error) {
	switch m {
	case MethodJacobi:
		return Jacobi(x0, y0, opts...), nil
	case MethodSeidel:
		return Seidel(x0, y0, opts...), nil
	case MethodNewton:
		return NewtonRaphson(x0, y0, opts...)
	case MethodSecant:
		return Secant(x0, y0, opts...)
	default:
		return Result{}, fmt.Errorf("Solve: method %d: %w", int(m), ErrUnknownMethod)
	}
}
