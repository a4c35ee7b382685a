// SPDX-License-Identifier: MIT

package iterate

import (
	"github.com/katalvlaran/nlsolve/linalg"
	"github.com/katalvlaran/nlsolve/system"
)

// jacobianFn builds the 2×2 Jacobian at (x, y) given the residuals there.
type jacobianFn func(x, y, f1, f2 float64) (a, b, c, d float64)

// NewtonRaphson runs Newton–Raphson from (x0, y0).
//
// Algorithm Outline (per iteration):
//  1. Build J = [[2x+y, x], [3y², 1+6xy]] and evaluate F1, F2.
//  2. Solve J·(dx, dy) = (−F1, −F2) with linalg.Solve2x2.
//  3. (x, y) += (dx, dy); error norm = |(dx, dy)|.
//
// Errors:
//   - wraps linalg.ErrSingular as "newton: iter k: linalg: singular matrix"
//     and returns a zero Result. The run is not retried.
//
// Defaults: eps = DefaultEpsilon, MaxIter = DefaultNewtonMaxIter.
func NewtonRaphson(x0, y0 float64, opts ...Option) (Result, error) {
	return newtonLike(MethodNewton, x0, y0, gatherOptions(MethodNewton, opts), func(x, y, _, _ float64) (float64, float64, float64, float64) {
		return system.Jacobian(x, y)
	})
}

// Secant runs the multivariate secant method from (x0, y0): Newton–Raphson
// with every Jacobian entry replaced by a forward difference of step h
// (WithStep, default DefaultStep). Each iteration costs six residual
// evaluations. Error handling and stopping match NewtonRaphson.
func Secant(x0, y0 float64, opts ...Option) (Result, error) {
	o := gatherOptions(MethodSecant, opts)

	return newtonLike(MethodSecant, x0, y0, o, func(x, y, f1, f2 float64) (float64, float64, float64, float64) {
		return system.ForwardJacobian(x, y, f1, f2, o.h)
	})
}

// newtonLike is the loop shared by NewtonRaphson and Secant.
func newtonLike(m Method, x0, y0 float64, o Options, jac jacobianFn) (Result, error) {
	log := make([]Record, 0, initialLogCap(o.maxIter))
	x, y := x0, y0
	for k := 0; k < o.maxIter; k++ {
		f1, f2 := system.Residual(x, y)
		a, b, c, d := jac(x, y, f1, f2)
		dx, dy, err := linalg.Solve2x2(a, b, c, d, -f1, -f2)
		if err != nil {
			return Result{}, stepErrorf(m, k, err)
		}
		xNext, yNext := x+dx, y+dy
		norm := linalg.Norm2(dx, dy)
		log = append(log, Record{Iter: k, X: x, Y: y, XNext: xNext, YNext: yNext, Err: norm})
		x, y = xNext, yNext
		if norm < o.eps {
			break
		}
	}

	return Result{X: x, Y: y, Iterations: len(log), Log: log, Method: m, Eps: o.eps, MaxIter: o.maxIter}, nil
}
