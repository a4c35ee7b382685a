// SPDX-License-Identifier: MIT

package iterate

import (
	"github.com/katalvlaran/nlsolve/linalg"
	"github.com/katalvlaran/nlsolve/system"
)

// fixedPointStep maps the prior iterate to the next one.
type fixedPointStep func(x, y float64) (xNext, yNext float64)

// Jacobi runs simultaneous fixed-point iteration from (x0, y0):
//
//	x' = G1B(x, y)
//	y' = G2A(x, y)
//
// Both updates read the same prior iterate. The error norm is the distance
// between successive iterates. Jacobi never fails; a guarded map simply
// holds its variable, which may stall the run until MaxIter.
//
// Defaults: eps = DefaultEpsilon, MaxIter = DefaultFixedPointMaxIter.
// Complexity: O(MaxIter) time, O(Iterations) memory for the log.
func Jacobi(x0, y0 float64, opts ...Option) Result {
	return fixedPoint(MethodJacobi, x0, y0, gatherOptions(MethodJacobi, opts), func(x, y float64) (float64, float64) {
		return system.G1B(x, y), system.G2A(x, y)
	})
}

// Seidel runs sequential (Gauss–Seidel) fixed-point iteration from (x0, y0):
//
//	x' = G1B(x, y)
//	y' = G2A(x', y)
//
// The y update reuses the freshly computed x'. Otherwise identical to Jacobi.
func Seidel(x0, y0 float64, opts ...Option) Result {
	return fixedPoint(MethodSeidel, x0, y0, gatherOptions(MethodSeidel, opts), func(x, y float64) (float64, float64) {
		xNew := system.G1B(x, y)

		return xNew, system.G2A(xNew, y)
	})
}

// fixedPoint is the loop shared by Jacobi and Seidel.
func fixedPoint(m Method, x0, y0 float64, o Options, step fixedPointStep) Result {
	log := make([]Record, 0, initialLogCap(o.maxIter))
	x, y := x0, y0
	for k := 0; k < o.maxIter; k++ {
		xNext, yNext := step(x, y)
		norm := linalg.Norm2(xNext-x, yNext-y)
		log = append(log, Record{Iter: k, X: x, Y: y, XNext: xNext, YNext: yNext, Err: norm})
		x, y = xNext, yNext
		if norm < o.eps {
			break
		}
	}

	return Result{X: x, Y: y, Iterations: len(log), Log: log, Method: m, Eps: o.eps, MaxIter: o.maxIter}
}

// initialLogCap bounds the up-front log allocation; long runs grow by append.
func initialLogCap(maxIter int) int {
	const maxPrealloc = 128
	if maxIter < maxPrealloc {
		return maxIter
	}

	return maxPrealloc
}
