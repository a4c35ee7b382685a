// SPDX-License-Identifier: MIT

package iterate

import "math"

// Method identifies one of the four iteration schemes.
type Method int

const (
	// MethodJacobi is simultaneous fixed-point iteration.
	MethodJacobi Method = iota

	// MethodSeidel is sequential (Gauss–Seidel) fixed-point iteration.
	MethodSeidel

	// MethodNewton is Newton–Raphson with the analytic Jacobian.
	MethodNewton

	// MethodSecant is the multivariate secant method with a finite-difference Jacobian.
	MethodSecant
)

var methodTitles = [...]string{
	MethodJacobi: "IT Jacobi (g2A & g1B)",
	MethodSeidel: "IT Seidel (g2A & g1B)",
	MethodNewton: "Newton–Raphson",
	MethodSecant: "Secant (numerical Jacobian)",
}

var methodNames = [...]string{
	MethodJacobi: "jacobi",
	MethodSeidel: "seidel",
	MethodNewton: "newton",
	MethodSecant: "secant",
}

// Methods returns every Method in reference order.
func Methods() []Method {
	return []Method{MethodJacobi, MethodSeidel, MethodNewton, MethodSecant}
}

// Valid reports whether m is one of Methods().
func (m Method) Valid() bool {
	return m >= MethodJacobi && m <= MethodSecant
}

// String returns the short lowercase name ("jacobi", "newton", ...).
func (m Method) String() string {
	if !m.Valid() {
		return "unknown"
	}

	return methodNames[m]
}

// Title returns the human-readable heading used in console reports.
func (m Method) Title() string {
	if !m.Valid() {
		return "Unknown method"
	}

	return methodTitles[m]
}

// State is the current iterate (x, y).
type State struct {
	X, Y float64
}

// Record is one iteration: the 0-based index, the iterate before and after
// the step, and the error norm of the step.
type Record struct {
	Iter         int
	X, Y         float64
	XNext, YNext float64
	Err          float64
}

// Result is the outcome of a completed run.
//
// Fields:
//   - X, Y       — final iterate.
//   - Iterations — 1-based count of completed iterations; equals len(Log).
//   - Log        — one Record per iteration, in order.
//   - Method     — scheme that produced the run.
//   - Eps        — tolerance the run stopped against.
//   - MaxIter    — iteration cap in effect.
type Result struct {
	X, Y       float64
	Iterations int
	Log        []Record
	Method     Method
	Eps        float64
	MaxIter    int
}

// State returns the final iterate.
func (r Result) State() State {
	return State{X: r.X, Y: r.Y}
}

// FinalError returns the error norm of the last accepted step, or NaN for
// an empty log.
func (r Result) FinalError() float64 {
	if len(r.Log) == 0 {
		return math.NaN()
	}

	return r.Log[len(r.Log)-1].Err
}

// Converged reports whether the last step met the tolerance.
// A run that exhausted MaxIter may still have converged on its final step.
func (r Result) Converged() bool {
	return len(r.Log) > 0 && r.FinalError() < r.Eps
}
