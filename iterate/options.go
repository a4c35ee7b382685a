// SPDX-License-Identifier: MIT

// Package iterate: functional options for the iteration drivers.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error). Drivers themselves never panic.
//   - No hidden globals; every call resolves its own Options.
//   - An iteration cap left unset falls back to the per-method default.

package iterate

import "math"

// Defaults (single source of truth).
const (
	// DefaultEpsilon is the convergence tolerance on the step norm.
	DefaultEpsilon = 1e-6

	// DefaultFixedPointMaxIter caps Jacobi and Seidel runs.
	DefaultFixedPointMaxIter = 500

	// DefaultNewtonMaxIter caps NewtonRaphson and Secant runs.
	DefaultNewtonMaxIter = 100

	// DefaultStep is the forward-difference step h used by Secant.
	DefaultStep = 1e-5
)

const (
	panicEpsilonInvalid = "iterate: WithEpsilon: eps must be finite and non-negative"
	panicMaxIterInvalid = "iterate: WithMaxIter: n must be > 0"
	panicStepInvalid    = "iterate: WithStep: h must be finite and > 0"
)

// Option mutates the resolved Options of a single driver call.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; drivers accept ...Option.
type Options struct {
	eps     float64
	maxIter int // 0 ⇒ per-method default
	h       float64
}

// WithEpsilon sets the convergence tolerance. eps == 0 disables early
// stopping. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIter sets the iteration cap. Panics on n ≤ 0.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithStep sets the forward-difference step used by Secant; other methods
// ignore it. Panics on h ≤ 0 or non-finite h.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.h = h }
}

// DefaultMaxIter returns the iteration cap m uses when WithMaxIter is absent.
func DefaultMaxIter(m Method) int {
	switch m {
	case MethodJacobi, MethodSeidel:
		return DefaultFixedPointMaxIter
	default:
		return DefaultNewtonMaxIter
	}
}

// gatherOptions resolves opts over the defaults for method m.
func gatherOptions(m Method, opts []Option) Options {
	o := Options{eps: DefaultEpsilon, h: DefaultStep}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.maxIter == 0 {
		o.maxIter = DefaultMaxIter(m)
	}

	return o
}
