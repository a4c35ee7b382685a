// Package system defines the fixed nonlinear system solved by nlsolve,
// together with the rearranged fixed-point maps and Jacobian builders the
// iteration drivers consume.
//
// The system:
//
//	F1(x,y) = x² + xy − 10  = 0
//	F2(x,y) = y + 3xy² − 57 = 0
//
// has the root (2, 3) near the conventional starting point (1.5, 3.5).
//
// Fixed-point maps (one per variable):
//
//	G1B: x ← √(10 − xy)        holds x when the radicand is negative
//	G2A: y ← 57 / (1 + 3xy)    holds y when |1 + 3xy| < DenomGuard
//
// Both guards stall instead of failing. They are rearrangements chosen for
// this particular system and are not meant as general-purpose maps.
//
// Jacobians:
//
//	Jacobian        — analytic, used by Newton–Raphson
//	ForwardJacobian — forward differences with step h, used by the secant method
//
// All functions are pure and safe for concurrent use.
package system
