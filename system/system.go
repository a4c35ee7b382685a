package system

import "math"

// DenomGuard is the magnitude below which G2A treats its denominator as zero.
const DenomGuard = 1e-12

// F1 evaluates x² + xy − 10.
func F1(x, y float64) float64 {
	return x*x + x*y - 10.0
}

// F2 evaluates y + 3xy² − 57.
func F2(x, y float64) float64 {
	return y + 3.0*x*y*y - 57.0
}

// Residual returns (F1(x,y), F2(x,y)).
func Residual(x, y float64) (r1, r2 float64) {
	return F1(x, y), F2(x, y)
}

// G1B is the x-update x ← √(10 − xy), taking the non-negative root.
// A negative radicand returns x unchanged.
func G1B(x, y float64) float64 {
	val := 10.0 - x*y
	if val < 0 {
		return x
	}

	return math.Sqrt(val)
}

// G2A is the y-update y ← 57 / (1 + 3xy).
// When |1 + 3xy| < DenomGuard the update returns y unchanged.
func G2A(x, y float64) float64 {
	denom := 1.0 + 3.0*x*y
	if math.Abs(denom) < DenomGuard {
		return y
	}

	return 57.0 / denom
}
