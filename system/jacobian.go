package system

// Jacobian returns the analytic Jacobian of (F1, F2) at (x, y) in row-major
// order:
//
//	| ∂F1/∂x  ∂F1/∂y |   | 2x+y   x     |
//	| ∂F2/∂x  ∂F2/∂y | = | 3y²    1+6xy |
func Jacobian(x, y float64) (a, b, c, d float64) {
	a = 2.0*x + y
	b = x
	c = 3.0 * y * y
	d = 1.0 + 6.0*x*y

	return a, b, c, d
}

// ForwardJacobian approximates the Jacobian at (x, y) by forward
// differences with step h. f1 and f2 are the residuals already evaluated at
// (x, y); four further evaluations are made. The perturbation is always
// +h, never centered.
func ForwardJacobian(x, y, f1, f2, h float64) (a, b, c, d float64) {
	a = (F1(x+h, y) - f1) / h
	b = (F1(x, y+h) - f1) / h
	c = (F2(x+h, y) - f2) / h
	d = (F2(x, y+h) - f2) / h

	return a, b, c, d
}
