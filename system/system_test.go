package system_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nlsolve/system"
	"github.com/stretchr/testify/assert"
)

// TestResidual_Root confirms (2,3) zeroes both equations.
func TestResidual_Root(t *testing.T) {
	r1, r2 := system.Residual(2, 3)
	assert.Equal(t, 0.0, r1)
	assert.Equal(t, 0.0, r2)

	assert.Equal(t, -2.5, system.F1(1.5, 3.5))
	assert.Equal(t, 1.625, system.F2(1.5, 3.5))
}

// TestG1B covers the regular branch and the negative-radicand hold.
func TestG1B(t *testing.T) {
	assert.Equal(t, 2.0, system.G1B(2, 3), "root is a fixed point")
	assert.InDelta(t, math.Sqrt(4.75), system.G1B(1.5, 3.5), 1e-15)
	assert.Equal(t, 0.0, system.G1B(2, 5), "zero radicand takes the root")

	for _, p := range [][2]float64{{4, 3}, {-5, -5}, {10, 1.5}} {
		assert.Less(t, 10-p[0]*p[1], 0.0)
		assert.Equal(t, p[0], system.G1B(p[0], p[1]), "negative radicand must hold x=%v", p[0])
	}
}

// TestG2A covers the regular branch and the near-zero denominator hold.
func TestG2A(t *testing.T) {
	assert.Equal(t, 3.0, system.G2A(2, 3), "root is a fixed point")
	assert.InDelta(t, 57.0/16.75, system.G2A(1.5, 3.5), 1e-15)

	// 1 + 3xy == 0 exactly
	assert.Equal(t, 7.0, system.G2A(-1.0/21.0, 7))
	// |1 + 3xy| tiny but nonzero
	y := 1.0
	x := (-1.0 + 1e-14) / 3.0
	assert.Less(t, math.Abs(1+3*x*y), system.DenomGuard)
	assert.Equal(t, y, system.G2A(x, y))
}

// TestJacobian_Analytic checks the closed form at the start point and the root.
func TestJacobian_Analytic(t *testing.T) {
	a, b, c, d := system.Jacobian(1.5, 3.5)
	assert.Equal(t, [4]float64{6.5, 1.5, 36.75, 32.5}, [4]float64{a, b, c, d})

	a, b, c, d = system.Jacobian(2, 3)
	assert.Equal(t, [4]float64{7, 2, 27, 37}, [4]float64{a, b, c, d})
}

// TestForwardJacobian_ApproachesAnalytic compares the finite-difference
// estimate with the analytic Jacobian; forward differences carry O(h) bias.
func TestForwardJacobian_ApproachesAnalytic(t *testing.T) {
	const h = 1e-5
	pts := [][2]float64{{1.5, 3.5}, {2, 3}, {0.7, 1.9}}
	for _, p := range pts {
		x, y := p[0], p[1]
		f1, f2 := system.Residual(x, y)
		a, b, c, d := system.ForwardJacobian(x, y, f1, f2, h)
		ea, eb, ec, ed := system.Jacobian(x, y)
		assert.InDelta(t, ea, a, 1e-3)
		assert.InDelta(t, eb, b, 1e-3)
		assert.InDelta(t, ec, c, 1e-3)
		assert.InDelta(t, ed, d, 1e-3)
	}
}

// TestForwardJacobian_ForwardBias verifies the ∂F1/∂x entry equals the
// analytic value plus h (F1 is quadratic in x), i.e. the step is +h only.
func TestForwardJacobian_ForwardBias(t *testing.T) {
	const h = 1e-3
	f1, f2 := system.Residual(1.5, 3.5)
	a, _, _, _ := system.ForwardJacobian(1.5, 3.5, f1, f2, h)
	ea, _, _, _ := system.Jacobian(1.5, 3.5)
	assert.InDelta(t, ea+h, a, 1e-9)
}
