// SPDX-License-Identifier: MIT

package iterate_test

import (
	"testing"

	"github.com/katalvlaran/nlsolve/iterate"
	"github.com/katalvlaran/nlsolve/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJacobi_StallsWithinCap verifies Jacobi from the reference start never
// meets the tolerance and uses every allowed iteration.
func TestJacobi_StallsWithinCap(t *testing.T) {
	res := iterate.Jacobi(x0, y0, iterate.WithEpsilon(eps), iterate.WithMaxIter(200))
	assertContract(t, res)

	assert.Equal(t, 200, res.Iterations)
	assert.Equal(t, 200, res.MaxIter)
	assert.False(t, res.Converged(), "Jacobi oscillates on this system")
	assert.Greater(t, res.FinalError(), 1.0)
	assert.Equal(t, iterate.MethodJacobi, res.Method)
}

// TestJacobi_DefaultCap checks the fixed-point default cap applies.
func TestJacobi_DefaultCap(t *testing.T) {
	res := iterate.Jacobi(x0, y0)
	assertContract(t, res)
	assert.Equal(t, iterate.DefaultFixedPointMaxIter, res.MaxIter)
	assert.Equal(t, iterate.DefaultFixedPointMaxIter, res.Iterations)
	assert.Equal(t, iterate.DefaultEpsilon, res.Eps)
}

// TestJacobi_SimultaneousUpdate verifies both maps read the same prior iterate.
func TestJacobi_SimultaneousUpdate(t *testing.T) {
	res := iterate.Jacobi(x0, y0, iterate.WithMaxIter(5))
	for _, rec := range res.Log {
		assert.Equal(t, system.G1B(rec.X, rec.Y), rec.XNext)
		assert.Equal(t, system.G2A(rec.X, rec.Y), rec.YNext)
	}
}

// TestSeidel_SequentialUpdate verifies y reuses the fresh x within a step.
func TestSeidel_SequentialUpdate(t *testing.T) {
	res := iterate.Seidel(x0, y0, iterate.WithMaxIter(5))
	for _, rec := range res.Log {
		assert.Equal(t, system.G1B(rec.X, rec.Y), rec.XNext)
		assert.Equal(t, system.G2A(rec.XNext, rec.Y), rec.YNext)
	}
}

// TestSeidel_ConvergesToNewtonRoot checks Seidel reaches the Newton root to
// four decimals, but needs more iterations.
func TestSeidel_ConvergesToNewtonRoot(t *testing.T) {
	seidel := iterate.Seidel(x0, y0, iterate.WithEpsilon(eps), iterate.WithMaxIter(500))
	assertContract(t, seidel)
	require.True(t, seidel.Converged())
	assert.Equal(t, 85, seidel.Iterations)

	newton, err := iterate.NewtonRaphson(x0, y0, iterate.WithEpsilon(eps))
	require.NoError(t, err)

	assert.InDelta(t, newton.X, seidel.X, 5e-5)
	assert.InDelta(t, newton.Y, seidel.Y, 5e-5)
	assert.Greater(t, seidel.Iterations, newton.Iterations)
}

// TestJacobiSeidel_FirstStepShared checks the first x_next is identical
// (G1B reads only the prior iterate) while y_next diverges afterwards.
func TestJacobiSeidel_FirstStepShared(t *testing.T) {
	jac := iterate.Jacobi(x0, y0, iterate.WithMaxIter(10))
	sei := iterate.Seidel(x0, y0, iterate.WithMaxIter(10))

	assert.Equal(t, jac.Log[0].XNext, sei.Log[0].XNext)
	assert.InDelta(t, 2.179449471770337, jac.Log[0].XNext, 1e-15)
	for k := 1; k < 10; k++ {
		assert.NotEqual(t, jac.Log[k].YNext, sei.Log[k].YNext, "y_next must differ at iteration %d", k)
	}
}

// TestSeidel_CapReached checks a short cap ends the run unconverged with
// exactly MaxIter records.
func TestSeidel_CapReached(t *testing.T) {
	res := iterate.Seidel(x0, y0, iterate.WithMaxIter(3))
	assertContract(t, res)
	assert.Equal(t, 3, res.Iterations)
	assert.False(t, res.Converged())
	assert.InDelta(t, 1.5861245877603896, res.X, 1e-12)
	assert.InDelta(t, 3.302996449649384, res.Y, 1e-12)
}

// TestFixedPoint_AtRoot checks a start on the root stops after one step.
func TestFixedPoint_AtRoot(t *testing.T) {
	for _, res := range []iterate.Result{iterate.Jacobi(rootX, rootY), iterate.Seidel(rootX, rootY)} {
		assertContract(t, res)
		assert.Equal(t, 1, res.Iterations)
		assert.Equal(t, 0.0, res.FinalError())
	}
}

// TestFixedPoint_GuardStall starts where 10 − xy < 0: x is held, no panic.
func TestFixedPoint_GuardStall(t *testing.T) {
	res := iterate.Seidel(5, 5, iterate.WithMaxIter(1))
	require.Len(t, res.Log, 1)
	assert.Equal(t, 5.0, res.Log[0].XNext, "negative radicand holds x")
}
