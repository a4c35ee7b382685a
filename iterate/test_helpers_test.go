// SPDX-License-Identifier: MIT

package iterate_test

import (
	"testing"

	"github.com/katalvlaran/nlsolve/iterate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference start point and tolerance of the command-line driver.
const (
	x0  = 1.5
	y0  = 3.5
	eps = 1e-6
)

// root of the system closest to (x0, y0).
const (
	rootX = 2.0
	rootY = 3.0
)

// mustSolve runs m and fails the test on error.
func mustSolve(t *testing.T, m iterate.Method, x, y float64, opts ...iterate.Option) iterate.Result {
	t.Helper()
	res, err := iterate.Solve(m, x, y, opts...)
	require.NoError(t, err, "%s must not fail from (%v,%v)", m, x, y)

	return res
}

// assertContract checks the invariants every driver guarantees:
// len(Log) == Iterations ≤ MaxIter, 0-based chained records, and
// err < eps on the last record whenever the run stopped early.
func assertContract(t *testing.T, res iterate.Result) {
	t.Helper()
	require.Len(t, res.Log, res.Iterations, "log length must equal iteration count")
	require.LessOrEqual(t, res.Iterations, res.MaxIter)
	require.NotEmpty(t, res.Log)

	for k, rec := range res.Log {
		assert.Equal(t, k, rec.Iter, "records must be 0-based and ordered")
		if k > 0 {
			prev := res.Log[k-1]
			assert.Equal(t, prev.XNext, rec.X, "record %d must start where %d ended", k, k-1)
			assert.Equal(t, prev.YNext, rec.Y, "record %d must start where %d ended", k, k-1)
		}
		if k < len(res.Log)-1 {
			assert.GreaterOrEqual(t, rec.Err, res.Eps, "only the last record may meet the tolerance")
		}
	}

	last := res.Log[len(res.Log)-1]
	assert.Equal(t, last.XNext, res.X)
	assert.Equal(t, last.YNext, res.Y)
	assert.Equal(t, last.Err, res.FinalError())
	if res.Iterations < res.MaxIter {
		assert.Less(t, res.FinalError(), res.Eps, "early stop implies convergence")
		assert.True(t, res.Converged())
	}
}
