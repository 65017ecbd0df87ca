// SPDX-License-Identifier: MIT

package elimination_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

// residualTol bounds max|A·x - b| and max|P·A - L·U| on well-conditioned fixtures.
const residualTol = 1e-9

// mustRows builds a *Dense from a row literal or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// toRows exports m or fails the test.
func toRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(m)
	require.NoError(t, err)

	return rows
}

// requireResidual asserts max|A·x - b| < residualTol.
func requireResidual(t testing.TB, a matrix.Matrix, x, b []float64) {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	r, err := matrix.VecMaxAbsDiff(ax, b)
	require.NoError(t, err)
	require.Less(t, r, residualTol, "A·x deviates from b")
}

// diagDominant returns a reproducible n×n strictly diagonally dominant
// matrix (nonsingular, well-conditioned) and a matching right-hand side.
func diagDominant(t testing.TB, n int, seed int64) (*matrix.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			sum += math.Abs(v)
			require.NoError(t, a.Set(i, j, v))
		}
		require.NoError(t, a.Set(i, i, sum+1+rng.Float64()))
		b[i] = rng.Float64()*10 - 5
	}

	return a, b
}
