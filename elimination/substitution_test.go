// SPDX-License-Identifier: MIT

package elimination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/elimination"
	"github.com/katalvlaran/linsolve/matrix"
)

func TestDecomposition_Solve(t *testing.T) {
	a := mustRows(t, [][]float64{
		{2, -1, -2},
		{-4, 6, 3},
		{-4, -2, 8},
	})
	d, err := elimination.Decompose(a)
	require.NoError(t, err)

	// A·[1,2,3] = [-6,17,16]
	x, err := d.Solve([]float64{-6, 17, 16})
	require.NoError(t, err)
	for i, want := range []float64{1, 2, 3} {
		require.InDelta(t, want, x[i], residualTol)
	}

	// the factorization is reusable
	b2 := []float64{1, 0, 0}
	x2, err := d.Solve(b2)
	require.NoError(t, err)
	requireResidual(t, a, x2, b2)
}

func TestDecomposition_SolveMatchesGaussJordan(t *testing.T) {
	for _, n := range []int{1, 4, 17, 33} {
		a, b := diagDominant(t, n, int64(7*n))

		d, err := elimination.Decompose(a)
		require.NoError(t, err)
		viaLU, err := d.Solve(b)
		require.NoError(t, err)
		viaGJ, err := elimination.Solve(a, b)
		require.NoError(t, err)

		diff, err := matrix.VecMaxAbsDiff(viaLU, viaGJ)
		require.NoError(t, err)
		require.Less(t, diff, residualTol, "n=%d", n)
		requireResidual(t, a, viaLU, b)
	}
}

func TestDecomposition_SolveErrors(t *testing.T) {
	d, err := elimination.Decompose(mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)

	_, err = d.Solve([]float64{1})
	require.ErrorIs(t, err, elimination.ErrDimensionMismatch)
	_, err = d.Solve(nil)
	require.ErrorIs(t, err, elimination.ErrDimensionMismatch)
	_, err = d.Solve([]float64{math.Inf(1), 0})
	require.ErrorIs(t, err, elimination.ErrNaNInf)
}

func TestDecomposition_Det(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, 1},
		{"swap", [][]float64{{0, 2}, {3, 0}}, -6},
		{"diagonal", [][]float64{{2, 0, 0}, {0, -3, 0}, {0, 0, 0.5}}, -3},
		{"upper", [][]float64{{1, 5}, {0, 4}}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := elimination.Decompose(mustRows(t, tc.a))
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Det())
		})
	}
}

func TestDecomposition_Residual(t *testing.T) {
	a := mustRows(t, [][]float64{{4, 3}, {6, 3}})
	d, err := elimination.Decompose(a)
	require.NoError(t, err)

	r, err := d.Residual(a)
	require.NoError(t, err)
	require.Less(t, r, residualTol)

	other := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	r, err = d.Residual(other)
	require.NoError(t, err)
	require.Greater(t, r, 1.0)

	_, err = d.Residual(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = d.Residual(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDecomposition_ZeroValue(t *testing.T) {
	var zero elimination.Decomposition
	var null *elimination.Decomposition

	for _, d := range []*elimination.Decomposition{&zero, null} {
		require.NotPanics(t, func() {
			require.Equal(t, 0, d.N())
			require.Equal(t, 0, d.Swaps())
			require.Equal(t, 1.0, d.Det())
			require.Nil(t, d.P())
			require.Nil(t, d.L())
			require.Nil(t, d.U())
			require.Nil(t, d.Permutation())
		})

		_, err := d.Solve([]float64{1})
		require.ErrorIs(t, err, elimination.ErrNilMatrix)

		_, err = d.Residual(mustRows(t, [][]float64{{1}}))
		require.ErrorIs(t, err, elimination.ErrNilMatrix)
	}
}
