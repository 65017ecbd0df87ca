// Package matrix_test exercises the in-place row primitives.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestSwapRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, m.SwapRows(0, 2))
	Compare(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, m)

	// i == j is a no-op.
	require.NoError(t, m.SwapRows(1, 1))
	Compare(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, m)

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestSwapRowsRange(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.SwapRowsRange(0, 1, 1, 3))
	Compare(t, [][]float64{{1, 5, 6}, {4, 2, 3}}, m)

	// Empty range leaves the rows alone.
	require.NoError(t, m.SwapRowsRange(0, 1, 0, 0))
	Compare(t, [][]float64{{1, 5, 6}, {4, 2, 3}}, m)

	tests := []struct {
		name         string
		i, j, c0, c1 int
	}{
		{"negative c0", 0, 1, -1, 2},
		{"c1 past end", 0, 1, 0, 4},
		{"inverted", 0, 1, 2, 1},
		{"bad row", 0, 2, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, m.SwapRowsRange(tc.i, tc.j, tc.c0, tc.c1), matrix.ErrOutOfRange)
		})
	}
}

func TestScaleRow(t *testing.T) {
	m := MustRows(t, [][]float64{{2, 4}, {1, 1}})
	require.NoError(t, m.ScaleRow(0, 0.5))
	Compare(t, [][]float64{{1, 2}, {1, 1}}, m)

	require.ErrorIs(t, m.ScaleRow(2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.ScaleRow(0, math.Inf(1)), matrix.ErrNaNInf)

	big := MustRows(t, [][]float64{{math.MaxFloat64}})
	require.ErrorIs(t, big.ScaleRow(0, 10), matrix.ErrNaNInf)

	err := m.ScaleRow(0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "Dense.ScaleRow(row 0)")
}

func TestDivRow(t *testing.T) {
	m := MustRows(t, [][]float64{{2, 4}, {1, 1}})
	require.NoError(t, m.DivRow(0, 2))
	Compare(t, [][]float64{{1, 2}, {1, 1}}, m)

	// 1/1e-310 overflows, the quotient does not.
	tiny := MustRows(t, [][]float64{{1e-310, 1e-300}})
	pivot := 1e-310
	require.True(t, math.IsInf(1/pivot, 1))
	require.NoError(t, tiny.DivRow(0, pivot))
	got, err := tiny.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
	got, err = tiny.At(0, 1)
	require.NoError(t, err)
	require.InEpsilon(t, 1e10, got, 1e-12)

	require.ErrorIs(t, m.DivRow(2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.DivRow(0, math.Inf(1)), matrix.ErrNaNInf)

	err = m.DivRow(1, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Contains(t, err.Error(), "Dense.DivRow(row 1)")

	big := MustRows(t, [][]float64{{math.MaxFloat64}})
	require.ErrorIs(t, big.DivRow(0, 0.5), matrix.ErrNaNInf)
}

func TestSubRowMultiple(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	// Full-width elimination: row1 -= 4*row0.
	require.NoError(t, m.SubRowMultiple(1, 0, 4, 0))
	Compare(t, [][]float64{{1, 2, 3}, {0, -3, -6}}, m)

	// Partial width leaves leading columns untouched.
	require.NoError(t, m.SubRowMultiple(0, 1, 1, 2))
	Compare(t, [][]float64{{1, 2, 9}, {0, -3, -6}}, m)

	// Zero factor is a no-op.
	require.NoError(t, m.SubRowMultiple(0, 1, 0, 0))
	Compare(t, [][]float64{{1, 2, 9}, {0, -3, -6}}, m)

	require.ErrorIs(t, m.SubRowMultiple(0, 5, 1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SubRowMultiple(0, 1, 1, 4), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SubRowMultiple(0, 1, math.NaN(), 0), matrix.ErrNaNInf)
}
