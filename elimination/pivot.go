// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

const opSelectPivot = "SelectPivot"

// SelectPivot returns the row r ≥ rowStart that maximizes |m[r, column]|
// over rows rowStart..Rows()-1 (partial pivoting).
//
// Behavior highlights:
//   - Ties resolve to the lowest row index (strict ">" while scanning down).
//   - If the maximum absolute value is exactly zero, the column has no usable
//     pivot and a *SingularError with Step == column is returned.
//   - Pure read; m is never mutated.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - matrix.ErrOutOfRange when column or rowStart is outside the matrix.
//   - *SingularError (matches ErrSingular) for an all-zero candidate set.
//
// Complexity:
//   - Time O(Rows()-rowStart), Space O(1).
func SelectPivot(m *matrix.Dense, column, rowStart int) (int, error) {
	if m == nil {
		return 0, opErrorf(opSelectPivot, ErrNilMatrix)
	}
	if column < 0 || column >= m.Cols() || rowStart < 0 || rowStart >= m.Rows() {
		return 0, opErrorf(opSelectPivot, fmt.Errorf("column %d, rowStart %d: %w", column, rowStart, matrix.ErrOutOfRange))
	}

	row, ok := argMaxAbs(m, column, rowStart)
	if !ok {
		return 0, &SingularError{Op: opSelectPivot, Step: column}
	}

	return row, nil
}

// argMaxAbs scans column downward from rowStart and returns the first row
// attaining the largest magnitude. ok is false when that magnitude is zero.
// Indices are assumed valid.
func argMaxAbs(m *matrix.Dense, column, rowStart int) (row int, ok bool) {
	row = rowStart
	v, _ := m.At(rowStart, column)
	best := math.Abs(v)
	var cand float64
	for r := rowStart + 1; r < m.Rows(); r++ {
		v, _ = m.At(r, column)
		cand = math.Abs(v)
		if cand > best { // strict: first max wins
			best, row = cand, r
		}
	}

	return row, best != matrix.ZeroPivot
}
