// SPDX-License-Identifier: MIT

// Package matrix - in-place elementary row operations on *Dense.
//
// Purpose:
//   - Provide the only mutation surface used by the elimination kernels:
//     swap, scale or divide, and "subtract a multiple of another row".
//   - Keep every primitive bounds-checked and numeric-policy aware, so an
//     overflow during elimination surfaces as ErrNaNInf instead of Inf-laden data.
//
// Determinism:
//   - Each primitive walks its columns left to right; no allocation.
//
// Hints:
//   - Run these on private working copies only; they never allocate or clone.
//   - SwapRowsRange exists for LU, where only part of a row may be exchanged.

package matrix

import "fmt"

const (
	ctxSwapRows       = "SwapRows"
	ctxSwapRowsRange  = "SwapRowsRange"
	ctxScaleRow       = "ScaleRow"
	ctxDivRow         = "DivRow"
	ctxSubRowMultiple = "SubRowMultiple"
)

// rowOpErrorf tags a row-primitive failure with the operation and rows involved.
func rowOpErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// rowErrorf tags single-row operations.
func rowErrorf(method string, i int, err error) error {
	return fmt.Errorf("Dense.%s(row %d): %w", method, i, err)
}

// checkRow validates a row index against m.r.
func (m *Dense) checkRow(i int) error {
	if i < 0 || i >= m.r {
		return ErrOutOfRange
	}

	return nil
}

// SwapRows exchanges rows i and j over all columns.
// i == j is a valid no-op.
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, Rows()).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.SwapRowsRange(i, j, 0, m.c); err != nil {
		return rowOpErrorf(ctxSwapRows, i, j, err)
	}

	return nil
}

// SwapRowsRange exchanges columns [c0, c1) of rows i and j.
// An empty range (c0 == c1) is a valid no-op.
//
// Errors:
//   - ErrOutOfRange when a row is invalid or the range is not within [0, Cols()].
//
// Complexity:
//   - Time O(c1-c0), Space O(1).
func (m *Dense) SwapRowsRange(i, j, c0, c1 int) error {
	if err := m.checkRow(i); err != nil {
		return rowOpErrorf(ctxSwapRowsRange, i, j, err)
	}
	if err := m.checkRow(j); err != nil {
		return rowOpErrorf(ctxSwapRowsRange, i, j, err)
	}
	if c0 < 0 || c1 > m.c || c0 > c1 {
		return fmt.Errorf("Dense.%s(%d,%d) cols [%d,%d): %w", ctxSwapRowsRange, i, j, c0, c1, ErrOutOfRange)
	}
	if i == j {
		return nil
	}

	bi, bj := i*m.c, j*m.c
	for k := c0; k < c1; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by factor.
//
// Errors:
//   - ErrOutOfRange for an invalid row.
//   - ErrNaNInf if factor or a product is non-finite under the numeric policy.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRow(i int, factor float64) error {
	if err := m.checkRow(i); err != nil {
		return rowErrorf(ctxScaleRow, i, err)
	}
	if m.validateNaNInf && !isFinite(factor) {
		return rowErrorf(ctxScaleRow, i, ErrNaNInf)
	}

	base := i * m.c
	var v float64
	for k := 0; k < m.c; k++ {
		v = m.data[base+k] * factor
		if m.validateNaNInf && !isFinite(v) {
			return rowErrorf(ctxScaleRow, i, ErrNaNInf)
		}
		m.data[base+k] = v
	}

	return nil
}

// DivRow divides every entry of row i by divisor.
// Unlike ScaleRow(i, 1/divisor) it stays finite for subnormal divisors
// whose reciprocal overflows.
//
// Errors:
//   - ErrOutOfRange for an invalid row.
//   - ErrSingular for a zero divisor.
//   - ErrNaNInf if divisor or a quotient is non-finite under the numeric policy.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) DivRow(i int, divisor float64) error {
	if err := m.checkRow(i); err != nil {
		return rowErrorf(ctxDivRow, i, err)
	}
	if divisor == 0 {
		return rowErrorf(ctxDivRow, i, ErrSingular)
	}
	if m.validateNaNInf && !isFinite(divisor) {
		return rowErrorf(ctxDivRow, i, ErrNaNInf)
	}

	base := i * m.c
	var v float64
	for k := 0; k < m.c; k++ {
		v = m.data[base+k] / divisor
		if m.validateNaNInf && !isFinite(v) {
			return rowErrorf(ctxDivRow, i, ErrNaNInf)
		}
		m.data[base+k] = v
	}

	return nil
}

// SubRowMultiple performs M[target, c0:] -= factor * M[source, c0:].
// Columns before c0 are left untouched; callers pass c0 > 0 when the
// leading entries are already known to be zero.
//
// Errors:
//   - ErrOutOfRange for invalid rows or c0 outside [0, Cols()].
//   - ErrNaNInf if factor or a result is non-finite under the numeric policy.
//
// Complexity:
//   - Time O(c-c0), Space O(1).
func (m *Dense) SubRowMultiple(target, source int, factor float64, c0 int) error {
	if err := m.checkRow(target); err != nil {
		return rowOpErrorf(ctxSubRowMultiple, target, source, err)
	}
	if err := m.checkRow(source); err != nil {
		return rowOpErrorf(ctxSubRowMultiple, target, source, err)
	}
	if c0 < 0 || c0 > m.c {
		return fmt.Errorf("Dense.%s(%d,%d) from col %d: %w", ctxSubRowMultiple, target, source, c0, ErrOutOfRange)
	}
	if m.validateNaNInf && !isFinite(factor) {
		return rowOpErrorf(ctxSubRowMultiple, target, source, ErrNaNInf)
	}
	if factor == 0 {
		return nil
	}

	bt, bs := target*m.c, source*m.c
	var v float64
	for k := c0; k < m.c; k++ {
		v = m.data[bt+k] - factor*m.data[bs+k]
		if m.validateNaNInf && !isFinite(v) {
			return rowOpErrorf(ctxSubRowMultiple, target, source, ErrNaNInf)
		}
		m.data[bt+k] = v
	}

	return nil
}
