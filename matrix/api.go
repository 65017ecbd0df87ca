// SPDX-License-Identifier: MIT
// Package matrix - public constructors and conversion facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices from
//     literals and for exporting them back to plain slices.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Constructors validate shape and (under the default policy) finiteness
//     before any allocation is handed out.
//
// Hints:
//   - NewFromRows is the usual entry for fixtures and decoded input.
//   - NewFromMatrix is the copy-on-entry helper used by the elimination kernels.

package matrix

import "fmt"

const (
	opNewFromRows   = "NewFromRows"
	opNewFromMatrix = "NewFromMatrix"
	opAllClose      = "AllClose"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewFromRows builds a *Dense from a rectangular row-slice literal.
// The input is copied; later changes to rows do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRagged when row lengths differ.
//   - ErrNaNInf when an entry is non-finite (default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrRagged))
		}
		for j, v := range row {
			if m.validateNaNInf && !isFinite(v) {
				return nil, matrixErrorf(opNewFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// NewFromMatrix copies any Matrix into a fresh *Dense with the default policy.
// *Dense inputs take a single copy; others are read through At.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrNaNInf when a source entry is non-finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromMatrix(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opNewFromMatrix, err)
	}
	if d, ok := src.(*Dense); ok {
		out := d.clone()
		out.validateNaNInf = DefaultValidateNaNInf
		for idx, v := range out.data {
			if out.validateNaNInf && !isFinite(v) {
				return nil, matrixErrorf(opNewFromMatrix, denseErrorf(ctxSet, idx/out.c, idx%out.c, ErrNaNInf))
			}
		}

		return out, nil
	}

	out, err := NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(opNewFromMatrix, err)
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf(opNewFromMatrix, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opNewFromMatrix, err)
			}
		}
	}

	return out, nil
}

// ToRows exports m into a freshly allocated [][]float64.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances are rejected.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if !isFinite(rtol) || !isFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv, diff, absb float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // shapes validated above
			bv, _ = b.At(i, j)
			diff = av - bv
			if diff < 0 {
				diff = -diff
			}
			absb = bv
			if absb < 0 {
				absb = -absb
			}
			if diff > atol+rtol*absb {
				return false, nil
			}
		}
	}

	return true, nil
}
