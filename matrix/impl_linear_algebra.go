// SPDX-License-Identifier: MIT
// Package matrix provides the small set of universal kernels the elimination
// package and its tests rely on: matrix product, matrix-vector product and
// residual norms.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Offer a *Dense fast-path (flat slices) and a generic At/Set fallback.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.
//   - Operands are never mutated; results are freshly allocated *Dense values.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in elimination routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opMatVec     = "MatVec"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible; allocate C(r×c).
//   - Stage 2: *Dense fast-path uses i→k→j order over flat slices.
//     Otherwise fall back to At with the same loop order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var aik float64
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			var baseA, baseB, baseC int
			for i = 0; i < r; i++ {
				baseA, baseC = i*n, i*c
				for k = 0; k < n; k++ {
					aik = da.data[baseA+k]
					if aik == 0 {
						continue
					}
					baseB = k * c
					for j = 0; j < c; j++ {
						res.data[baseC+j] += aik * db.data[baseB+j]
					}
				}
			}

			return res, nil
		}
	}

	var bkj float64
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			for j = 0; j < c; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*c+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] - b[i,j]| (the ∞-entry residual).
// Used to verify P·A = L·U and similar reconstruction identities.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var worst float64
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, err)
			}
			worst = math.Max(worst, math.Abs(av-bv))
		}
	}

	return worst, nil
}

// VecMaxAbsDiff returns max_i |x[i] - y[i]|.
//
// Errors:
//   - ErrDimensionMismatch when lengths differ.
//
// Complexity:
//   - Time O(n), Space O(1).
func VecMaxAbsDiff(x, y []float64) (float64, error) {
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var worst float64
	for i := range x {
		worst = math.Max(worst, math.Abs(x[i]-y[i]))
	}

	return worst, nil
}
