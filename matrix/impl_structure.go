// SPDX-License-Identifier: MIT

// Package matrix - structural predicates for factorization outputs.
//
// Purpose:
//   - Check the shape invariants of elimination results: permutation,
//     unit lower-triangular and upper-triangular matrices.
//   - Exact predicates compare against literal 0 and 1; callers wanting a
//     tolerance use the *Tol variants.

package matrix

import "math"

// IsPermutation reports whether m is square with exactly one 1 per row and
// per column and 0 everywhere else (exact comparison).
// Complexity: O(n^2).
func IsPermutation(m Matrix) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	n := m.Rows()
	colSeen := make([]bool, n)
	var v float64
	for i := 0; i < n; i++ {
		ones := 0
		for j := 0; j < n; j++ {
			v, _ = m.At(i, j)
			switch v {
			case 0:
			case 1:
				if colSeen[j] {
					return false
				}
				colSeen[j] = true
				ones++
			default:
				return false
			}
		}
		if ones != 1 {
			return false
		}
	}

	return true
}

// IsUnitLowerTriangular reports whether m is square with an exact unit
// diagonal and exact zeros strictly above it.
// Complexity: O(n^2).
func IsUnitLowerTriangular(m Matrix) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := i; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if i == j && v != 1 {
				return false
			}
			if j > i && v != 0 {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry strictly below the diagonal
// of the square matrix m is exactly zero.
// Complexity: O(n^2).
func IsUpperTriangular(m Matrix) bool {
	return IsUpperTriangularTol(m, 0)
}

// IsUpperTriangularTol is IsUpperTriangular with |m[i,j]| ≤ tol accepted below
// the diagonal. Negative tol is normalized to |tol|.
// Complexity: O(n^2).
func IsUpperTriangularTol(m Matrix, tol float64) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	tol = math.Abs(tol)
	var v float64
	for i := 1; i < m.Rows(); i++ {
		for j := 0; j < i; j++ {
			v, _ = m.At(i, j)
			if math.Abs(v) > tol {
				return false
			}
		}
	}

	return true
}
