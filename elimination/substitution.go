// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

const (
	opLUSolve    = "Decomposition.Solve"
	opLUResidual = "Decomposition.Residual"
)

// Solve returns x with A·x = b using the stored factors:
// y = L⁻¹·(P·b) by forward substitution, then x = U⁻¹·y by back substitution.
// The same Decomposition may be reused for any number of right-hand sides.
//
// Errors:
//   - ErrNilMatrix for an empty Decomposition.
//   - ErrDimensionMismatch when len(b) != N().
//   - ErrNaNInf for a non-finite b entry or an overflowing intermediate.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (d *Decomposition) Solve(b []float64) ([]float64, error) {
	if d.empty() {
		return nil, opErrorf(opLUSolve, ErrNilMatrix)
	}
	n := d.N()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, opErrorf(opLUSolve, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, opErrorf(opLUSolve, err)
	}

	var (
		i, j   int
		acc, v float64
	)

	// forward: L·y = P·b (L has a unit diagonal)
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		acc = b[d.perm[i]]
		for j = 0; j < i; j++ {
			v, _ = d.l.At(i, j)
			acc -= v * y[j]
		}
		y[i] = acc
	}

	// backward: U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		acc = y[i]
		for j = i + 1; j < n; j++ {
			v, _ = d.u.At(i, j)
			acc -= v * x[j]
		}
		v, _ = d.u.At(i, i)
		if v == matrix.ZeroPivot { // unreachable for a Decomposition built by Decompose
			return nil, &SingularError{Op: opLUSolve, Step: i}
		}
		x[i] = acc / v
		if !isFinite(x[i]) {
			return nil, opErrorf(opLUSolve, fmt.Errorf("x[%d]: %w", i, ErrNaNInf))
		}
	}

	return x, nil
}

// Det returns det(A) = (-1)^Swaps() · ∏ U[i,i]; 1 for an empty Decomposition.
func (d *Decomposition) Det() float64 {
	det := 1.0
	if d.Swaps()%2 == 1 {
		det = -1
	}
	var v float64
	for i := 0; i < d.N(); i++ {
		v, _ = d.u.At(i, i)
		det *= v
	}

	return det
}

// Residual returns max |(P·A - L·U)[i,j]| for the original matrix a.
// A small value confirms a is the matrix d was computed from.
//
// Errors:
//   - ErrNilMatrix for a nil a or an empty Decomposition.
//   - ErrDimensionMismatch.
func (d *Decomposition) Residual(a matrix.Matrix) (float64, error) {
	if d.empty() {
		return 0, opErrorf(opLUResidual, ErrNilMatrix)
	}
	pa, err := matrix.Mul(d.p, a)
	if err != nil {
		return 0, opErrorf(opLUResidual, err)
	}
	lu, err := matrix.Mul(d.l, d.u)
	if err != nil {
		return 0, opErrorf(opLUResidual, err)
	}
	r, err := matrix.MaxAbsDiff(pa, lu)
	if err != nil {
		return 0, opErrorf(opLUResidual, err)
	}

	return r, nil
}
