// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

const opDecompose = "Decompose"

// Decomposition is the result of Decompose: P·A = L·U with L unit
// lower-triangular and U upper-triangular. It is immutable; the accessors
// return copies.
//
// The zero value (and a nil *Decomposition) is empty: N() is 0, the factor
// accessors return nil, Det() is 1 and Solve/Residual fail with ErrNilMatrix.
type Decomposition struct {
	p, l, u *matrix.Dense
	perm    []int
	swaps   int
}

// Decompose factors the square matrix a as P·A = L·U using Gaussian
// elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate (nil → square) before any copy.
//   - Stage 2: U = copy(A), L = I, P = I.
//   - Stage 3: for k = 0..n-2: select the largest |U[r,k]|, r ≥ k; if r ≠ k
//     swap rows k and r in U (columns k..n-1), in L (columns 0..k-1) and in P
//     (full rows); fail if U[k,k] == 0; for every i > k store
//     L[i,k] = U[i,k]/U[k,k] and clear U[i,k] against row k.
//   - Stage 4: fail if the last pivot U[n-1,n-1] is zero.
//
// Behavior highlights:
//   - a is never mutated.
//   - Entries strictly below U's diagonal are exact zeros, not rounding noise.
//   - A 1×1 input is factored as P = L = [1], U = A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrNaNInf for non-finite input or an overflowing multiplier.
//   - *SingularError{Op: "Decompose", Step: k} for a zero pivot at step k.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Decompose(a matrix.Matrix, opts ...Option) (*Decomposition, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, opErrorf(opDecompose, err)
	}

	o := gatherOptions(opts...)
	f, err := newFactors(a)
	if err != nil {
		return nil, opErrorf(opDecompose, err)
	}
	n := f.n

	var (
		i, k, r        int
		ukk, uik, mult float64
		ok             bool
	)
	for k = 0; k < n-1; k++ {
		// 1) partial pivoting on the active column of U
		if r, ok = argMaxAbs(f.u, k, k); !ok {
			return nil, &SingularError{Op: opDecompose, Step: k}
		}
		if r != k {
			if err = f.swapRows(k, r); err != nil {
				return nil, opErrorf(opDecompose, err)
			}
			traceFactors(o, f, Event{
				Kind: EventSwap, Step: k, Row: k, Source: r,
				Label: fmt.Sprintf("Step %d: Swap R%d with R%d", k+1, k+1, r+1),
			})
		}

		// 2) zero-pivot guard
		ukk, _ = f.u.At(k, k)
		if ukk == matrix.ZeroPivot {
			return nil, &SingularError{Op: opDecompose, Step: k}
		}

		// 3) eliminate below the pivot in the trailing submatrix
		for i = k + 1; i < n; i++ {
			uik, _ = f.u.At(i, k)
			mult = uik / ukk
			if err = f.eliminateRow(i, k, mult); err != nil {
				return nil, opErrorf(opDecompose, fmt.Errorf("step %d: %w", k, err))
			}
			traceFactors(o, f, Event{
				Kind: EventEliminate, Step: k, Row: i, Source: k, Factor: mult,
				Label: fmt.Sprintf("Step %d.%d: Eliminating row %d", k+1, i+1, i+1),
			})
		}
	}

	// The loop never inspects the last pivot; a zero there is still singular.
	if last, _ := f.u.At(n-1, n-1); last == matrix.ZeroPivot {
		return nil, &SingularError{Op: opDecompose, Step: n - 1}
	}

	return &Decomposition{p: f.p, l: f.l, u: f.u, perm: f.perm, swaps: f.swaps}, nil
}

// traceFactors fills the common event fields and hands ev to the tracer.
func traceFactors(o Options, f *factors, ev Event) {
	if o.Tracer == nil {
		return
	}
	ev.Op = opDecompose
	ev.Snapshot = f.u.CloneDense()
	o.Tracer.Trace(ev)
}

// empty reports whether d carries no factors.
func (d *Decomposition) empty() bool { return d == nil || d.u == nil }

// N returns the matrix order.
func (d *Decomposition) N() int {
	if d.empty() {
		return 0
	}

	return d.u.Rows()
}

// P returns a copy of the permutation matrix.
func (d *Decomposition) P() *matrix.Dense {
	if d.empty() {
		return nil
	}

	return d.p.CloneDense()
}

// L returns a copy of the unit lower-triangular factor.
func (d *Decomposition) L() *matrix.Dense {
	if d.empty() {
		return nil
	}

	return d.l.CloneDense()
}

// U returns a copy of the upper-triangular factor.
func (d *Decomposition) U() *matrix.Dense {
	if d.empty() {
		return nil
	}

	return d.u.CloneDense()
}

// Permutation returns perm with (P·A)[i,:] = A[perm[i],:].
func (d *Decomposition) Permutation() []int {
	if d.empty() {
		return nil
	}
	out := make([]int, len(d.perm))
	copy(out, d.perm)

	return out
}

// Swaps returns the number of row exchanges performed.
func (d *Decomposition) Swaps() int {
	if d.empty() {
		return 0
	}

	return d.swaps
}
