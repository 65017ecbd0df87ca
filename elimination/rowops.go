// SPDX-License-Identifier: MIT

// Package elimination - row operations over working state.
//
// Purpose:
//   - Pair every matrix row primitive with the matching update on the
//     right-hand side (Gauss-Jordan) or on L and P (LU), so the algorithms
//     never mutate storage directly.
//   - All state here is a private working copy owned by one call.

package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// system is the augmented [A|b] working copy of one Solve call.
type system struct {
	a *matrix.Dense
	b []float64
	n int
}

// newSystem copies a and b into a fresh system. Inputs are assumed validated.
func newSystem(a matrix.Matrix, b []float64) (*system, error) {
	ad, err := matrix.NewFromMatrix(a)
	if err != nil {
		return nil, err
	}
	bc := make([]float64, len(b))
	copy(bc, b)

	return &system{a: ad, b: bc, n: ad.Rows()}, nil
}

// swapRows exchanges rows i and j of A and b.
func (s *system) swapRows(i, j int) error {
	if err := s.a.SwapRows(i, j); err != nil {
		return err
	}
	s.b[i], s.b[j] = s.b[j], s.b[i]

	return nil
}

// divideRow divides row i of A and b by pivot, then pins A[i,i] to
// exactly 1.
func (s *system) divideRow(i int, pivot float64) error {
	if err := s.a.DivRow(i, pivot); err != nil {
		return err
	}
	v := s.b[i] / pivot
	if !isFinite(v) {
		return fmt.Errorf("rhs[%d]: %w", i, ErrNaNInf)
	}
	s.b[i] = v

	return s.a.Set(i, i, 1)
}

// eliminateRow performs row[target] -= factor*row[source] on A and b, then
// pins A[target, source] to exactly 0. Columns left of source are already
// zero in the source row and are skipped.
func (s *system) eliminateRow(target, source int, factor float64) error {
	if err := s.a.SubRowMultiple(target, source, factor, source); err != nil {
		return err
	}
	v := s.b[target] - factor*s.b[source]
	if !isFinite(v) {
		return fmt.Errorf("rhs[%d]: %w", target, ErrNaNInf)
	}
	s.b[target] = v

	return s.a.Set(target, source, 0)
}

// snapshot returns the augmented [A|b] matrix as an independent copy.
func (s *system) snapshot() *matrix.Dense {
	rows := make([][]float64, s.n)
	for i := range rows {
		row, _ := s.a.RowCopy(i) // i < n
		rows[i] = append(row, s.b[i])
	}
	aug, _ := matrix.NewFromRows(rows) // n ≥ 1 after validation

	return aug
}

// solution returns a copy of the reduced right-hand side.
func (s *system) solution() []float64 {
	x := make([]float64, s.n)
	copy(x, s.b)

	return x
}

// factors is the (P, L, U) working state of one Decompose call.
type factors struct {
	p, l, u *matrix.Dense
	perm    []int // perm[i] = original row now at position i
	swaps   int
	n       int
}

// newFactors sets U = copy(a), L = I, P = I. Input is assumed validated.
func newFactors(a matrix.Matrix) (*factors, error) {
	u, err := matrix.NewFromMatrix(a)
	if err != nil {
		return nil, err
	}
	n := u.Rows()
	l, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	p, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return &factors{p: p, l: l, u: u, perm: perm, n: n}, nil
}

// swapRows exchanges rows k and r at step k: U over columns k..n-1 (earlier
// columns are finalized zeros), L over the computed multipliers 0..k-1 only,
// P over full rows.
func (f *factors) swapRows(k, r int) error {
	if err := f.u.SwapRowsRange(k, r, k, f.n); err != nil {
		return err
	}
	if err := f.l.SwapRowsRange(k, r, 0, k); err != nil {
		return err
	}
	if err := f.p.SwapRows(k, r); err != nil {
		return err
	}
	f.perm[k], f.perm[r] = f.perm[r], f.perm[k]
	f.swaps++

	return nil
}

// eliminateRow stores the multiplier L[i,k] and clears U[i,k] against the
// pivot row k: U[i,k+1:] -= mult*U[k,k+1:], U[i,k] = 0 exactly.
func (f *factors) eliminateRow(i, k int, mult float64) error {
	if err := f.l.Set(i, k, mult); err != nil {
		return err
	}
	if err := f.u.SubRowMultiple(i, k, mult, k+1); err != nil {
		return err
	}

	return f.u.Set(i, k, 0)
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
