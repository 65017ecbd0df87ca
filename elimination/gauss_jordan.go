// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

const opSolve = "Solve"

// Solve returns x with A·x = b using Gauss-Jordan elimination with partial
// pivoting.
//
// Implementation:
//   - Stage 1: validate (nil → square → len(b) → finite b) before any copy.
//   - Stage 2: copy A and b into a private augmented system.
//   - Stage 3: for each step i: pick the largest |A[r,i]|, r ≥ i, and swap it
//     into row i; divide row i by the pivot; clear column i in every other row.
//   - Stage 4: A is now the identity; the reduced b is the solution.
//
// Behavior highlights:
//   - a and b are never mutated; the returned slice is freshly allocated.
//   - No partial result is ever returned on failure.
//   - Every row j ≠ i is visited at each step, including rows whose factor is 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (validation).
//   - ErrNaNInf for non-finite input or an overflowing row operation.
//   - *SingularError{Op: "Solve", Step: i} when column i has no nonzero
//     candidate pivot at or below row i.
//
// Determinism:
//   - Fixed loop orders and a first-max tie-break: identical inputs give
//     bit-identical outputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, opErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, opErrorf(opSolve, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return nil, opErrorf(opSolve, err)
	}

	o := gatherOptions(opts...)
	sys, err := newSystem(a, b)
	if err != nil {
		return nil, opErrorf(opSolve, err)
	}

	var (
		i, j, p       int
		pivot, factor float64
	)
	for i = 0; i < n; i++ {
		// 1) partial pivoting
		var ok bool
		if p, ok = argMaxAbs(sys.a, i, i); !ok {
			return nil, &SingularError{Op: opSolve, Step: i}
		}
		if p != i {
			if err = sys.swapRows(i, p); err != nil {
				return nil, opErrorf(opSolve, err)
			}
			traceSystem(o, sys, Event{
				Kind: EventSwap, Step: i, Row: i, Source: p,
				Label: fmt.Sprintf("Step %d: Swap R%d with R%d", i+1, i+1, p+1),
			})
		}

		// 2) normalize the pivot row
		pivot, _ = sys.a.At(i, i)
		if err = sys.divideRow(i, pivot); err != nil {
			return nil, opErrorf(opSolve, fmt.Errorf("step %d: %w", i, err))
		}
		traceSystem(o, sys, Event{
			Kind: EventScale, Step: i, Row: i, Source: i, Factor: 1 / pivot,
			Label: fmt.Sprintf("Step %d: Scaling row %d", i+1, i+1),
		})

		// 3) clear column i everywhere else
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			factor, _ = sys.a.At(j, i)
			if err = sys.eliminateRow(j, i, factor); err != nil {
				return nil, opErrorf(opSolve, fmt.Errorf("step %d: %w", i, err))
			}
			traceSystem(o, sys, Event{
				Kind: EventEliminate, Step: i, Row: j, Source: i, Factor: factor,
				Label: fmt.Sprintf("Step %d.%d: Eliminating row %d", i+1, j+1, j+1),
			})
		}
	}

	return sys.solution(), nil
}

// traceSystem fills the common event fields and hands ev to the tracer.
func traceSystem(o Options, sys *system, ev Event) {
	if o.Tracer == nil {
		return
	}
	ev.Op = opSolve
	ev.Snapshot = sys.snapshot()
	o.Tracer.Trace(ev)
}
