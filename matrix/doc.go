// Package matrix offers the dense value type used by the elimination engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy (NaN/±Inf are rejected by default).
//   - In-place elementary row operations (SwapRows, SwapRowsRange, ScaleRow,
//     DivRow, SubRowMultiple): the single mutation surface of Gaussian
//     elimination.
//   - Constructors and exports (NewDense, NewIdentity, NewFromRows,
//     NewFromMatrix, ToRows).
//   - Verification helpers (Mul, MatVec, MaxAbsDiff, AllClose) and
//     structural predicates (IsPermutation, IsUnitLowerTriangular,
//     IsUpperTriangular).
//
// All failures are reported through the sentinels in errors.go and can be
// matched with errors.Is. Nothing in this package panics on user input.
//
// See package elimination for Gauss-Jordan solving and LU factorization.
package matrix
