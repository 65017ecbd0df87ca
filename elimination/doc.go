// SPDX-License-Identifier: MIT

// Package elimination solves dense linear systems and factors square matrices
// with Gaussian elimination and partial pivoting.
//
// Two entry points share one pivot rule and one set of row primitives:
//
//   - Solve runs Gauss-Jordan elimination on a private copy of [A|b] and
//     returns x with A·x = b.
//   - Decompose produces P·A = L·U, with L unit lower-triangular, U upper
//     triangular and P a row permutation. The resulting *Decomposition can
//     solve further right-hand sides in O(n^2) and report det(A).
//
// Pivoting:
//
//	At step k the candidate rows are k..n-1 of column k. The row with the
//	largest absolute value wins; ties go to the lowest index. A maximum of
//	exactly zero is reported as *SingularError carrying the step. No
//	tolerance is applied: nearly singular matrices are factored and may
//	carry large rounding error.
//
// Errors:
//
//	Every failure matches a sentinel with errors.Is: ErrNilMatrix,
//	ErrNonSquare, ErrDimensionMismatch, ErrNaNInf, ErrSingular. Singularity
//	is additionally available through errors.As as *SingularError.
//	Validation always precedes copying, and inputs are never mutated.
//
// Tracing:
//
//	WithTracer installs a sink that receives an Event after every swap,
//	scale and elimination, each with a snapshot of the working matrix.
//	Recorder keeps events in memory; NewSlogTracer writes them through
//	log/slog at Debug level.
//
// Concurrency:
//
//	All calls are synchronous and keep their state local; independent calls
//	may run in parallel without locking. A Decomposition is read-only and
//	safe to share.
package elimination
