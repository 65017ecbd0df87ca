// SPDX-License-Identifier: MIT

// Package elimination: error surface.
//
// Sentinels are re-exported from package matrix so callers can match every
// failure of Solve/Decompose with errors.Is through a single import.
// Singularity additionally carries the failing step in *SingularError.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrNilMatrix is returned when a nil matrix is passed.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrNonSquare is returned when the coefficient matrix is not n×n.
	// Detected before any copy or mutation.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrDimensionMismatch is returned when the right-hand side length
	// differs from the matrix order.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingular is matched by every *SingularError.
	ErrSingular = matrix.ErrSingular

	// ErrNaNInf is returned when an input entry is non-finite or a row
	// operation overflows.
	ErrNaNInf = matrix.ErrNaNInf
)

// SingularError reports that every candidate pivot at elimination step Step
// was exactly zero. errors.Is(err, ErrSingular) holds for it.
type SingularError struct {
	Op   string // operation that detected the zero pivot
	Step int    // zero-based elimination step (equals the pivot column)
}

// Error implements error.
func (e *SingularError) Error() string {
	return fmt.Sprintf("%s: step %d: %v", e.Op, e.Step, ErrSingular)
}

// Unwrap exposes ErrSingular to errors.Is.
func (e *SingularError) Unwrap() error { return ErrSingular }

// opErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
