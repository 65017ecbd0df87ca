// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Single source of truth: every Dense constructor reads the defaults below.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion,
	// Set and the in-place row primitives.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the absolute tolerance used by structural predicates
	// (IsUpperTriangular etc.) when callers have no better value.
	DefaultEpsilon = 1e-9
)
