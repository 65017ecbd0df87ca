// Package linsolve is a small, dependency-light toolkit for dense linear
// systems: Gauss-Jordan solving and LU factorization with partial pivoting.
//
// What is inside?
//
//	matrix/       - the dense float64 value type, sentinel errors, validators,
//	                products and the in-place row primitives
//	elimination/  - pivot selection, Solve (Gauss-Jordan), Decompose (P·A = L·U),
//	                substitution, determinants and step tracing
//	cmd/linsolve/ - a command-line front end reading YAML documents
//	examples/     - runnable programs (nodal analysis, least-squares fitting)
//
// Guarantees:
//
//   - Inputs are never mutated; results are freshly allocated.
//   - Identical inputs give bit-identical outputs.
//   - Every failure is matchable with errors.Is; singularity also carries the
//     failing step through *elimination.SingularError.
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
//	x, err := elimination.Solve(a, []float64{3, 5})
//
//	go get github.com/katalvlaran/linsolve
package linsolve
