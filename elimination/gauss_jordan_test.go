// SPDX-License-Identifier: MIT

package elimination_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linsolve/elimination"
	"github.com/katalvlaran/linsolve/matrix"
)

// opaque hides the concrete *Dense so Solve takes the generic copy path.
type opaque struct{ matrix.Matrix }

// SolveSuite exercises Gauss-Jordan elimination on fixed fixtures.
type SolveSuite struct {
	suite.Suite
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

// TestThreeByThree solves a system with a pivot swap at the first step.
func (s *SolveSuite) TestThreeByThree() {
	a := mustRows(s.T(), [][]float64{
		{1, 1, 1},
		{2, -1, 3},
		{5, 3, -6},
	})
	b := []float64{3, 4, 2}

	x, err := elimination.Solve(a, b)
	require.NoError(s.T(), err)
	require.Len(s.T(), x, 3)
	requireResidual(s.T(), a, x, b)
	for i, want := range []float64{1, 1, 1} {
		require.InDelta(s.T(), want, x[i], residualTol)
	}
}

// TestOneByOne covers the degenerate order-1 system.
func (s *SolveSuite) TestOneByOne() {
	x, err := elimination.Solve(mustRows(s.T(), [][]float64{{2}}), []float64{4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{2}, x)
}

// TestSubnormalPivot divides by a pivot whose reciprocal overflows.
func (s *SolveSuite) TestSubnormalPivot() {
	a := mustRows(s.T(), [][]float64{{1e-310}})
	b := []float64{1e-300}

	x, err := elimination.Solve(a, b)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), 1e10, x[0], 1e-12)

	d, err := elimination.Decompose(a)
	require.NoError(s.T(), err)
	y, err := d.Solve(b)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), y[0], x[0], 1e-12)

	rec := &elimination.Recorder{}
	_, err = elimination.Solve(a, b, elimination.WithTracer(rec))
	require.NoError(s.T(), err)
	require.Len(s.T(), rec.Events, 1)
	require.True(s.T(), math.IsInf(rec.Events[0].Factor, 1))
}

// TestIdentity returns b unchanged.
func (s *SolveSuite) TestIdentity() {
	id, err := matrix.NewIdentity(4)
	require.NoError(s.T(), err)
	b := []float64{1, -2, 3.5, 0}

	x, err := elimination.Solve(id, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), b, x)
}

// TestGenericMatrix accepts any Matrix implementation.
func (s *SolveSuite) TestGenericMatrix() {
	a := mustRows(s.T(), [][]float64{{0, 2}, {3, 1}})
	b := []float64{4, 5}

	x, err := elimination.Solve(opaque{a}, b)
	require.NoError(s.T(), err)
	requireResidual(s.T(), a, x, b)
}

// TestRandomSystems checks the residual bound across sizes.
func (s *SolveSuite) TestRandomSystems() {
	for _, n := range []int{2, 5, 16, 40} {
		a, b := diagDominant(s.T(), n, int64(n))
		x, err := elimination.Solve(a, b)
		require.NoError(s.T(), err, "n=%d", n)
		requireResidual(s.T(), a, x, b)
	}
}

// TestSingular covers zero columns and dependent rows.
func (s *SolveSuite) TestSingular() {
	cases := []struct {
		name string
		a    [][]float64
		step int
	}{
		{"zero first column", [][]float64{{0, 1}, {0, 1}}, 0},
		{"duplicate rows", [][]float64{{1, 2}, {1, 2}}, 1},
		{"dependent 3x3", [][]float64{{1, 2, 3}, {1, 2, 3}, {4, 5, 6}}, 2},
		{"zero 1x1", [][]float64{{0}}, 0},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			a := mustRows(s.T(), tc.a)
			x, err := elimination.Solve(a, make([]float64, len(tc.a)))
			require.Nil(s.T(), x)
			require.ErrorIs(s.T(), err, elimination.ErrSingular)

			var se *elimination.SingularError
			require.True(s.T(), errors.As(err, &se))
			require.Equal(s.T(), "Solve", se.Op)
			require.Equal(s.T(), tc.step, se.Step)
		})
	}
}

// TestValidation checks the validation order.
func (s *SolveSuite) TestValidation() {
	var typedNil *matrix.Dense
	_, err := elimination.Solve(nil, []float64{1})
	require.ErrorIs(s.T(), err, elimination.ErrNilMatrix)
	_, err = elimination.Solve(typedNil, []float64{1})
	require.ErrorIs(s.T(), err, elimination.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(s.T(), err)
	// non-square wins over a wrong-length b
	_, err = elimination.Solve(rect, []float64{1})
	require.ErrorIs(s.T(), err, elimination.ErrNonSquare)

	a := mustRows(s.T(), [][]float64{{1, 2}, {3, 4}})
	_, err = elimination.Solve(a, nil)
	require.ErrorIs(s.T(), err, elimination.ErrDimensionMismatch)
	_, err = elimination.Solve(a, []float64{1, 2, 3})
	require.ErrorIs(s.T(), err, elimination.ErrDimensionMismatch)
	_, err = elimination.Solve(a, []float64{1, math.NaN()})
	require.ErrorIs(s.T(), err, elimination.ErrNaNInf)
}

// TestInputsUnchanged verifies copy-on-entry for A and b.
func (s *SolveSuite) TestInputsUnchanged() {
	rows := [][]float64{{0, 2, 1}, {4, 1, -1}, {2, 3, 5}}
	a := mustRows(s.T(), rows)
	b := []float64{1, 2, 3}
	bCopy := append([]float64(nil), b...)

	x, err := elimination.Solve(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), rows, toRows(s.T(), a))
	require.Equal(s.T(), bCopy, b)

	// the result is not aliased to b
	x[0] = 99
	require.Equal(s.T(), bCopy, b)
}

// TestDeterministic compares repeated runs bit for bit.
func (s *SolveSuite) TestDeterministic() {
	a, b := diagDominant(s.T(), 12, 7)
	first, err := elimination.Solve(a, b)
	require.NoError(s.T(), err)
	for i := 0; i < 5; i++ {
		again, err := elimination.Solve(a, b)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
}

// TestSolve_Concurrent runs independent solves in parallel.
func TestSolve_Concurrent(t *testing.T) {
	const workers = 8
	a, b := diagDominant(t, 20, 99)
	want, err := elimination.Solve(a, b)
	require.NoError(t, err)

	results := make([][]float64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = elimination.Solve(a, b)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		require.Equal(t, want, results[w])
	}
}
