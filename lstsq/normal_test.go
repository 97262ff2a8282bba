// SPDX-License-Identifier: MIT
package lstsq_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lstsq/lstsq"
	"github.com/katalvlaran/lstsq/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustRows builds a *matrix.Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSystem returns a deterministic m×n matrix and length-m vector.
func randomSystem(t *testing.T, m, n int, seed int64) (*matrix.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, m*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	a, err := matrix.NewDenseFromFlat(m, n, vals)
	require.NoError(t, err)
	b := make([]float64, m)
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}

	return a, b
}

// hidden masks the concrete *Dense type from the code under test.
type hidden struct{ matrix.Matrix }

// TestNormalEquations_TwoByTwo pins the documented scenario.
func TestNormalEquations_TwoByTwo(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 0}, {1, 1}})
	sys, err := lstsq.NormalEquations(a, []float64{1, 2}).Get()
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 1, 1, 1}, sys.A.RawData())
	assert.Equal(t, []float64{3, 2}, sys.B)
}

// TestNormalEquations_MatchesGonum compares against AᵗA and Aᵗb from gonum.
func TestNormalEquations_MatchesGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		a, b := randomSystem(t, 12, 4, seed)
		sys, err := lstsq.NormalEquations(a, b).Get()
		require.NoError(t, err)

		require.Equal(t, 4, sys.A.Rows())
		require.Equal(t, 4, sys.A.Cols())
		require.Len(t, sys.B, 4)
		require.NoError(t, matrix.ValidateSymmetric(sys.A, 0), "AᵗA must be exactly symmetric")

		ga := mat.NewDense(12, 4, a.RawData())
		var wantA mat.Dense
		wantA.Mul(ga.T(), ga)
		var wantB mat.VecDense
		wantB.MulVec(ga.T(), mat.NewVecDense(12, b))

		got := mat.NewDense(4, 4, sys.A.RawData())
		assert.True(t, mat.EqualApprox(got, &wantA, 1e-12))
		for j := 0; j < 4; j++ {
			assert.InDelta(t, wantB.AtVec(j), sys.B[j], 1e-12)
		}
	}
}

// TestNormalEquations_GenericMatrix runs the At/Set fallback kernels.
func TestNormalEquations_GenericMatrix(t *testing.T) {
	t.Parallel()

	a, b := randomSystem(t, 6, 3, 42)
	fast, err := lstsq.NormalEquations(a, b).Get()
	require.NoError(t, err)
	slow, err := lstsq.NormalEquations(hidden{a}, b).Get()
	require.NoError(t, err)

	assert.Equal(t, fast.A.RawData(), slow.A.RawData())
	assert.Equal(t, fast.B, slow.B)
}

// TestNormalEquations_DoesNotMutate checks inputs are left untouched.
func TestNormalEquations_DoesNotMutate(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := []float64{1, 2, 3}
	before := a.RawData()

	require.True(t, lstsq.NormalEquations(a, b).IsValid())
	assert.Equal(t, before, a.RawData())
	assert.Equal(t, []float64{1, 2, 3}, b)
}

// TestNormalEquations_Invalid covers nil, shape and numeric-policy failures.
func TestNormalEquations_Invalid(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 0}, {1, 1}})
	var typedNil *matrix.Dense

	tests := []struct {
		name  string
		a     matrix.Matrix
		b     []float64
		cause error
	}{
		{"nil A", nil, []float64{1, 2}, matrix.ErrNilMatrix},
		{"typed nil A", typedNil, []float64{1, 2}, matrix.ErrNilMatrix},
		{"nil pointer implementation", (*hidden)(nil), []float64{1, 2}, matrix.ErrNilMatrix},
		{"nil b", a, nil, matrix.ErrNilMatrix},
		{"short b", a, []float64{1}, matrix.ErrDimensionMismatch},
		{"long b", a, []float64{1, 2, 3}, matrix.ErrDimensionMismatch},
		{"empty b", a, []float64{}, matrix.ErrDimensionMismatch},
		{"NaN in b", a, []float64{1, math.NaN()}, matrix.ErrNaNInf},
		{"Inf in A", mustRows(t, [][]float64{{1, math.Inf(1)}, {1, 1}}), []float64{1, 2}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := lstsq.NormalEquations(tc.a, tc.b)
			require.False(t, res.IsValid())
			_, ok := res.Value()
			require.False(t, ok)
			require.ErrorIs(t, res.Err(), lstsq.ErrInvalidInput)
			require.ErrorIs(t, res.Err(), tc.cause)
		})
	}
}

// TestNormalEquations_FiniteCheckOff lets non-finite values through.
func TestNormalEquations_FiniteCheckOff(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 0}, {1, 1}})
	res := lstsq.NormalEquations(a, []float64{math.NaN(), 1}, lstsq.WithFiniteCheck(false))
	sys, err := res.Get()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sys.B[0]))
}
