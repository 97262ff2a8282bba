// SPDX-License-Identifier: MIT
package lstsq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lstsq/lstsq"
	"github.com/katalvlaran/lstsq/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResidualNorm_Exact pins the documented zero-residual scenario.
func TestResidualNorm_Exact(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 0}, {1, 1}})
	res := lstsq.ResidualNorm(a, []float64{1, 1}, []float64{1, 2})

	norm, ok := res.Value()
	require.True(t, ok, "a zero norm is still a valid result")
	assert.Equal(t, 0.0, norm)
}

func TestResidualNorm_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    [][]float64
		x, b []float64
		want float64
	}{
		{"3-4-5", [][]float64{{1, 0}, {0, 1}}, []float64{0, 0}, []float64{3, 4}, 5},
		{"tall", [][]float64{{1, 0}, {1, 0.5}, {1, 1}}, []float64{1, 1.5}, []float64{1, 2, 2.5}, 0.25},
		{"negative residuals", [][]float64{{2}, {2}}, []float64{1}, []float64{0, 0}, math.Sqrt(8)},
		{"large entries", [][]float64{{1}, {1}}, []float64{0}, []float64{1e200, 1e200}, math.Sqrt2 * 1e200},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := lstsq.ResidualNorm(mustRows(t, tc.a), tc.x, tc.b).Get()
			require.NoError(t, err)
			assert.InEpsilon(t, tc.want, got, 1e-12)
		})
	}
}

// TestResidualNorm_Properties checks non-negativity and zero on b = A·x.
func TestResidualNorm_Properties(t *testing.T) {
	t.Parallel()

	for seed := int64(10); seed < 20; seed++ {
		a, b := randomSystem(t, 8, 3, seed)
		x := b[:3]

		norm, err := lstsq.ResidualNorm(a, x, b).Get()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, norm, 0.0)

		ax, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		zero, err := lstsq.ResidualNorm(hidden{a}, x, ax).Get()
		require.NoError(t, err)
		assert.Equal(t, 0.0, zero)
	}
}

func TestResidualNorm_Invalid(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 0}, {1, 1}})
	tests := []struct {
		name  string
		a     matrix.Matrix
		x, b  []float64
		cause error
	}{
		{"nil A", nil, []float64{1, 1}, []float64{1, 2}, matrix.ErrNilMatrix},
		{"nil x", a, nil, []float64{1, 2}, matrix.ErrNilMatrix},
		{"nil b", a, []float64{1, 1}, nil, matrix.ErrNilMatrix},
		{"x too long", a, []float64{1, 1, 1}, []float64{1, 2}, matrix.ErrDimensionMismatch},
		{"b too short", a, []float64{1, 1}, []float64{1}, matrix.ErrDimensionMismatch},
		{"swapped x and b", mustRows(t, [][]float64{{1, 0}, {1, 1}, {0, 1}}), []float64{1, 2, 3}, []float64{1, 1}, matrix.ErrDimensionMismatch},
		{"Inf in x", a, []float64{math.Inf(-1), 1}, []float64{1, 2}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := lstsq.ResidualNorm(tc.a, tc.x, tc.b)
			require.False(t, res.IsValid())
			require.ErrorIs(t, res.Err(), lstsq.ErrInvalidInput)
			require.ErrorIs(t, res.Err(), tc.cause)
		})
	}
}
