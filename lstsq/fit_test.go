// SPDX-License-Identifier: MIT
package lstsq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lstsq/lstsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadratic(t float64) float64 { return 1 + 2*t - 3*t*t }

// TestFit_RecoversPolynomial fits a quadratic with enough and with spare
// coefficients; the spare one must vanish.
func TestFit_RecoversPolynomial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{"exact degree", 3, []float64{1, 2, -3}},
		{"spare coefficient", 4, []float64{1, 2, -3, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fit, err := lstsq.Fit(10, tc.n, quadratic).Get()
			require.NoError(t, err)

			require.Len(t, fit.Coefficients, tc.n)
			for j, w := range tc.want {
				assert.InDelta(t, w, fit.Coefficients[j], 1e-9, "coefficient %d", j)
			}
			assert.InDelta(t, 0, fit.Residual, 1e-10)
			assert.Len(t, fit.Observations, 10)
			assert.InDelta(t, quadratic(0.3), fit.Eval(0.3), 1e-9)
		})
	}
}

// TestFit_Descending checks coefficients follow the design's power order.
func TestFit_Descending(t *testing.T) {
	t.Parallel()

	fit, err := lstsq.Fit(6, 3, quadratic, lstsq.WithDescending()).Get()
	require.NoError(t, err)

	assert.True(t, fit.Design.Descending)
	assert.InDelta(t, -3, fit.Coefficients[0], 1e-9)
	assert.InDelta(t, 2, fit.Coefficients[1], 1e-9)
	assert.InDelta(t, 1, fit.Coefficients[2], 1e-9)
	assert.InDelta(t, 1.33, fit.Eval(0.3), 1e-9)
}

// TestFit_Underfit approximates a line through a cubic's samples.
func TestFit_Underfit(t *testing.T) {
	t.Parallel()

	fit, err := lstsq.Fit(20, 2, func(t float64) float64 { return t * t * t }, lstsq.WithDomain(-1, 1)).Get()
	require.NoError(t, err)
	assert.Greater(t, fit.Residual, 0.0)
	assert.InDelta(t, 0, fit.Coefficients[0], 1e-12, "odd function has no intercept")
}

func TestFit_Invalid(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, lstsq.Fit(5, 2, nil).Err(), lstsq.ErrNilFunction)
	assert.ErrorIs(t, lstsq.Fit(0, 2, quadratic).Err(), lstsq.ErrNonPositiveDim)
	assert.ErrorIs(t, lstsq.Fit(2, 3, quadratic).Err(), lstsq.ErrUnderdetermined)
	assert.ErrorIs(t, lstsq.Fit(3, 2, func(float64) float64 { return math.NaN() }).Err(), lstsq.ErrInvalidInput)
}

func TestFitting_EvalEmpty(t *testing.T) {
	t.Parallel()

	assert.Zero(t, lstsq.Fitting{}.Eval(2))
}
