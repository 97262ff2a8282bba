// SPDX-License-Identifier: MIT

package lstsq

import (
	"gonum.org/v1/gonum/floats"
)

const opFit = "Fit"

// Fitting is the outcome of Fit.
type Fitting struct {
	Design       Design    // sample grid and design matrix
	Observations []float64 // f evaluated at Design.T
	Coefficients []float64 // polynomial coefficients, in the design's power order
	Residual     float64   // ‖Observations − A·Coefficients‖₂
}

// Fit samples f on the m-point design grid and fits the n-coefficient
// polynomial that minimizes the squared error at the samples.
//
// Stages: DesignSystem(m, n) → b = f(T) → SolveQR(A, b) → ResidualNorm.
// Every option applies to each stage. Any stage's Invalid result is returned
// unchanged. When f is a polynomial of degree < n, the coefficients are
// recovered up to rounding and Residual is ~0.
func Fit(m, n int, f func(float64) float64, opts ...Option) Result[Fitting] {
	if f == nil {
		cfg := gatherOptions(opts)
		return rejectDims[Fitting](cfg, opFit, m, n, argErrorf(argF, ErrNilFunction))
	}

	design, err := DesignSystem(m, n, opts...).Get()
	if err != nil {
		return Result[Fitting]{err: err}
	}

	obs := make([]float64, len(design.T))
	for i, t := range design.T {
		obs[i] = f(t)
	}

	coef, err := SolveQR(design.A, obs, opts...).Get()
	if err != nil {
		return Result[Fitting]{err: err}
	}
	norm, err := ResidualNorm(design.A, coef, obs, opts...).Get()
	if err != nil {
		return Result[Fitting]{err: err}
	}

	return Ok(Fitting{
		Design:       design,
		Observations: obs,
		Coefficients: coef,
		Residual:     norm,
	})
}

// Eval evaluates the fitted polynomial at t, honoring the power order the
// design was built with.
func (fit Fitting) Eval(t float64) float64 {
	n := len(fit.Coefficients)
	if n == 0 {
		return 0
	}
	powers := make([]float64, n)
	pow := 1.0
	for p := 0; p < n; p++ {
		powers[p] = pow
		pow *= t
	}
	if fit.Design.Descending {
		floats.Reverse(powers)
	}

	return floats.Dot(powers, fit.Coefficients)
}
