// SPDX-License-Identifier: MIT

package lstsq

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lstsq/matrix"
)

const opDesign = "DesignSystem"

// Design is a Vandermonde design system: A is m×n and T holds the m sample
// points A was built from. Descending records the column power order.
type Design struct {
	A          *matrix.Dense
	T          []float64
	Descending bool
}

// DesignSystem builds the m×n Vandermonde design matrix over m evenly spaced
// sample points.
//
// Implementation:
//   - Stage 1: checkDim(m) ∧ checkDim(n), then allocate A; shapes beyond
//     matrix.MaxElements are Invalid.
//   - Stage 2: T = linspace(lo, hi, m), endpoints included.
//   - Stage 3: A[i,j] = T[i]^j (or T[i]^(n-1-j) with WithDescending), by
//     repeated multiplication, so the degree-0 column is exactly 1.
//
// Edge cases:
//   - m == 1 yields the single sample point lo.
//   - n == 1 yields a single column of ones.
//
// Complexity: Time O(m*n), Space O(m*n).
func DesignSystem(m, n int, opts ...Option) Result[Design] {
	cfg := gatherOptions(opts)

	if err := checkDim(argM, m); err != nil {
		return rejectDims[Design](cfg, opDesign, m, n, err)
	}
	if err := checkDim(argN, n); err != nil {
		return rejectDims[Design](cfg, opDesign, m, n, err)
	}

	a, err := matrix.NewDense(m, n)
	if err != nil {
		return rejectDims[Design](cfg, opDesign, m, n, err)
	}
	t := linspace(cfg.lo, cfg.hi, m)
	if err = vandermonde(a, t, cfg.descending); err != nil {
		return rejectDims[Design](cfg, opDesign, m, n, err)
	}

	return Ok(Design{A: a, T: t, Descending: cfg.descending})
}

// rejectDims logs and builds the Invalid Result for a dimension failure.
func rejectDims[T any](cfg config, op string, m, n int, err error) Result[T] {
	cfg.logger.Debug("invalid input",
		zap.String("op", op),
		zap.Int("m", m),
		zap.Int("n", n),
		zap.Error(err),
	)

	return Invalid[T](err)
}

// linspace returns num evenly spaced values over [lo, hi]; the last value is
// exactly hi and a single-point grid is [lo].
func linspace(lo, hi float64, num int) []float64 {
	t := make([]float64, num)
	if num == 1 {
		t[0] = lo
		return t
	}
	floats.Span(t, lo, hi)
	t[num-1] = hi

	return t
}

// vandermonde fills a (len(t)×n) with the powers of t.
func vandermonde(a *matrix.Dense, t []float64, descending bool) error {
	var (
		n         = a.Cols()
		i, p, col int
		pow       float64
		err       error
	)
	for i = 0; i < len(t); i++ {
		pow = 1
		for p = 0; p < n; p++ {
			col = p
			if descending {
				col = n - 1 - p
			}
			if err = a.Set(i, col, pow); err != nil {
				return err
			}
			pow *= t[i]
		}
	}

	return nil
}
