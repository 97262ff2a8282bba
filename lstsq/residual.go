// SPDX-License-Identifier: MIT

package lstsq

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lstsq/matrix"
)

const opResidual = "ResidualNorm"

// ResidualNorm returns ‖b − A·x‖₂ for A (m×n), x (n) and b (m).
//
// Implementation:
//   - Stage 1: checkCoefficients(A) ∧ checkVector(x, n) ∧ checkVector(b, m).
//   - Stage 2: r = b − A·x.
//   - Stage 3: scaled L2 norm of r (no overflow for large entries).
//
// A value of 0 means x solves the system exactly.
// Complexity: Time O(m*n), Space O(m).
func ResidualNorm(a matrix.Matrix, x, b []float64, opts ...Option) Result[float64] {
	cfg := gatherOptions(opts)

	if err := checkCoefficients(a, cfg.finiteCheck); err != nil {
		return rejectSystem[float64](cfg, opResidual, a, err)
	}
	if err := checkVector(argX, x, a.Cols(), cfg.finiteCheck); err != nil {
		return rejectSystem[float64](cfg, opResidual, a, err)
	}
	if err := checkVector(argB, b, a.Rows(), cfg.finiteCheck); err != nil {
		return rejectSystem[float64](cfg, opResidual, a, err)
	}

	r, err := residual(a, x, b)
	if err != nil {
		return rejectSystem[float64](cfg, opResidual, a, err)
	}

	return Ok(floats.Norm(r, 2))
}

// residual computes b − A·x for validated operands.
func residual(a matrix.Matrix, x, b []float64) ([]float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, err
	}

	return matrix.SubVec(b, ax)
}
