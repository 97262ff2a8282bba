// SPDX-License-Identifier: MIT

package lstsq

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lstsq/matrix"
)

const opNormal = "NormalEquations"

// Normal is the square normal-equations system A·x = B equivalent to
// min‖A₀x − b₀‖₂, with A = A₀ᵗA₀ (n×n, symmetric) and B = A₀ᵗb₀ (length n).
type Normal struct {
	A *matrix.Dense
	B []float64
}

// NormalEquations reduces the rectangular system (A, b) to (AᵗA, Aᵗb).
//
// Implementation:
//   - Stage 1: checkCoefficients(A) ∧ checkVector(b, A.Rows()).
//   - Stage 2: AᵗA via matrix.Gram, Aᵗb via matrix.TMatVec (no explicit Aᵗ).
//   - Stage 3: verify AᵗA symmetric within the configured tolerance.
//
// The system is not solved here; see SolveNormal and SolveQR.
// AᵗA squares the condition number of A. That is a property of the method,
// not something this function corrects.
//
// Complexity: Time O(m*n²), Space O(n²).
func NormalEquations(a matrix.Matrix, b []float64, opts ...Option) Result[Normal] {
	cfg := gatherOptions(opts)

	if err := checkSystem(a, b, cfg); err != nil {
		return rejectSystem[Normal](cfg, opNormal, a, err)
	}

	res, err := reduce(a, b, cfg)
	if err != nil {
		return rejectSystem[Normal](cfg, opNormal, a, err)
	}

	return Ok(res)
}

// reduce computes the normal system of an already validated (A, b).
func reduce(a matrix.Matrix, b []float64, cfg config) (Normal, error) {
	g, err := matrix.Gram(a)
	if err != nil {
		return Normal{}, err
	}
	rhs, err := matrix.TMatVec(a, b)
	if err != nil {
		return Normal{}, err
	}
	if err = matrix.ValidateSymmetric(g, cfg.eps); err != nil {
		return Normal{}, err
	}

	return Normal{A: g, B: rhs}, nil
}

// rejectSystem logs and builds the Invalid Result for a matrix-shaped input.
func rejectSystem[T any](cfg config, op string, a matrix.Matrix, err error) Result[T] {
	fields := []zap.Field{zap.String("op", op), zap.Error(err)}
	if matrix.ValidateNotNil(a) == nil {
		fields = append(fields, zap.Int("rows", a.Rows()), zap.Int("cols", a.Cols()))
	}
	cfg.logger.Debug("invalid input", fields...)

	return Invalid[T](err)
}
