// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lstsq/matrix"
)

const (
	opSolveNormal = "SolveNormal"
	opSolveQR     = "SolveQR"
)

// SolveNormal solves min‖Ax − b‖₂ through the normal equations:
// reduce to AᵗA·x = Aᵗb, then solve by Cholesky factorization.
//
// Invalid when (A, b) is invalid for NormalEquations, or with
// matrix.ErrSingular when AᵗA is not positive definite (A rank deficient).
// Prefer SolveQR when A is ill-conditioned.
//
// Complexity: Time O(m*n² + n³), Space O(n²).
func SolveNormal(a matrix.Matrix, b []float64, opts ...Option) Result[[]float64] {
	cfg := gatherOptions(opts)

	if err := checkSystem(a, b, cfg); err != nil {
		return rejectSystem[[]float64](cfg, opSolveNormal, a, err)
	}
	sys, err := reduce(a, b, cfg)
	if err != nil {
		return rejectSystem[[]float64](cfg, opSolveNormal, a, err)
	}

	n := sys.A.Cols()
	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(n, sys.A.RawData())); !ok {
		return rejectSolver(cfg, opSolveNormal, a, matrix.ErrSingular)
	}
	x := mat.NewVecDense(n, nil)
	if err = chol.SolveVecTo(x, mat.NewVecDense(n, sys.B)); err != nil {
		return rejectSolver(cfg, opSolveNormal, a, fmt.Errorf("%w: %w", matrix.ErrSingular, err))
	}

	return Ok(vecData(x))
}

// SolveQR solves min‖Ax − b‖₂ directly from a QR factorization of A,
// avoiding the squared conditioning of the normal equations.
//
// Invalid when (A, b) is invalid, with ErrUnderdetermined when A has fewer
// rows than columns, or with matrix.ErrSingular when A is rank deficient.
//
// Complexity: Time O(m*n²), Space O(m*n).
func SolveQR(a matrix.Matrix, b []float64, opts ...Option) Result[[]float64] {
	cfg := gatherOptions(opts)

	if err := checkSystem(a, b, cfg); err != nil {
		return rejectSystem[[]float64](cfg, opSolveQR, a, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if rows < cols {
		return rejectSystem[[]float64](cfg, opSolveQR, a, argErrorf(argA, ErrUnderdetermined))
	}

	ga, err := toGonum(a)
	if err != nil {
		return rejectSystem[[]float64](cfg, opSolveQR, a, err)
	}
	var qr mat.QR
	qr.Factorize(ga)
	x := mat.NewVecDense(cols, nil)
	if err = qr.SolveVecTo(x, false, mat.NewVecDense(rows, b)); err != nil {
		return rejectSolver(cfg, opSolveQR, a, fmt.Errorf("%w: %w", matrix.ErrSingular, err))
	}

	return Ok(vecData(x))
}

// rejectSolver logs a numerical failure on otherwise valid input.
func rejectSolver(cfg config, op string, a matrix.Matrix, err error) Result[[]float64] {
	cfg.logger.Warn("system not solvable",
		zap.String("op", op),
		zap.Int("rows", a.Rows()),
		zap.Int("cols", a.Cols()),
		zap.Error(err),
	)

	return Invalid[[]float64](err)
}

// toGonum copies a validated Matrix into a gonum *mat.Dense.
func toGonum(a matrix.Matrix) (*mat.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return mat.NewDense(d.Rows(), d.Cols(), d.RawData()), nil
	}
	out := mat.NewDense(a.Rows(), a.Cols(), nil)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// vecData copies the contents of a gonum vector.
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}
