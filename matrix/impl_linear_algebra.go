// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, matrix multiplication, Gram products and matrix-vector kernels.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Every kernel has a *Dense fast-path and an At/Set fallback with the
//     same loop order, so both paths produce bitwise-identical results.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opGram      = "Gram"
	opMatVec    = "MatVec"
	opTMatVec   = "TMatVec"
	opSubVec    = "SubVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A × B.
// MAIN DESCRIPTION:
//   - Classic triple loop with a row-major fast-path for two *Dense operands.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B). Allocate Dense(r, c).
//   - Stage 2: Dense fast-path uses i→k→j order; fallback uses i→j→k via At/Set.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - For each (i,j) the products are summed in ascending k on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// MAIN DESCRIPTION:
//   - Full materialization; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - If you only need Aᵀ*x, use TMatVec instead of forming Aᵀ.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Gram computes G = mᵀ·m (c×c) without materializing mᵀ.
// MAIN DESCRIPTION:
//   - Normal-equations left-hand side. Only the upper triangle is accumulated;
//     the lower triangle is mirrored, so G is exactly symmetric.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(c, c).
//   - Stage 2: for each row k, add m[k,p]*m[k,q] into G[p,q] for p ≤ q.
//   - Stage 3: mirror G[p,q] into G[q,p].
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - G[p,q] sums products in ascending k, the same order as Mul(Transpose(m), m).
//
// Complexity:
//   - Time O(r*c²/2), Space O(c²).
func Gram(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, cols)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	row := make([]float64, cols) // current row of m
	var k, p, q int
	var base int
	for k = 0; k < rows; k++ {
		if err = loadRow(m, k, row); err != nil {
			return nil, matrixErrorf(opGram, err)
		}
		for p = 0; p < cols; p++ {
			base = p * cols
			for q = p; q < cols; q++ {
				res.data[base+q] += row[p] * row[q]
			}
		}
	}
	for p = 0; p < cols; p++ {
		for q = p + 1; q < cols; q++ {
			res.data[q*cols+p] = res.data[p*cols+q]
		}
	}

	return res, nil
}

// loadRow copies row i of m into dst (len(dst) == m.Cols()).
func loadRow(m Matrix, i int, dst []float64) error {
	if d, ok := m.(*Dense); ok {
		copy(dst, d.data[i*d.c:(i+1)*d.c])
		return nil
	}
	var err error
	for j := range dst {
		if dst[j], err = m.At(i, j); err != nil {
			return err
		}
	}

	return nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// TMatVec computes y = mᵀ * x without forming mᵀ.
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Determinism: y[j] sums m[k,j]*x[k] in ascending k.
// Complexity: Time O(r*c), Space O(c) for y.
func TMatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)
	row := make([]float64, cols)

	var k, j int
	var err error
	for k = 0; k < rows; k++ {
		if err = loadRow(m, k, row); err != nil {
			return nil, matrixErrorf(opTMatVec, err)
		}
		for j = 0; j < cols; j++ {
			y[j] += row[j] * x[k]
		}
	}

	return y, nil
}

// SubVec returns a - b elementwise.
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (length differs).
// Complexity: O(n).
func SubVec(a, b []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opSubVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, len(a)); err != nil {
		return nil, matrixErrorf(opSubVec, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}
