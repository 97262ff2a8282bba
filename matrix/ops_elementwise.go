// SPDX-License-Identifier: MIT
// Package matrix: tolerant comparisons.
//
// Both helpers use the numpy/pytest relation |a-b| ≤ atol + rtol*|b|, so b is
// the reference side. Tolerances are treated as |rtol|, |atol|.

package matrix

import "math"

const (
	opAllClose    = "AllClose"
	opVecAllClose = "VecAllClose"
)

// normalizeTolerances rejects non-finite tolerances and flips negative ones.
func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// closeTo reports |a-b| ≤ atol + rtol*|b|.
func closeTo(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is the vector counterpart of AllClose.
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	if a == nil {
		return false, matrixErrorf(opVecAllClose, ErrNilMatrix)
	}
	if err = ValidateVecLen(b, len(a)); err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	for i := range a {
		if !closeTo(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
