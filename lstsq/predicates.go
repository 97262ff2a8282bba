// SPDX-License-Identifier: MIT

// Package lstsq: input predicates.
//
// Every operation validates its arguments as an explicit conjunction of the
// per-argument checks below, evaluated in argument order. The first failing
// check names the argument and becomes the cause of the Invalid Result.
package lstsq

import (
	"github.com/katalvlaran/lstsq/matrix"
)

// Argument names used to tag causes.
const (
	argM = "m"
	argN = "n"
	argA = "A"
	argB = "b"
	argX = "x"
	argF = "f"
)

// checkDim accepts a strictly positive dimension.
func checkDim(arg string, v int) error {
	if v <= 0 {
		return argErrorf(arg, ErrNonPositiveDim)
	}

	return nil
}

// checkCoefficients accepts a non-nil matrix with a non-empty shape and,
// under the finite policy, only finite entries.
func checkCoefficients(a matrix.Matrix, finite bool) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return argErrorf(argA, err)
	}
	if a.Rows() <= 0 || a.Cols() <= 0 {
		return argErrorf(argA, matrix.ErrInvalidDimensions)
	}
	if finite {
		if err := matrix.ValidateFinite(a); err != nil {
			return argErrorf(argA, err)
		}
	}

	return nil
}

// checkVector accepts a non-nil vector of exactly n entries and, under the
// finite policy, only finite entries.
func checkVector(arg string, v []float64, n int, finite bool) error {
	if err := matrix.ValidateVecLen(v, n); err != nil {
		return argErrorf(arg, err)
	}
	if finite {
		if err := matrix.ValidateFiniteVec(v); err != nil {
			return argErrorf(arg, err)
		}
	}

	return nil
}

// checkSystem is the conjunction used by the reducer and the solvers:
// A is a valid coefficient matrix and b is a valid length-m observation vector.
func checkSystem(a matrix.Matrix, b []float64, cfg config) error {
	if err := checkCoefficients(a, cfg.finiteCheck); err != nil {
		return err
	}

	return checkVector(argB, b, a.Rows(), cfg.finiteCheck)
}
