// SPDX-License-Identifier: MIT

package lstsq

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error class callers need to match.
// Every Invalid Result wraps it together with a more specific cause, which is
// either one of the sentinels below or a matrix sentinel (ErrNilMatrix,
// ErrDimensionMismatch, ErrNaNInf, ErrSingular, ...).
var ErrInvalidInput = errors.New("lstsq: invalid input")

var (
	// ErrNonPositiveDim is returned when a requested dimension is <= 0.
	ErrNonPositiveDim = errors.New("lstsq: dimension must be > 0")

	// ErrWrongType is returned by the dynamic entry points when a scalar
	// argument is not a Go integer.
	ErrWrongType = errors.New("lstsq: wrong argument type")

	// ErrDimOverflow is returned by the dynamic entry points when an integer
	// argument has the right type but does not fit in int.
	ErrDimOverflow = errors.New("lstsq: dimension overflows int")

	// ErrNotMatrix is returned when an argument cannot be read as a 2-D
	// rectangular numeric container.
	ErrNotMatrix = errors.New("lstsq: argument is not a matrix")

	// ErrNotVector is returned when an argument cannot be read as a 1-D
	// numeric container.
	ErrNotVector = errors.New("lstsq: argument is not a vector")

	// ErrUnderdetermined is returned by SolveQR when A has fewer rows than columns.
	ErrUnderdetermined = errors.New("lstsq: system has fewer equations than unknowns")

	// ErrNilFunction is returned by Fit when no observation function is given.
	ErrNilFunction = errors.New("lstsq: observation function is nil")
)

// argErrorf tags a cause with the name of the offending argument.
func argErrorf(arg string, err error) error {
	return fmt.Errorf("%s: %w", arg, err)
}
