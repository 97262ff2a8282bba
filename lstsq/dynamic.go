// SPDX-License-Identifier: MIT

// Package lstsq: dynamic entry points.
//
// DesignSystemOf, NormalEquationsOf and ResidualNormOf accept untyped
// arguments (decoded YAML/JSON, interface-typed callers) and coerce each one
// with an independent predicate before delegating to the typed functions.
// A wrong type is an ordinary Invalid Result, never a panic.
//
// Accepted shapes:
//   - integers: any Go integer kind; floats (even integral ones), bools and
//     strings are rejected.
//   - vectors: []float64, []int, or []any whose elements are numbers.
//   - matrices: matrix.Matrix, [][]float64, or []any of rows where every row
//     is a vector of the same length.
package lstsq

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/lstsq/matrix"
)

// DesignSystemOf is DesignSystem for untyped (m, n).
func DesignSystemOf(m, n any, opts ...Option) Result[Design] {
	mi, err := asInt(argM, m)
	if err != nil {
		return rejectDynamic[Design](opts, opDesign, err)
	}
	ni, err := asInt(argN, n)
	if err != nil {
		return rejectDynamic[Design](opts, opDesign, err)
	}

	return DesignSystem(mi, ni, opts...)
}

// NormalEquationsOf is NormalEquations for untyped (A, b).
func NormalEquationsOf(a, b any, opts ...Option) Result[Normal] {
	am, err := asMatrix(argA, a)
	if err != nil {
		return rejectDynamic[Normal](opts, opNormal, err)
	}
	bv, err := asVector(argB, b)
	if err != nil {
		return rejectDynamic[Normal](opts, opNormal, err)
	}

	return NormalEquations(am, bv, opts...)
}

// ResidualNormOf is ResidualNorm for untyped (A, x, b).
func ResidualNormOf(a, x, b any, opts ...Option) Result[float64] {
	am, err := asMatrix(argA, a)
	if err != nil {
		return rejectDynamic[float64](opts, opResidual, err)
	}
	xv, err := asVector(argX, x)
	if err != nil {
		return rejectDynamic[float64](opts, opResidual, err)
	}
	bv, err := asVector(argB, b)
	if err != nil {
		return rejectDynamic[float64](opts, opResidual, err)
	}

	return ResidualNorm(am, xv, bv, opts...)
}

// rejectDynamic logs a coercion failure.
func rejectDynamic[T any](opts []Option, op string, err error) Result[T] {
	cfg := gatherOptions(opts)

	return rejectSystem[T](cfg, op, nil, err)
}

// asInt accepts any Go integer kind. Values that do not fit in int are
// ErrDimOverflow, not ErrWrongType.
func asInt(arg string, v any) (int, error) {
	if v == nil {
		return 0, argErrorf(arg, ErrWrongType)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, argErrorf(arg, ErrDimOverflow)
		}
		return int(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, argErrorf(arg, ErrDimOverflow)
		}
		return int(u), nil
	default:
		return 0, argErrorf(arg, fmt.Errorf("%T: %w", v, ErrWrongType))
	}
}

// asFloat accepts integer and floating-point kinds. Bools are not numbers here.
func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// asVector reads a 1-D numeric container. The result never aliases v.
func asVector(arg string, v any) ([]float64, error) {
	switch vec := v.(type) {
	case []float64:
		if vec == nil {
			return nil, argErrorf(arg, ErrNotVector)
		}
		out := make([]float64, len(vec))
		copy(out, vec)
		return out, nil
	case []int:
		if vec == nil {
			return nil, argErrorf(arg, ErrNotVector)
		}
		out := make([]float64, len(vec))
		for i, x := range vec {
			out[i] = float64(x)
		}
		return out, nil
	case []any:
		if vec == nil {
			return nil, argErrorf(arg, ErrNotVector)
		}
		out := make([]float64, len(vec))
		for i, x := range vec {
			f, ok := asFloat(x)
			if !ok {
				return nil, argErrorf(arg, fmt.Errorf("element %d is %T: %w", i, x, ErrNotVector))
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, argErrorf(arg, fmt.Errorf("%T: %w", v, ErrNotVector))
	}
}

// asMatrix reads a 2-D rectangular numeric container.
func asMatrix(arg string, v any) (matrix.Matrix, error) {
	switch m := v.(type) {
	case matrix.Matrix:
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, argErrorf(arg, err)
		}
		return m, nil
	case [][]float64:
		d, err := matrix.NewDenseFromRows(m)
		if err != nil {
			return nil, argErrorf(arg, fmt.Errorf("%w: %w", ErrNotMatrix, err))
		}
		return d, nil
	case []any:
		rows := make([][]float64, len(m))
		for i, row := range m {
			r, err := asVector(fmt.Sprintf("row %d", i), row)
			if err != nil {
				return nil, argErrorf(arg, fmt.Errorf("%w: %w", ErrNotMatrix, err))
			}
			rows[i] = r
		}
		d, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return nil, argErrorf(arg, fmt.Errorf("%w: %w", ErrNotMatrix, err))
		}
		return d, nil
	default:
		return nil, argErrorf(arg, fmt.Errorf("%T: %w", v, ErrNotMatrix))
	}
}
