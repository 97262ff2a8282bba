// SPDX-License-Identifier: MIT

package lstsq

import "fmt"

// Result is the tagged outcome of every lstsq operation: either Ok(value) or
// Invalid(cause). The tag is explicit, so a valid zero value (a residual norm
// of 0, say) can never be mistaken for an invalid input.
//
// The zero Result is Invalid.
type Result[T any] struct {
	value T
	err   error
	valid bool
}

// Ok wraps a successfully computed value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, valid: true}
}

// Invalid builds a Result rejecting the input. The returned error matches
// both ErrInvalidInput and cause under errors.Is.
func Invalid[T any](cause error) Result[T] {
	if cause == nil {
		return Result[T]{err: ErrInvalidInput}
	}

	return Result[T]{err: fmt.Errorf("%w: %w", ErrInvalidInput, cause)}
}

// IsValid reports whether the Result holds a value.
func (r Result[T]) IsValid() bool { return r.valid }

// Value returns the held value and true, or the zero T and false.
func (r Result[T]) Value() (T, bool) { return r.value, r.valid }

// Get is Value in the (value, error) shape.
func (r Result[T]) Get() (T, error) {
	if !r.valid {
		return r.value, r.Err()
	}

	return r.value, nil
}

// Err returns nil for a valid Result and a non-nil error wrapping
// ErrInvalidInput otherwise.
func (r Result[T]) Err() error {
	if r.valid {
		return nil
	}
	if r.err == nil {
		return ErrInvalidInput
	}

	return r.err
}

// String renders "Ok(<value>)" or "Invalid(<cause>)".
func (r Result[T]) String() string {
	if r.valid {
		return fmt.Sprintf("Ok(%v)", r.value)
	}

	return fmt.Sprintf("Invalid(%v)", r.Err())
}
