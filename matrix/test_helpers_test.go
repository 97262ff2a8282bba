// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lstsq/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances shared by comparison-based tests.
const (
	rtolTest = 1e-12
	atolTest = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in the code under test.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandomDense returns an r×c *Dense with deterministic U(-1,1) values.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromFlat(r, c, vals)
	require.NoError(t, err)

	return m
}

// RandomVec returns a deterministic U(-1,1) vector of length n.
func RandomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// RequireClose asserts AllClose(got, want) with the shared tolerances.
func RequireClose(t *testing.T, got, want matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtolTest, atolTest)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n got:\n%v\nwant:\n%v", got, want)
}
