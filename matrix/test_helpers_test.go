// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustZeros allocates an r×c zero *Dense or fails the test.
func MustZeros(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZeros(r, c)
	require.NoError(t, err, "NewZeros(%d,%d)", r, c)

	return m
}

// MustFromValues builds an r×c *Dense from a row-major flat slice or fails the test.
func MustFromValues(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromValues(r, c, vals)
	require.NoError(t, err, "NewFromValues(%d,%d)", r, c)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandomDense builds an r×c *Dense with deterministic U(-1,1) values by seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustFromValues(t, r, c, vals...)
}
