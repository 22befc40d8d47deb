// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances shared by approximate comparisons.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
)

// MustNew ALLOCATES an n×n matrix or fails the test (fatal on error).
func MustNew(t testing.TB, n int, opts ...matrix.Option) *matrix.SquareMat {
	t.Helper()
	m, err := matrix.New(n, opts...)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a matrix from a literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.SquareMat {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.SquareMat, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact ASSERTS m equals want element by element (exact float equality).
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t testing.TB, want [][]float64, m *matrix.SquareMat) {
	t.Helper()
	require.Equal(t, len(want), m.N(), "CompareExact: dimension")
	var i, j int
	for i = 0; i < m.N(); i++ {
		require.Len(t, want[i], m.N(), "CompareExact: row %d", i)
		for j = 0; j < m.N(); j++ {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t testing.TB, a, b *matrix.SquareMat, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "AllClose=false (rtol=%g, atol=%g)\n%s\nvs\n%s", rtol, atol, a, b)
}

// RandFilled returns an n×n matrix with values in [-1, 1) drawn from a seeded source.
func RandFilled(t testing.TB, n int, seed int64) *matrix.SquareMat {
	t.Helper()
	m := MustNew(t, n)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// fixtureA is [[1,2],[3,4]], used across operator tests.
func fixtureA(t testing.TB) *matrix.SquareMat {
	return MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
}

// fixtureB is [[5,6],[7,8]], used across operator tests.
func fixtureB(t testing.TB) *matrix.SquareMat {
	return MustFromRows(t, [][]float64{{5, 6}, {7, 8}})
}
