// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the test files.
//   • Keep fixtures finite and well-formed unless a test is about non-finite values.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tolja/linalg/matrix"
)

// Tolerance used for floating-point comparisons that are not exact by construction.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (fallback) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// MustGrid builds a *Dense from a literal grid or fails the test.
func MustGrid(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromGrid(grid)
	require.NoError(t, err, "NewFromGrid")

	return m
}

// FillRand fills m with reproducible values in [-1, 1) drawn from seed.
func FillRand(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// Compare asserts that m matches want exactly, element by element.
// Intended for small fixtures; use AllClose for tolerant comparisons.
func Compare(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols of row %d", i)
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "At(%d,%d)", i, j)
		}
	}
}

// RequireClose asserts AllClose(a, b, 0, tol).
func RequireClose(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%vgot:\n%v", want, got)
}
