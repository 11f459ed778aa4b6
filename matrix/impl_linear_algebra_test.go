// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the pure linear-algebra kernels:
// Add, Sub, Mul, Transpose and MatVec.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tolja/linalg/matrix"
)

// TestAddSubLiteral checks elementwise results on a small fixture.
func TestAddSubLiteral(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, 2, 3}, {3, 5, 6}})
	b := MustGrid(t, [][]float64{{2, 3, 5}, {6, 7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{3, 5, 8}, {9, 12, 14}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	Compare(t, [][]float64{{-1, -1, -2}, {-3, -2, -2}}, diff)

	// operands are never mutated
	Compare(t, [][]float64{{1, 2, 3}, {3, 5, 6}}, a)
	Compare(t, [][]float64{{2, 3, 5}, {6, 7, 8}}, b)
}

// TestAddCommutative checks Add(A,B) == Add(B,A) exactly on random inputs.
func TestAddCommutative(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := MustDense(t, 4, 6)
		b := MustDense(t, 4, 6)
		FillRand(t, a, seed)
		FillRand(t, b, seed+100)

		ab, err := matrix.Add(a, b)
		require.NoError(t, err)
		ba, err := matrix.Add(b, a)
		require.NoError(t, err)
		require.True(t, matrix.Equal(ab, ba), "seed %d", seed)
	}
}

// TestAddAssociative checks (A+B)+C ≈ A+(B+C) within tolerance.
func TestAddAssociative(t *testing.T) {
	a, b, c := MustDense(t, 5, 3), MustDense(t, 5, 3), MustDense(t, 5, 3)
	FillRand(t, a, 7)
	FillRand(t, b, 8)
	FillRand(t, c, 9)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	left, err := matrix.Add(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	right, err := matrix.Add(a, bc)
	require.NoError(t, err)

	RequireClose(t, left, right)
}

// TestSubInvertsAdd checks (A+B)-B ≈ A within tolerance.
func TestSubInvertsAdd(t *testing.T) {
	a, b := MustDense(t, 3, 3), MustDense(t, 3, 3)
	FillRand(t, a, 11)
	FillRand(t, b, 12)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	back, err := matrix.Sub(ab, b)
	require.NoError(t, err)

	RequireClose(t, a, back)
}

// TestAddSubErrors covers nil operands and shape mismatches.
func TestAddSubErrors(t *testing.T) {
	a := MustDense(t, 2, 3)

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"nil left", nil, a, matrix.ErrNilMatrix},
		{"nil right", a, nil, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), a, matrix.ErrNilMatrix},
		{"row mismatch", a, MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", a, MustDense(t, 2, 2), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Add(tc.a, tc.b)
			require.ErrorIs(t, err, tc.wantErr)
			require.Contains(t, err.Error(), "Add: ")

			_, err = matrix.Sub(tc.a, tc.b)
			require.ErrorIs(t, err, tc.wantErr)
			require.Contains(t, err.Error(), "Sub: ")
		})
	}
}

// TestAddSubFallbackMatchesDense ensures the At/Set path is bitwise identical to the flat path.
func TestAddSubFallbackMatchesDense(t *testing.T) {
	a, b := MustDense(t, 3, 4), MustDense(t, 3, 4)
	FillRand(t, a, 21)
	FillRand(t, b, 22)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))

	fast, err = matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err = matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

// TestMulLiteral checks the documented 2×3 · 3×2 product.
func TestMulLiteral(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, 2, 3}, {3, 5, 6}})
	c := MustGrid(t, [][]float64{{2, 3}, {6, 7}, {8, 9}})

	p, err := matrix.Mul(a, c)
	require.NoError(t, err)
	Compare(t, [][]float64{{38, 44}, {84, 98}}, p)

	p, err = matrix.Mul(hide{a}, hide{c}) // generic path
	require.NoError(t, err)
	Compare(t, [][]float64{{38, 44}, {84, 98}}, p)
}

// TestMulDimensionMismatch checks inner dimensions 3 ≠ 4 are rejected.
func TestMulDimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 4, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Mul: ")

	_, err = matrix.Mul(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulIdentity checks I·A == A·I == A exactly.
func TestMulIdentity(t *testing.T) {
	a := MustDense(t, 4, 4)
	FillRand(t, a, 31)
	I, err := matrix.Identity(4)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, I)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, left))
	require.True(t, matrix.Equal(a, right))
}

// TestMulFallbackMatchesDense ensures both loop orders accumulate in the same k order.
func TestMulFallbackMatchesDense(t *testing.T) {
	a, b := MustDense(t, 5, 7), MustDense(t, 7, 3)
	FillRand(t, a, 41)
	FillRand(t, b, 42)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

// TestMulPropagatesNaN checks 0·Inf is not skipped: the plain sum yields NaN.
func TestMulPropagatesNaN(t *testing.T) {
	a := MustGrid(t, [][]float64{{0, 1}})
	b := MustGrid(t, [][]float64{{math.Inf(1)}, {2}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	v, err := p.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestMulEmptyInner checks an (r×0)·(0×c) product is an r×c zero matrix.
func TestMulEmptyInner(t *testing.T) {
	p, err := matrix.Mul(MustDense(t, 2, 0), MustDense(t, 0, 3))
	require.NoError(t, err)
	Compare(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, p)
}

// TestTransposeNonSquare checks the pure transpose flips the shape.
func TestTransposeNonSquare(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	tr, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	Compare(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	Compare(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a) // input untouched

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeOfProduct checks (AB)ᵀ == BᵀAᵀ within tolerance.
func TestTransposeOfProduct(t *testing.T) {
	a, b := MustDense(t, 3, 4), MustDense(t, 4, 2)
	FillRand(t, a, 51)
	FillRand(t, b, 52)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abT, err := matrix.Transpose(ab)
	require.NoError(t, err)

	aT, err := matrix.Transpose(a)
	require.NoError(t, err)
	bT, err := matrix.Transpose(b)
	require.NoError(t, err)
	bTaT, err := matrix.Mul(bT, aT)
	require.NoError(t, err)

	RequireClose(t, abT, bTaT)
}

// TestMatVec checks y = A·x on a literal and its error surface.
func TestMatVec(t *testing.T) {
	a := MustGrid(t, [][]float64{{1, 2, 3}, {3, 5, 6}})

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -3}, y)

	y, err = matrix.MatVec(hide{a}, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -3}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
