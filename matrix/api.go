// SPDX-License-Identifier: MIT
// Package matrix — public constructors and facades.
//
// Purpose:
//   - Provide thin, documented entry points for building matrices (zeros,
//     identity, random, copy-from-grid) and comparing them.
//   - Avoid logic duplication — each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use Identity/Zeros to build matrices with explicit shape and neutral elements.
//   - Use NewFromGrid for literals; the grid is deep-copied, never aliased.

package matrix

import "fmt"

const (
	opFromGrid = "NewFromGrid"
	opIdentity = "Identity"
	opRandom   = "Random"
	opAllClose = "AllClose"
)

// ---------- Constructors ----------

// Zeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of New with an intention-revealing name.
//
// Errors: ErrInvalidShape (negative dimension).
// Complexity: O(r*c).
func Zeros(rows, cols int) (*Dense, error) {
	return New(rows, cols)
}

// NewFromGrid deep-copies a rectangular row-major grid into a new *Dense.
// MAIN DESCRIPTION:
//   - Shape is (len(grid), len(grid[0])); every row must have the same length.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular).
//   - Stage 2: allocate and copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidShape (zero rows, or ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Later changes to grid never reach the returned matrix, and vice versa.
func NewFromGrid(grid [][]float64) (*Dense, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opFromGrid, err)
	}

	rows, cols := len(grid), len(grid[0])
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGrid, err)
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields an empty 0×0 matrix.
//
// Errors: ErrInvalidShape (n < 0).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	I, err := New(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1.0) // in-range by construction
	}

	return I, nil
}

// Random returns a rows×cols matrix whose elements are independent uniform
// values in [0, 1).
//
// Options:
//   - WithSeed / WithRand for a reproducible stream.
//
// Errors: ErrInvalidShape (negative dimension).
// Complexity: O(r*c).
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	m.FillRandom(opts...)

	return m, nil
}

// ---------- Comparison ----------

// Equal reports whether a and b have the same shape and bitwise-equal
// elements under ==. NaN never equals NaN. Nil operands are never equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}

	return ewEqual(a, b)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ok, err := ewAllClose(a, b, rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// MustFromGrid is NewFromGrid for package-level literals; it panics on an
// invalid grid.
func MustFromGrid(grid [][]float64) *Dense {
	m, err := NewFromGrid(grid)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustFromGrid: %v", err))
	}

	return m
}
