// Package linalg is a small dense linear-algebra toolkit for float64 matrices.
//
// Everything lives in the matrix subpackage:
//
//	matrix/ — Dense storage, construction (New, NewFromGrid, Identity, Random),
//	          arithmetic (Add, Sub, Mul, Transpose, MatVec), in-place mutators
//	          and Solve (Gaussian elimination with partial pivoting).
//
// Quick example:
//
//	a := matrix.MustFromGrid([][]float64{{2, 1}, {1, 3}})
//	x, err := matrix.Solve(a, []float64{3, 5}) // x ≈ [0.8 1.4]
//
// A runnable walkthrough is in examples/matrix_demo.go.
//
//	go get github.com/tolja/linalg/matrix
package linalg
