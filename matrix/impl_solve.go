// SPDX-License-Identifier: MIT

// Package matrix - dense linear system solver.
//
// Purpose:
//   - Solve A·x = b for square A by Gaussian elimination with partial pivoting
//     followed by back substitution.
//
// Numeric policy:
//   - Default: no singularity check. A zero pivot divides through, so ±Inf/NaN
//     propagate into x and no error is returned; a warning is logged per zero
//     (or NaN, once a zero pivot has poisoned the rows below) pivot.
//   - Strict (WithPivotTolerance(eps)): |pivot| <= eps or a NaN pivot fails with ErrSingular.
//
// Determinism:
//   - Fixed loop orders; pivot ties resolve to the lowest row index.

package matrix

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

const opSolve = "Solve"

// Solve returns x such that a·x = b.
// MAIN DESCRIPTION:
//   - Gaussian elimination with maximal partial pivoting on an augmented n×(n+1) grid.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and b (non-nil, len n).
//   - Stage 2: build the augmented grid as n independent row slices.
//   - Stage 3: for each column i pick the row in [i, n) with the largest |a[k][i]|,
//     swap the row slices, then eliminate rows below over columns i..n.
//   - Stage 4: back substitution from n-1 down to 0.
//
// Behavior highlights:
//   - Row swaps exchange slice headers; no element is copied.
//   - Operands are never mutated.
//
// Inputs:
//   - a: n×n coefficient matrix.
//   - b: right-hand side of length n.
//   - opts: WithPivotTolerance (strict mode), WithLogger (warning sink).
//
// Returns:
//   - []float64: solution x of length n (empty, non-nil for n == 0).
//
// Errors:
//   - ErrNilMatrix (nil a or b), ErrDimensionMismatch (non-square a, len(b) != n),
//     ErrSingular (strict mode only).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented grid.
//
// AI-Hints:
//   - Check the result with MatVec(a, x) against b; look for math.IsInf/IsNaN
//     components when the default (non-strict) policy is in effect.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	aug, err := augment(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		i, j, k, maxRow int
		pivot, factor   float64
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: strict '>' keeps the first (lowest) row on ties.
		maxRow = i
		for k = i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		pivot = aug[i][i]
		// Negated '>' so a NaN pivot also fails the strict check.
		if o.strictPivot && !(math.Abs(pivot) > o.pivotTol) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: pivot %g: %w", i, pivot, ErrSingular))
		}
		if pivot == 0 || math.IsNaN(pivot) {
			o.logger.WithFields(logrus.Fields{
				"op":  opSolve,
				"col": i,
				"n":   n,
			}).Warn("matrix: zero or NaN pivot, solution will contain Inf or NaN")
		}

		for k = i + 1; k < n; k++ {
			factor = aug[k][i] / aug[i][i]
			for j = i; j <= n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += aug[i][j] * x[j]
		}
		x[i] = (aug[i][n] - sum) / aug[i][i]
	}

	return x, nil
}

// augment builds [a | b] as n row slices of length n+1.
// Each row owns its own backing array so pivoting can swap rows by header.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func augment(a Matrix, b []float64) ([][]float64, error) {
	n := a.Rows()
	aug := make([][]float64, n)
	da, isDense := a.(*Dense)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		row := make([]float64, n+1)
		if isDense {
			copy(row, da.data[i*n:(i+1)*n])
		} else {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, err
				}
				row[j] = v
			}
		}
		row[n] = b[i]
		aug[i] = row
	}

	return aug, nil
}
