// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (possibly wrapped with
// operation context) and tests check them via errors.Is. No operation panics
// on user-triggered error conditions; panics are reserved for nonsensical
// Option parameters (programmer error, see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX)
// (matrixErrorf, denseErrorf, validatorErrorf); callers still match with
// errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> dimension mismatch -> index -> numeric (singular).

var (
	// ErrInvalidShape is returned when a requested or supplied shape is invalid:
	// negative dimensions, an empty grid, or a ragged grid whose rows differ in length.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, an in-place
	// transpose of a non-square matrix, or a Solve right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) or a nil
	// vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (comparison tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by Solve in strict mode (WithPivotTolerance) when a
	// pivot magnitude does not exceed the configured tolerance. Without strict
	// mode Solve never returns it; zero pivots propagate as ±Inf/NaN instead.
	ErrSingular = errors.New("matrix: singular matrix")
)
