// Package matrix offers a small dense-matrix arithmetic library.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose shape is fixed at construction.
//     At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//   - Constructors: New, NewEmpty, Zeros, NewFromGrid (deep copy, rejects
//     ragged grids), Identity and Random (uniform [0, 1)).
//   - Pure operations returning a new matrix: Add, Sub, Mul, Transpose, MatVec.
//   - In-place mutators on *Dense: AddInPlace, SubInPlace, TransposeInPlace
//     (square only), FillRandom.
//   - Solve, Gaussian elimination with partial pivoting for A·x = b.
//   - Print/Fprint for a plain "1.0 2.0 \n" rendering.
//
// Errors are package sentinels (ErrInvalidShape, ErrDimensionMismatch,
// ErrOutOfRange, ErrNilMatrix, ErrSingular); match them with errors.Is.
//
// Solve does not check for singularity unless WithPivotTolerance is given:
// a zero pivot yields ±Inf/NaN in the solution and a logrus warning.
//
// A Dense is not safe for concurrent mutation.
package matrix
