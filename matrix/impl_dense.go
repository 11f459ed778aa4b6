// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep shape fixed for the lifetime of a Dense; only values change.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Mutators funnel writes through Set, so bounds checks live in exactly one place (indexOf).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Grid: O(r*c); Fprint: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "

	_printSep       = " "  // Print: every element is followed by one space
	_printRowEnd    = "\n" // Print: each row ends with a newline
	_printIntSuffix = ".0" // Print: integral values render as "2.0"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxApply)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense is not safe for concurrent mutation; synchronize externally when
// sharing one instance across goroutines.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-sized shapes (0×0, 0×k, k×0) are legal and hold no elements.
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//
// Returns:
//   - *Dense: newly allocated matrix, every element 0.0.
//
// Errors:
//   - ErrInvalidShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewEmpty returns a 0×0 matrix. Equivalent to New(0, 0).
func NewEmpty() *Dense {
	return &Dense{data: []float64{}}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods (At/Set) wrap it with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped as "Dense.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element write; the sole mutation primitive of Dense.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; any float64 (including NaN/±Inf) is stored verbatim.
//
// Errors:
//   - ErrOutOfRange for bounds, wrapped as "Dense.Set(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - AddInPlace/SubInPlace/TransposeInPlace/Apply all write through Set.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c) time and space.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed deep copy behind Clone.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Grid exports the matrix as a freshly allocated row-major [][]float64.
// Mutating the result never affects m.
// Complexity: O(r*c) time and space.
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out
}

// String provides a readable row-wise dump for diagnostics: "[1, 2]\n[3, 4]\n".
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Fprint writes the plain-text rendering of m to w.
// MAIN DESCRIPTION:
//   - One line per row; every element is followed by a single space; each
//     row ends with "\n". A 0-row matrix writes nothing.
//
// Behavior highlights:
//   - Values use the shortest round-trip representation; integral finite
//     values get a ".0" suffix, so [[1,2],[3,4]] renders "1.0 2.0 \n3.0 4.0 \n".
//
// Errors:
//   - Whatever w.Write returns.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (single buffered write).
func (m *Dense) Fprint(w io.Writer) error {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatElement(m.data[base+j]))
			b.WriteString(_printSep)
		}
		b.WriteString(_printRowEnd)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Print writes the Fprint rendering of m to standard output.
func (m *Dense) Print() {
	_ = m.Fprint(os.Stdout)
}

// formatElement renders v in shortest form, appending ".0" to integral values.
func formatElement(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.ContainsAny(s, ".e") {
		return s
	}

	return s + _printIntSuffix
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// MAIN DESCRIPTION:
//   - In-place map; every write goes through Set.
//
// Errors:
//   - Only a wrapped Set failure, which cannot occur for in-range (i,j).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - f sees the value before its own write; cells are independent.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if err := m.Set(i, j, f(i, j, m.data[base+j])); err != nil {
				return matrixErrorf(ctxApply, err)
			}
		}
	}

	return nil
}

// FillRandom overwrites every element with an independent uniform value in [0, 1).
// Options:
//   - WithSeed / WithRand pin the stream; otherwise math/rand's auto-seeded source is used.
//
// Complexity: O(r*c).
func (m *Dense) FillRandom(opts ...Option) {
	o := gatherOptions(opts...)
	_ = m.Apply(func(_, _ int, _ float64) float64 { return o.float64() }) // in-range by construction
}
