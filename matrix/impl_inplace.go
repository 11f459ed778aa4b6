// SPDX-License-Identifier: MIT

// Package matrix - in-place mutators on *Dense.
//
// Purpose:
//   - Offer allocation-free counterparts of Add/Sub and a square in-place transpose.
//   - Route every write through (*Dense).Set so bounds checks stay in one place.
//
// Determinism:
//   - Fixed i→j loop order; the receiver's shape never changes.

package matrix

const (
	opAddInPlace       = "AddInPlace"
	opSubInPlace       = "SubInPlace"
	opTransposeInPlace = "TransposeInPlace"
)

// AddInPlace performs m[i,j] += b[i,j] for every element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error m is untouched.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddInPlace(b Matrix) error { return m.addSubInPlace(b, +1, opAddInPlace) }

// SubInPlace performs m[i,j] -= b[i,j] for every element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. On error m is untouched.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) SubInPlace(b Matrix) error { return m.addSubInPlace(b, -1, opSubInPlace) }

// addSubInPlace is the shared kernel behind AddInPlace/SubInPlace and the
// pure Add/Sub facades: m[i,j] = m[i,j] + sign*b[i,j].
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, b).
//   - Stage 2: read b (flat when *Dense, At otherwise), write through Set.
//
// Notes:
//   - b may alias m (m.AddInPlace(m) doubles every element).
func (m *Dense) addSubInPlace(b Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}

	db, isDense := b.(*Dense)
	var (
		i, j, off int
		bv        float64
		err       error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			off = i*m.c + j
			if isDense {
				bv = db.data[off]
			} else if bv, err = b.At(i, j); err != nil {
				return matrixErrorf(opTag, err)
			}
			if err = m.Set(i, j, m.data[off]+sign*bv); err != nil {
				return matrixErrorf(opTag, err)
			}
		}
	}

	return nil
}

// TransposeInPlace replaces m with mᵀ. Defined for square matrices only,
// since the shape of a Dense is fixed for its lifetime.
// MAIN DESCRIPTION:
//   - Snapshot the buffer, then write m[i,j] = snapshot[j,i] for every cell.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: copy data into a temporary buffer.
//   - Stage 3: rewrite every element from the snapshot through Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square; m is untouched).
//
// Complexity:
//   - Time O(n²), Space O(n²) for the snapshot.
//
// AI-Hints:
//   - For a non-square input use Transpose(m), which returns a new (c×r) matrix.
func (m *Dense) TransposeInPlace() error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}

	n := m.r
	snapshot := make([]float64, len(m.data))
	copy(snapshot, m.data)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.Set(i, j, snapshot[j*n+i]); err != nil {
				return matrixErrorf(opTransposeInPlace, err)
			}
		}
	}

	return nil
}
