// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise comparison kernels (ew*) behind
//     the public Equal/AllClose facades in api.go.
//   - Keep all loops deterministic with Dense fast-paths.

package matrix

import "math"

// ewEqual reports a[i,j] == b[i,j] for every cell. Shapes must already match.
// Time: O(r*c). Space: O(1).
func ewEqual(a, b Matrix) bool {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}
			return true
		}
	}

	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b|.
// Time: O(r*c). Space: O(1). Deterministic; early exit on first violation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - A NaN element on either side is never close; an infinity is close only to itself.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, ErrNaNInf
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}

	near := func(av, bv float64) bool {
		if av == bv {
			return true // covers matching infinities
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false
		}
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !near(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !near(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
