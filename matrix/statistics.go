// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide per-column feature scaling (min-max normalization) as a
//     deterministic two-pass transform over a Dense buffer.
//
// Exposed API:
//   - ColumnRange(X)      -> (mins, maxs) // per-column extrema
//   - NormalizeColumns(X) -> Y            // (x-min)/(max-min) per column
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on the row-major flat buffer.

package matrix

const (
	opColumnRange      = "ColumnRange"
	opNormalizeColumns = "NormalizeColumns"
)

// ColumnRange returns the minimum and maximum of every column of X.
//
// Behavior highlights:
//   - Extrema use plain < and > comparisons seeded from row 0, so a NaN in
//     row 0 sticks while later NaNs are skipped.
//   - A matrix with zero rows yields zero-filled slices of length cols.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnRange(X Matrix) (mins, maxs []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnRange, err)
	}

	r, c := X.Rows(), X.Cols()
	mins = make([]float64, c)
	maxs = make([]float64, c)
	if r == 0 {
		return mins, maxs, nil
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = valueAt(X, i, j); err != nil {
				return nil, nil, matrixErrorf(opColumnRange, err)
			}
			if i == 0 {
				mins[j], maxs[j] = v, v
				continue
			}
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}

// NormalizeColumns returns a copy of X where every column is min-max scaled:
//
//	Y[i,j] = (X[i,j] - min_j) / (max_j - min_j)
//
// Behavior highlights:
//   - A constant column (max_j == min_j) divides by zero and yields NaN
//     (0/0) in every cell, following IEEE semantics. This is not an error;
//     callers with constant feature columns must expect NaN outputs.
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeColumns(X Matrix) (*Dense, error) {
	mins, maxs, err := ColumnRange(X)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	res := mustZeros(r, c)

	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			if v, err = valueAt(X, i, j); err != nil {
				return nil, matrixErrorf(opNormalizeColumns, err)
			}
			res.data[base+j] = (v - mins[j]) / (maxs[j] - mins[j])
		}
	}

	return res, nil
}

// valueAt reads X[i,j] straight from the buffer for *Dense and via At otherwise.
func valueAt(X Matrix, i, j int) (float64, error) {
	if d, ok := X.(*Dense); ok {
		return d.data[i*d.c+j], nil
	}

	return X.At(i, j)
}
