// SPDX-License-Identifier: MIT

// Package matrix - copy-based sub-matrix extraction.
//
// Every extractor materializes an independent *Dense: writes to the result
// never reflect in the source. Ranges are half-open [start, end).

package matrix

const (
	opRowAt     = "RowAt"
	opSliceRows = "SliceRows"
	opSliceCols = "SliceCols"
)

// RowAt returns row i of m as a 1×cols matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrOutOfRange (i outside [0, rows)).
//
// Complexity:
//   - Time O(c), Space O(c).
func RowAt(m Matrix, i int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowAt, err)
	}
	if err := ValidateIndex(i, m.Rows()); err != nil {
		return nil, matrixErrorf(opRowAt, err)
	}

	return submatrix(m, i, i+1, 0, m.Cols(), opRowAt)
}

// SliceRows returns rows [start, end) of m as a new (end-start)×cols matrix.
// start == end yields a legal 0×cols matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (start<0, end>rows or start>end).
//
// Complexity:
//   - Time O((end-start)*c), Space O((end-start)*c).
func SliceRows(m Matrix, start, end int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSliceRows, err)
	}
	if err := ValidateRange(start, end, m.Rows()); err != nil {
		return nil, matrixErrorf(opSliceRows, err)
	}

	return submatrix(m, start, end, 0, m.Cols(), opSliceRows)
}

// SliceCols returns columns [start, end) of m as a new rows×(end-start) matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (start<0, end>cols or start>end).
//
// Complexity:
//   - Time O(r*(end-start)), Space O(r*(end-start)).
func SliceCols(m Matrix, start, end int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSliceCols, err)
	}
	if err := ValidateRange(start, end, m.Cols()); err != nil {
		return nil, matrixErrorf(opSliceCols, err)
	}

	return submatrix(m, 0, m.Rows(), start, end, opSliceCols)
}

// submatrix copies the validated window [r0,r1)×[c0,c1) of m.
// Fast path copies whole row segments out of the flat buffer.
func submatrix(m Matrix, r0, r1, c0, c1 int, opTag string) (*Dense, error) {
	h, w := r1-r0, c1-c0
	res := mustZeros(h, w)

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var src int
		for i = 0; i < h; i++ {
			src = (r0+i)*dm.c + c0
			copy(res.data[i*w:(i+1)*w], dm.data[src:src+w])
		}
		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			if v, err = m.At(r0+i, c0+j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*w+j] = v
		}
	}

	return res, nil
}
