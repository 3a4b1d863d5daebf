// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Treat every Dense as a value: kernels allocate a fresh result and never
//     mutate their operands. Clear is the only bulk in-place operation.
//
// Complexity quicksheet:
//   - NewZeros: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Clear: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"  // method tag used in error wrappers
	ctxSet        = "Set" // method tag used in error wrappers
	ctxNewZeros   = "NewZeros"
	ctxFromValues = "NewFromValues"
)

// ---------- Formatting literals ----------
const (
	_fmtValue    = "%.5f"
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers keep matching with errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewZeros creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of length rows*cols.
//
// Behavior highlights:
//   - Zero-sized shapes (0×n, n×0) are legal and hold an empty buffer.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewZeros, rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromValues creates an r×c matrix populated row-major from values.
// The slice is copied; later writes to values do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//   - ErrDimensionMismatch (len(values) != rows*cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromValues(rows, cols int, values []float64) (*Dense, error) {
	m, err := NewZeros(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): %d values: %w", ctxFromValues, rows, cols, len(values), ErrDimensionMismatch)
	}
	copy(m.data, values)

	return m, nil
}

// mustZeros allocates a result buffer for shapes that were already validated
// (derived from existing matrices, so never negative).
func mustZeros(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
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
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
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
// Any float64 is accepted, including NaN and ±Inf: NormalizeColumns and
// diverging training legitimately produce them.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used inside the package.
func (m *Dense) clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Copy returns a deep copy typed as *Dense.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense { return m.clone() }

// DenseCopyOf returns a new *Dense holding the values of any Matrix.
// Fast path copies the flat buffer of a *Dense; other implementations are
// read through At in i→j order.
//
// Errors:
//   - ErrNilMatrix (nil input); wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DenseCopyOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("DenseCopyOf: %w", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	return submatrix(m, 0, m.Rows(), 0, m.Cols(), "DenseCopyOf")
}

// Values returns a row-major copy of the backing buffer.
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clear zeroes every element in place. The shape is unchanged.
// Complexity: O(r*c), no allocation.
func (m *Dense) Clear() {
	clear(m.data)
}

// Equal reports whether m and other have identical shapes and elementwise
// equal values (plain float64 ==, so NaN never equals NaN).
// Complexity: O(r*c).
func (m *Dense) Equal(other Matrix) bool {
	return Equal(m, other)
}

// Equal reports structural equality of a and b: identical shape and
// elementwise float64 equality. Differently shaped matrices are never equal;
// a nil operand is never equal to anything.
//
// Determinism:
//   - Fixed i→j order; stops at the first difference.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast-path: compare flat buffers.
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

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// String renders one line per row with space-separated values at 5 decimal
// digits. Intended for debugging output only.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, _fmtValue, m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
