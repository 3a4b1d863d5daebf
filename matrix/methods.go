// SPDX-License-Identifier: MIT
// Package matrix - method facades on *Dense.
//
// Purpose:
//   - Let callers chain operations on values (a.Mul(b.T())) without repeating
//     the package name.
//   - Avoid any logic duplication: each method delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Methods never change loop orders or numeric policy of the kernels.
//   - The receiver is never mutated (Clear and Set excepted, see dense.go).

package matrix

// T returns mᵀ. Alias of Transpose. A nil receiver yields ErrNilMatrix.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }

// Map returns f applied element-wise to m.
func (m *Dense) Map(f func(float64) float64) (*Dense, error) { return Map(m, f) }

// RowAt returns row i as a 1×cols matrix.
func (m *Dense) RowAt(i int) (*Dense, error) { return RowAt(m, i) }

// Add returns m + other.
func (m *Dense) Add(other Matrix) (*Dense, error) { return Add(m, other) }

// Sub returns m - other.
func (m *Dense) Sub(other Matrix) (*Dense, error) { return Sub(m, other) }

// Scale returns alpha*m.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Mul returns the matrix product m × other.
func (m *Dense) Mul(other Matrix) (*Dense, error) { return Mul(m, other) }

// Hadamard returns the element-wise product m ⊙ other.
func (m *Dense) Hadamard(other Matrix) (*Dense, error) { return Hadamard(m, other) }

// NormalizeColumns returns the per-column min-max normalization of m.
func (m *Dense) NormalizeColumns() (*Dense, error) { return NormalizeColumns(m) }

// SliceRows returns rows [start, end) of m.
func (m *Dense) SliceRows(start, end int) (*Dense, error) { return SliceRows(m, start, end) }

// SliceCols returns columns [start, end) of m.
func (m *Dense) SliceCols(start, end int) (*Dense, error) { return SliceCols(m, start, end) }
