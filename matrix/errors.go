// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// caller-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf(op, err) so the message reads "Mul: ValidateMulCompatible:
// matrix: dimension mismatch" while errors.Is still matches the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension mismatch -> index range.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero-sized dimensions are legal (0×n and n×0 matrices hold no values).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub/Hadamard on different shapes, Mul where a.Cols != b.Rows, or a
	// value slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) or a half-open
	// range is outside valid bounds. Public indexers (At/Set) return it, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrShapeMismatch names the same condition as ErrDimensionMismatch.
// errors.Is(err, ErrShapeMismatch) is true for every dimension mismatch.
var ErrShapeMismatch = ErrDimensionMismatch

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
