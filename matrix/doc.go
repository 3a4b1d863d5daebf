// Package matrix is a small dense linear-algebra engine for float64 data.
//
// The matrix package provides:
//
//   - Dense, a row-major r×c container (element (i,j) at offset i*c+j) with
//     bounds-checked At/Set, Clone, Clear and structural Equal.
//   - Constructors NewZeros, NewFromValues and NewRandomUniform (uniform on
//     [0,1), reproducible through NewRand(seed)).
//   - Value-returning kernels: Add, Sub, Hadamard, Scale, Mul, Transpose, Map,
//     RowAt, SliceRows, SliceCols and NormalizeColumns. Each allocates a fresh
//     Dense and leaves its operands untouched.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange,
// ErrInvalidDimensions, ErrNilMatrix) wrapped with the failing operation;
// match them with errors.Is. Nothing in this package panics on bad input.
//
// Mul is the naive triple loop with a fixed k-ascending accumulation per
// element, so products are bit-reproducible across runs and code paths.
// That is adequate for layer widths in the tens and batches in the hundreds.
//
// See the examples in this package and mlp for usage patterns.
package matrix
