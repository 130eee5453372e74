// Package matrix provides a sparse matrix over float64 with a per-matrix
// default value.
//
// The matrix package provides:
//
//   - Sparse: a fixed-shape matrix where every cell reads as the default value
//     unless overridden. Overrides live in a fixed-size hash table of bucket
//     chains keyed by (row*rows + col) mod buckets.
//   - Sum / (*Sparse).Add: addition that touches only the operands' overrides,
//     so its cost follows the number of stored entries, not rows×cols.
//   - AddDense: the cell-by-cell baseline with the same result as Sum.
//   - Dense, ToDense, FromDense and AllClose for conversion and comparison.
//
// All public operations return sentinel errors (ErrInvalidDimensions,
// ErrOutOfRange, ErrDimensionMismatch, ...) wrapped with call-site context;
// match them with errors.Is. A Sparse is not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
