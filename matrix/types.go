// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse and dense storages.
// This file intentionally contains ONLY type declarations (the public Matrix
// interface, the override entry and the coordinate key). Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Both *Sparse and *Dense implement it, so comparison helpers and tests can
// treat them uniformly.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// cell is a (row, col) coordinate. Comparable, so it doubles as a map key
// in tests and conversions.
type cell struct {
	row int // zero-based row index
	col int // zero-based column index
}

// entry is one override: a cell whose value differs from the matrix default.
// Entries are owned by exactly one chain of exactly one matrix.
type entry struct {
	at    cell    // coordinate of the override
	value float64 // stored value, never equal to the owning matrix default
	next  *entry  // following entry in the same chain (nil at the tail)
}
