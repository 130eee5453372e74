// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (default value + hashed overrides) & safe accessors.
//
// Purpose:
//   - Represent an r×c grid where most cells share one default value and only
//     the cells that differ from it are materialized.
//   - Store overrides in a fixed-size table of bucket chains indexed by
//     (row*rows + col) mod buckets. The table is never resized.
//   - Guarantee safety at the public surface: At/Set/Clear return errors instead of panicking.
//
// Invariants:
//   - rows >= 1, cols >= 1, buckets >= 1.
//   - At most one entry per (row, col); no entry ever stores the default value.
//
// Concurrency:
//   - No internal synchronization. Concurrent Set/Clear (or a writer with a
//     reader) on the same *Sparse must be serialized by the caller.
//
// Complexity quicksheet:
//   - NewSparse: O(buckets); At/Set/Clear: O(1 + chain length); Clone: O(buckets + nnz).

package matrix

import (
	"fmt"
	"math"
	"math/bits"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxClear = "Clear" // method tag used in error wrappers
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
// Format: "Sparse.<method>(row,col): %w"; the sentinel stays matchable via errors.Is.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a fixed-shape matrix backed by a hash table of override chains.
//   - r,c hold dimensions (rows, cols).
//   - def is the value every non-overridden cell reads as.
//   - table holds len(table) == buckets independent chains.
//   - nnz counts stored overrides across all chains.
type Sparse struct {
	r, c           int     // row and column counts (>= 1)
	def            float64 // default value shared by all non-overridden cells
	table          []chain // bucket chains; length fixed at construction
	nnz            int     // number of override entries
	validateNaNInf bool    // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an rows×cols matrix whose every cell reads as def.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and an explicit table size.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 && buckets>0; else ErrInvalidDimensions.
//   - Stage 2: allocate buckets empty chains.
//   - Stage 3: resolve numeric policy from opts.
//
// Behavior highlights:
//   - buckets is a tuning knob, not a correctness parameter: one bucket for a
//     million cells is legal and only makes chain scans longer.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - def: default cell value.
//   - buckets: positive hash-table size.
//   - opts: WithValidateNaNInf / WithNoValidateNaNInf.
//
// Errors:
//   - ErrInvalidDimensions (shape or table-size contract violation).
//
// Complexity:
//   - Time O(buckets), Space O(buckets).
func NewSparse(rows, cols int, def float64, buckets int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 || buckets <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		def:            def,
		table:          make([]chain, buckets),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// Buckets returns the fixed hash-table size chosen at construction.
func (m *Sparse) Buckets() int { return len(m.table) }

// DefaultValue returns the value of every non-overridden cell.
func (m *Sparse) DefaultValue() float64 { return m.def }

// NNZ returns the number of stored override entries.
func (m *Sparse) NNZ() int { return m.nnz }

// hash maps a validated coordinate to its bucket: the row-major index
// row*rows + col reduced modulo the table size.
// The index is formed as a 128-bit value, so shapes whose row-major index
// exceeds MaxInt64 still land in [0, buckets).
// Precondition: 0 <= row < r, 0 <= col < c.
func (m *Sparse) hash(row, col int) int {
	hi, lo := bits.Mul64(uint64(row), uint64(m.r))
	lo, carry := bits.Add64(lo, uint64(col), 0)
	hi += carry

	return int(bits.Rem64(hi, lo, uint64(len(m.table))))
}

// locate bounds-checks (row, col) and returns its bucket chain.
// Out-of-range coordinates never reach hash.
func (m *Sparse) locate(row, col int) (*chain, error) {
	if row < 0 || row >= m.r {
		return nil, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return nil, ErrOutOfRange
	}

	return &m.table[m.hash(row, col)], nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read: stored override if present, default otherwise.
//
// Implementation:
//   - Stage 1: bounds check and bucket lookup via locate.
//   - Stage 2: empty chain short-circuits to the default.
//   - Stage 3: linear scan by coordinate equality.
//
// Complexity:
//   - Time O(1 + chain length), Space O(1).
func (m *Sparse) At(row, col int) (float64, error) {
	ch, err := m.locate(row, col)
	if err != nil {
		return 0, sparseErrorf(ctxAt, row, col, err)
	}
	if ch.empty() {
		return m.def, nil
	}
	if e := ch.find(cell{row, col}); e != nil {
		return e.value, nil
	}

	return m.def, nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Writing the default clears the cell, so only non-default cells are materialized.
//   - Writing any other value overwrites an existing entry in place or
//     prepends a new one to the bucket chain.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under WithValidateNaNInf.
//
// Complexity:
//   - Time O(1 + chain length), Space O(1) amortized.
func (m *Sparse) Set(row, col int, v float64) error {
	ch, err := m.locate(row, col)
	if err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	if v == m.def {
		m.unlink(ch, cell{row, col})
		return nil
	}
	if e := ch.find(cell{row, col}); e != nil {
		e.value = v
		return nil
	}
	ch.pushFront(cell{row, col}, v)
	m.nnz++

	return nil
}

// Clear resets (row, col) to the default value.
// Clearing a cell that holds no override is a no-op.
func (m *Sparse) Clear(row, col int) error {
	ch, err := m.locate(row, col)
	if err != nil {
		return sparseErrorf(ctxClear, row, col, err)
	}
	m.unlink(ch, cell{row, col})

	return nil
}

// unlink drops the entry for c from ch, keeping nnz in step.
func (m *Sparse) unlink(ch *chain, c cell) {
	if ch.empty() {
		return
	}
	if ch.remove(c) {
		m.nnz--
	}
}

// Clone returns a deep copy with the same shape, default, bucket count and policy.
// Chains are rebuilt in the same head-to-tail order.
// Complexity: O(buckets + nnz).
func (m *Sparse) Clone() Matrix {
	out := &Sparse{
		r:              m.r,
		c:              m.c,
		def:            m.def,
		table:          make([]chain, len(m.table)),
		nnz:            m.nnz,
		validateNaNInf: m.validateNaNInf,
	}
	for b := range m.table {
		src := &m.table[b]
		dst := &out.table[b]
		link := &dst.head
		src.each(func(e *entry) bool {
			*link = &entry{at: e.at, value: e.value}
			link = &(*link).next
			return true
		})
		dst.n = src.n
	}

	return out
}

// CloneSparse is Clone with the concrete return type.
func (m *Sparse) CloneSparse() *Sparse {
	return m.Clone().(*Sparse)
}
