// SPDX-License-Identifier: MIT

// Package matrix - Sparse introspection: entry iteration and diagnostic dump.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const _fmtEntry = "[%d, %d] : %g\n"

// Range calls fn for every stored override until fn returns false.
// Each entry is visited exactly once; order is bucket ascending, then
// most-recent-first within a bucket. fn must not call Set or Clear on m.
// Complexity: O(buckets + nnz).
func (m *Sparse) Range(fn func(row, col int, v float64) bool) {
	for b := range m.table {
		ok := m.table[b].each(func(e *entry) bool {
			return fn(e.at.row, e.at.col, e.value)
		})
		if !ok {
			return
		}
	}
}

// Dump writes one "[row, col] : value" line per override entry to w.
// The first write error aborts the dump and is returned.
func (m *Sparse) Dump(w io.Writer) error {
	var err error
	m.Range(func(row, col int, v float64) bool {
		_, err = fmt.Fprintf(w, _fmtEntry, row, col, v)
		return err == nil
	})

	return err
}

// String implements fmt.Stringer with the Dump listing.
// A matrix without overrides renders as the empty string.
func (m *Sparse) String() string {
	var sb strings.Builder
	_ = m.Dump(&sb) // strings.Builder never fails

	return sb.String()
}
