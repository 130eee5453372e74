// SPDX-License-Identifier: MIT

package matrix

// White-box bridge for matrix_test: exposes bucket internals without widening
// the production API.

// BucketOf returns the bucket index of a valid coordinate.
func (m *Sparse) BucketOf(row, col int) int { return m.hash(row, col) }

// ChainLens returns the number of entries in every bucket.
func (m *Sparse) ChainLens() []int {
	out := make([]int, len(m.table))
	for b := range m.table {
		out[b] = m.table[b].len()
	}

	return out
}
