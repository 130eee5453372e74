// SPDX-License-Identifier: MIT

// Package matrix - bucket chain: a singly linked, most-recent-first list of
// override entries whose coordinates hash to the same bucket.
//
// Purpose:
//   - O(1) prepend for new overrides.
//   - Unlink of an arbitrary entry without rebuilding the chain.
//   - Linear scan by coordinate equality (position is irrelevant).

package matrix

// chain is one bucket of the Sparse hash table.
// The zero value is an empty chain ready for use.
type chain struct {
	head *entry // most recently inserted entry, nil when empty
	n    int    // number of entries in the chain
}

// empty reports whether the chain holds no entries.
func (ch *chain) empty() bool { return ch.head == nil }

// len returns the number of entries in the chain.
func (ch *chain) len() int { return ch.n }

// find returns the entry for c, or nil if the chain does not hold it.
// Complexity: O(len).
func (ch *chain) find(c cell) *entry {
	for e := ch.head; e != nil; e = e.next {
		if e.at == c {
			return e
		}
	}

	return nil
}

// pushFront prepends a new entry. The caller guarantees c is not present.
// Complexity: O(1).
func (ch *chain) pushFront(c cell, v float64) {
	ch.head = &entry{at: c, value: v, next: ch.head}
	ch.n++
}

// remove unlinks the entry for c and reports whether one was found.
// Implementation:
//   - Walk with a pointer to the incoming link so the head and interior
//     nodes are unlinked by the same assignment.
//
// Complexity: O(len).
func (ch *chain) remove(c cell) bool {
	for link := &ch.head; *link != nil; link = &(*link).next {
		if (*link).at == c {
			*link = (*link).next
			ch.n--
			return true
		}
	}

	return false
}

// each visits entries head to tail until fn returns false.
// It reports false if iteration was stopped early.
func (ch *chain) each(fn func(e *entry) bool) bool {
	for e := ch.head; e != nil; e = e.next {
		if !fn(e) {
			return false
		}
	}

	return true
}
