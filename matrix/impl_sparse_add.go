// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Addition kernels for *Sparse: the sparsity-preserving kernel used by
//     Sum/Add and the cell-by-cell baseline used by AddDense.
//
// Contract (both kernels):
//   - Operands are validated by the caller (non-nil, same shape).
//   - Result default = a.def + b.def; operands are never mutated.
//   - Result stores an override only where the sum differs from its default.

package matrix

// resultFor allocates the empty sum matrix for a + b.
// buckets == 0 reuses the left operand's table size; policy follows a.
func resultFor(a, b *Sparse, buckets int) *Sparse {
	if buckets == 0 {
		buckets = len(a.table)
	}

	return &Sparse{
		r:              a.r,
		c:              a.c,
		def:            a.def + b.def,
		table:          make([]chain, buckets),
		validateNaNInf: a.validateNaNInf,
	}
}

// addSparse computes a + b visiting only the operands' override entries.
// Implementation:
//   - Stage 1: for every override (r,c,v) of a, write out(r,c) = v + b.def.
//     The b contribution is b's default unless b also overrides the cell.
//   - Stage 2: for every override (r,c,v) of b, write
//     out(r,c) = out(r,c) - b.def + v. Cells touched by both operands swap the
//     provisional b.def for v; cells only in b start from out.def and end at a.def + v.
//
// Complexity:
//   - Time O(result buckets + a.buckets + b.buckets + nnz(a) + nnz(b)),
//     independent of rows×cols.
func addSparse(a, b *Sparse, buckets int) (*Sparse, error) {
	out := resultFor(a, b, buckets)

	var err error
	a.Range(func(row, col int, v float64) bool {
		err = out.Set(row, col, v+b.def)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	b.Range(func(row, col int, v float64) bool {
		var cur float64
		if cur, err = out.At(row, col); err != nil {
			return false
		}
		err = out.Set(row, col, cur-b.def+v)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// addDense computes a + b by reading both operands at every coordinate.
// It is the reference against which addSparse is validated.
// Deterministic i→j loops.
//
// Complexity:
//   - Time O(rows*cols * (1 + chain length)).
func addDense(a, b *Sparse, buckets int) (*Sparse, error) {
	out := resultFor(a, b, buckets)

	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			va, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			vb, err := b.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = out.Set(i, j, va+vb); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
