// SPDX-License-Identifier: MIT
// Package matrix - public addition facades.
//
// Purpose:
//   - Thin entry points over the kernels in impl_sparse_add.go.
//   - Uniform validation (nil → shape) and error tagging before any allocation.
//
// Shape policy:
//   - Operands must agree in BOTH rows and cols; a mismatch in either one
//     fails with ErrDimensionMismatch.

package matrix

import "fmt"

// matrixErrorf wraps an error with a facade tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSparsePair checks both operands for nil and equal shape.
func validateSparsePair(a, b *Sparse) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return ValidateSameShape(a, b)
}

// Sum returns a + b using the sparsity-preserving kernel.
// MAIN DESCRIPTION:
//   - Result shape equals the operands' shape; result default is
//     a.DefaultValue() + b.DefaultValue(); result bucket count is a.Buckets()
//     unless WithResultBuckets is given.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrNaNInf only if a sum overflows
//     while a's numeric policy is on.
//
// Complexity:
//   - Proportional to the operands' override counts and table sizes, never rows×cols.
func Sum(a, b *Sparse, opts ...Option) (*Sparse, error) {
	if err := validateSparsePair(a, b); err != nil {
		return nil, matrixErrorf("Sum", err)
	}
	o := gatherOptions(opts...)
	out, err := addSparse(a, b, o.resultBuckets)
	if err != nil {
		return nil, matrixErrorf("Sum", err)
	}

	return out, nil
}

// Add returns m + b; it is the method form of Sum.
func (m *Sparse) Add(b *Sparse, opts ...Option) (*Sparse, error) {
	return Sum(m, b, opts...)
}

// AddDense returns a + b by visiting every cell of the grid.
// Same preconditions and result as Sum; exists as a baseline for Sum's
// correctness and cost. Complexity: O(rows*cols).
func AddDense(a, b *Sparse, opts ...Option) (*Sparse, error) {
	if err := validateSparsePair(a, b); err != nil {
		return nil, matrixErrorf("AddDense", err)
	}
	o := gatherOptions(opts...)
	out, err := addDense(a, b, o.resultBuckets)
	if err != nil {
		return nil, matrixErrorf("AddDense", err)
	}

	return out, nil
}
