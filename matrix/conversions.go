// SPDX-License-Identifier: MIT

// Package matrix - conversions between Sparse and Dense, and tolerance comparison.

package matrix

import "math"

// ToDense materializes m into a fresh *Dense.
// Stage 1: fill every cell with the default (O(r*c)).
// Stage 2: overwrite override cells (O(buckets + nnz)).
func (m *Sparse) ToDense() *Dense {
	d := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	if m.def != 0 {
		for k := range d.data {
			d.data[k] = m.def
		}
	}
	m.Range(func(row, col int, v float64) bool {
		d.data[row*m.c+col] = v
		return true
	})

	return d
}

// FromDense builds a *Sparse with default def and the given bucket count,
// storing only the cells of src that differ from def.
// Errors: ErrNilMatrix, ErrInvalidDimensions, and Set errors (e.g. ErrNaNInf
// under WithValidateNaNInf).
func FromDense(src Matrix, def float64, buckets int, opts ...Option) (*Sparse, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("FromDense", err)
	}
	out, err := NewSparse(src.Rows(), src.Cols(), def, buckets, opts...)
	if err != nil {
		return nil, matrixErrorf("FromDense", err)
	}
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			v, err := src.At(i, j)
			if err != nil {
				return nil, matrixErrorf("FromDense", err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf("FromDense", err)
			}
		}
	}

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// cells differs by at most eps (WithEpsilon, DefaultEpsilon otherwise).
// NaN never compares close. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) reads.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	eps := gatherOptions(opts...).eps
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			va, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			vb, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if va == vb {
				continue
			}
			if !(math.Abs(va-vb) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
