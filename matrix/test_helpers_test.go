// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Sparse tests and benchmarks.
//   • Keep all data finite so numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// mustSparse allocates a Sparse or aborts the test.
func mustSparse(tb testing.TB, rows, cols int, def float64, buckets int, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.NewSparse(rows, cols, def, buckets, opts...)
	require.NoError(tb, err)

	return m
}

// mustSet writes v at (i,j) or aborts the test.
func mustSet(tb testing.TB, m *matrix.Sparse, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// mustAt reads (i,j) or aborts the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillSparseRand writes n overrides at pseudo-random coordinates with values
// in [-100, 100). A fixed seed makes the fixture reproducible.
func fillSparseRand(tb testing.TB, m *matrix.Sparse, n int, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for k := 0; k < n; k++ {
		i := rng.Intn(m.Rows())
		j := rng.Intn(m.Cols())
		mustSet(tb, m, i, j, rng.Float64()*200-100)
	}
}

// requireSumCellwise asserts got(i,j) == a(i,j) + b(i,j) within eps at every cell.
func requireSumCellwise(t *testing.T, got, a, b *matrix.Sparse, eps float64) {
	t.Helper()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			want := mustAt(t, a, i, j) + mustAt(t, b, i, j)
			require.InDelta(t, want, mustAt(t, got, i, j), eps, "cell (%d,%d)", i, j)
		}
	}
}
