// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// failingWriter rejects every write.
type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestDumpListsEveryEntryOnce(t *testing.T) {
	m := mustSparse(t, 10, 10, 1, 5)
	mustSet(t, m, 5, 5, 2.2)
	mustSet(t, m, 5, 4, 2.1)
	mustSet(t, m, 2, 8, 2.8)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.ElementsMatch(t, []string{
		"[5, 5] : 2.2",
		"[5, 4] : 2.1",
		"[2, 8] : 2.8",
	}, lines)
	require.Equal(t, buf.String(), m.String())
}

func TestDumpEmpty(t *testing.T) {
	m := mustSparse(t, 4, 4, 7, 3)

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	require.Zero(t, buf.Len())
	require.Equal(t, "", m.String())
}

func TestDumpPropagatesWriteError(t *testing.T) {
	m := mustSparse(t, 4, 4, 0, 3)
	mustSet(t, m, 1, 2, 3)
	mustSet(t, m, 3, 3, 4)

	boom := errors.New("disk full")
	require.ErrorIs(t, m.Dump(failingWriter{boom}), boom)
}

func TestRange(t *testing.T) {
	m := mustSparse(t, 6, 6, 0, 4)
	want := map[[2]int]float64{{0, 1}: 1, {2, 3}: 2, {5, 5}: 3, {4, 0}: 4}
	for rc, v := range want {
		mustSet(t, m, rc[0], rc[1], v)
	}

	got := make(map[[2]int]float64)
	m.Range(func(row, col int, v float64) bool {
		_, dup := got[[2]int{row, col}]
		require.False(t, dup, "entry (%d,%d) visited twice", row, col)
		got[[2]int{row, col}] = v
		return true
	})
	require.Equal(t, want, got)

	// Early stop.
	visited := 0
	m.Range(func(int, int, float64) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)
}

func TestStringerInterface(t *testing.T) {
	m := mustSparse(t, 3, 3, 0, 1)
	mustSet(t, m, 2, 1, -0.5)
	require.Equal(t, "[2, 1] : -0.5\n", m.String())

	var _ matrix.Matrix = m
}
