// Package sparsemat is a small library for sparse matrices whose cells
// mostly share one default value.
//
// What is inside:
//
//	matrix/   : Sparse (default value + hashed overrides), sparse and dense
//	            addition, Dense conversion and tolerance comparison
//	examples/ : runnable programs, e.g. sparse vs dense addition timing
//
// Quick example:
//
//	a, _ := matrix.NewSparse(1000, 1000, 79, 64)
//	b, _ := matrix.NewSparse(1000, 1000, 15, 64)
//	_ = a.Set(884, 13, 31)
//	c, _ := matrix.Sum(a, b) // c.DefaultValue() == 94, c.At(884, 13) == 46
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
