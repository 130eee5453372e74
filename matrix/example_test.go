package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sparsemat/matrix"
)

// ExampleSparse shows reads, writes and the diagnostic dump.
func ExampleSparse() {
	m, err := matrix.NewSparse(10, 10, 1, 5)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = m.Set(5, 5, 2.2)
	_ = m.Set(5, 4, 2.1)
	_ = m.Set(2, 8, 2.8)

	v, _ := m.At(0, 0)
	fmt.Println("default:", v)
	_ = m.Dump(os.Stdout)

	_ = m.Set(5, 5, 1) // back to default: entry removed
	_ = m.Clear(5, 4)
	fmt.Println("overrides left:", m.NNZ())

	// Output:
	// default: 1
	// [5, 5] : 2.2
	// [2, 8] : 2.8
	// [5, 4] : 2.1
	// overrides left: 1
}

// ExampleSum adds two matrices with different defaults.
func ExampleSum() {
	a, _ := matrix.NewSparse(1000, 1001, 79, 25)
	b, _ := matrix.NewSparse(1000, 1001, 15, 27)
	_ = a.Set(884, 13, 31)
	_ = b.Set(884, 13, 49)
	_ = a.Set(0, 441, 997)
	_ = b.Set(0, 441, 999)

	c, err := matrix.Sum(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := c.At(884, 13)
	y, _ := c.At(0, 441)
	z, _ := c.At(500, 500)
	fmt.Println(c.DefaultValue(), x, y, z)

	// Output:
	// 94 80 1996 94
}

// ExampleSum_mismatch shows the error for operands of different shape.
func ExampleSum_mismatch() {
	a, _ := matrix.NewSparse(10, 70, 0, 9)
	b, _ := matrix.NewSparse(10, 71, 6, 6)

	_, err := matrix.Sum(a, b)
	fmt.Println(err)

	// Output:
	// Sum: ValidateSameShape: Columns: matrix: dimension mismatch
}
