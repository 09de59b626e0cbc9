// SPDX-License-Identifier: MIT
// Package matrix_test: runnable examples for the kernel surface.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/zkmat/matrix"
	"github.com/katalvlaran/zkmat/scalar"
)

func ExampleAdd() {
	r := scalar.Int[int]{}
	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})

	sum, _ := matrix.Add[int](r, a, b)
	fmt.Print(sum)
	// Output:
	// [6, 8]
	// [10, 12]
}

func ExampleMul() {
	r := scalar.Int[int]{}
	a, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.FromRows([][]int{{7, 8}, {9, 10}, {11, 12}})

	// Shapes chain through the inner dimension: (2×3)·(3×2) → 2×2.
	p, _ := matrix.Mul[int](r, a, b)
	fmt.Print(p)
	// Output:
	// [58, 64]
	// [139, 154]
}

func ExampleTranspose() {
	a, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})

	tr, _ := matrix.Transpose[int](a)
	fmt.Print(tr)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

func ExampleTrace() {
	r := scalar.Int[int]{}
	a, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sum, _ := matrix.Trace[int](r, a)
	fmt.Println(sum)
	// Output: 15
}

func ExampleDotProduct() {
	r := scalar.Int[int]{}

	dot, _ := matrix.DotProduct[int](r, []int{1, 2, 3}, []int{4, 5, 6})
	fmt.Println(dot)
	// Output: 32
}

func ExampleNewIdentity() {
	r := scalar.Int[int]{}
	a, _ := matrix.FromRows([][]int{{2, 4}, {6, 8}})
	identity, _ := matrix.NewIdentity[int](r, 2)

	// Multiplying by the identity is a no-op.
	p, _ := matrix.Mul[int](r, a, identity)
	fmt.Print(p)
	// Output:
	// [2, 4]
	// [6, 8]
}
