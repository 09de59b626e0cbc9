// SPDX-License-Identifier: MIT
// Package matrix provides generic linear algebra primitives for
// circuit-oriented computations. Dense is the concrete, row-major
// implementation of the Matrix interface, storing elements in a flat slice
// for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order:
// element (i, j) lives at data[i*c+j].
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols Dense matrix with every element set to the
// ring's Zero value.
// Implementation:
//   - Stage 1: Validate ring non-nil and extents non-negative.
//   - Stage 2: Allocate flat backing slice and fill it with ring.Zero().
//
// Behavior highlights:
//   - Zero-extent shapes are legal and produce an empty (but well-shaped) matrix.
//   - The ring's Zero, not Go's zero value, defines the default element; the
//     two differ for pointer-backed scalars such as *big.Int.
//
// Inputs:
//   - ring: scalar capability object supplying Zero.
//   - rows, cols: non-negative extents, fixed for the matrix's lifetime.
//
// Returns:
//   - *Dense[T]: freshly allocated zero matrix.
//
// Errors:
//   - ErrNilRing (nil ring), ErrBadShape (negative extent).
//
// Determinism:
//   - Single allocation, fixed 0..n-1 fill order.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewDense[T any](ring Ring[T], rows, cols int) (*Dense[T], error) {
	// Validate the ring before touching it.
	if err := ValidateRing(ring); err != nil {
		return nil, err
	}
	// Validate dimensions.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	// Allocate flat slice and stamp the ring's zero into every cell.
	data := make([]T, rows*cols)
	zero := ring.Zero() // single Zero call; rings must return value types
	for i := range data {
		data[i] = zero
	}

	// Return initialized Dense.
	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// newDense allocates a rows×cols Dense whose every cell the caller promises
// to assign before the value escapes. Internal to kernels that overwrite the
// full result (Add, Sub, ScalarMul, Mul, Transpose); shape must already be
// validated.
func newDense[T any](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns the ring-agnostic stored value; ErrOutOfRange on bad indices.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	// Compute flat index or error.
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value.
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on bad indices.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	// Compute flat index or error.
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value.
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Note: elements are copied by value; pointer-backed scalars share their
// pointees, which is safe under the Ring contract (rings never mutate
// operands).
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() Matrix[T] {
	// Allocate new slice for data copy.
	copyData := make([]T, len(m.data))
	// Copy all elements into the new slice.
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')         // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
