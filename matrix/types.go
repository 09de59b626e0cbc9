// SPDX-License-Identifier: MIT

// Package matrix: core contracts for the generic matrix surface.
// This file intentionally contains ONLY the polymorphic interfaces: the
// scalar capability contract (Ring, UnitalRing) and the matrix surface
// (Matrix). Errors live in errors.go, validators in validators.go, the
// concrete container in dense.go, kernels in ops.go, per the package
// conventions.
package matrix

// Ring is the capability contract every scalar element type must satisfy.
// The kernels in this package call EXACTLY these four capabilities and
// nothing else; correctness of the supplied arithmetic is the caller's
// responsibility. T need not be a field, or even commutative — kernels keep
// fixed operand and accumulation orders so non-commutative and
// non-associative element types behave reproducibly.
//
// Determinism:
//   - All methods must be total, pure and side-effect-free.
//
// Complexity notes: every method is expected O(1) in elementary operations
// of T (kernels price their cost in calls to these methods).
//
// AI-Hints:
//   - Implement Ring as an empty (or tiny) value type so it is free to copy.
//   - Return fresh values; never alias or mutate the inputs (big.Int-style
//     types must allocate their result).
type Ring[T any] interface {
	// Zero returns T's additive default value. Must be total.
	// Complexity: O(1).
	Zero() T

	// Add returns x + y. Must not mutate x or y.
	// Complexity: O(1).
	Add(x, y T) T

	// Sub returns x - y. Must not mutate x or y.
	// Complexity: O(1).
	Sub(x, y T) T

	// Mul returns x * y, in that operand order. Must not mutate x or y.
	// Complexity: O(1).
	Mul(x, y T) T
}

// UnitalRing extends Ring with a multiplicative identity. The core kernels
// never require One; only identity construction (NewIdentity, IdentityLike)
// does, which is why the capability lives in a dedicated extension rather
// than in the umbrella contract.
type UnitalRing[T any] interface {
	Ring[T]

	// One returns T's multiplicative identity.
	// Complexity: O(1).
	One() T
}

// Matrix represents a two-dimensional array of T values with a fixed shape.
// The shape (Rows, Cols) is set at construction and never changes; kernels
// treat it as part of the value's identity and validate it fail-fast before
// touching any element.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
