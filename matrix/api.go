// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or accumulation policy of the
//     underlying kernels: scalar-first multiplication and ascending-index
//     folds are preserved through every alias.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewZeros/NewIdentity to build matrices with explicit shape and
//     neutral elements.
//   - Use FromRows to lift literal [][]T data into a Dense.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero fill.
//
// Note: Returns (*Dense[T], error) to surface ErrNilRing/ErrBadShape.
func NewZeros[T any](ring Ring[T], rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(ring, rows, cols)
}

// NewIdentity returns I_n (n×n identity; One on the diagonal, Zero elsewhere).
// Requires a UnitalRing — the only place the package needs a multiplicative
// identity.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: Use as the neutral element of Mul: Mul(r, A, NewIdentity(r, A.Cols())) == A.
func NewIdentity[T any](ring UnitalRing[T], n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense[T](ring, n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	one := ring.One()
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = one // direct flat write; bounds hold by construction
	}

	// Return the identity matrix.
	return I, nil
}

// FromRows builds a *Dense from a row-major [][]T literal. Every row must
// have the same length; the first row fixes the column count. The input
// slices are copied, never aliased.
//
// Implementation:
//   - Stage 1: Derive shape from the literal; reject ragged rows.
//   - Stage 2: Copy row by row into the flat backing slice.
//
// Inputs:
//   - rows: row-major data; may be empty (yields a 0×0 matrix).
//
// Returns:
//   - *Dense[T]: freshly allocated matrix holding a copy of the data.
//
// Errors:
//   - ErrRaggedRows when any row length differs from the first row's.
//
// Determinism:
//   - Fixed row-by-row copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	// Derive the shape from the literal itself.
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0]) // first row fixes the column count
	}

	// Allocate and copy, rejecting ragged input before any partial state leaks.
	m := newDense[T](r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, validatorErrorf("FromRows", ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], rows[i]) // row-major block copy
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same concrete type if m is
// *Dense). Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c).
func CloneMatrix[T any](m Matrix[T]) Matrix[T] {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c) zero fill. Handy to preallocate staging buffers.
//
// Errors: ErrNilRing, ErrNilMatrix.
func ZerosLike[T any](ring Ring[T], m Matrix[T]) (*Dense[T], error) {
	// Validate m before reading its shape.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(ring, m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via the central validator.
//
// Errors: ErrNilRing, ErrNilMatrix, ErrNonSquare.
func IdentityLike[T any](ring UnitalRing[T], m Matrix[T]) (*Dense[T], error) {
	// Ensure the input is non-nil and square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(ring, m.Rows()) // returns (*Dense[T], error)
}

// ---------- Kernel aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(r*c).
//
// AI-Hints: Prefer passing *Dense operands for the single flat-loop fast-path.
func Sum[E any](ring Ring[E], a, b Matrix[E]) (Matrix[E], error) { return Add(ring, a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(r*c).
func Diff[E any](ring Ring[E], a, b Matrix[E]) (Matrix[E], error) { return Sub(ring, a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product[E any](ring Ring[E], a, b Matrix[E]) (Matrix[E], error) { return Mul(ring, a, b) }

// ScaleBy is an alias for ScalarMul: k*m with the scalar on the left.
// Complexity: O(r*c).
func ScaleBy[E any](ring Ring[E], m Matrix[E], k E) (Matrix[E], error) {
	return ScalarMul(ring, m, k)
}

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(r*c).
//
// AI-Hints: Good for small helpers and chaining.
func T[E any](m Matrix[E]) (Matrix[E], error) { return Transpose(m) }
