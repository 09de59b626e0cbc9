// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping beyond the validator tag) so
//     call sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - Every validator is O(1); none reads matrix elements.
//
// AI-Hints:
//   - Centralizing validators eliminates inconsistent guard logic across files.
//   - Use ValidateMulCompatible before any inner-dimension-chaining kernel.
//   - Use ValidateVecLen for any MatVec/DotProduct-like operation to avoid
//     ad hoc length code.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. Ring → NotNil →
//     Shape) so the first violated contract determines the sentinel.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRing – Ensures the scalar ring reference is non-nil.
//
// Inputs: Ring interface value.
// Returns ErrNilRing if r == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateRing[T any](r Ring[T]) error {
	// A nil ring would make every arithmetic call panic; fail fast instead.
	if r == nil {
		return validatorErrorf("ValidateRing", ErrNilRing)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures row/column extents are non-negative.
//
// Inputs: requested rows and cols.
// Returns ErrBadShape on a negative extent; zero extents are accepted.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	// Negative extents cannot describe a matrix; zero extents are legal
	// empty shapes (folds over them produce the ring's Zero).
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels and compatibility guards.
func ValidateSameShape[T any](a, b Matrix[T]) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Errors: ErrNonSquare if Rows != Cols.
// Complexity: O(1).
// AI-Hints: Use before Trace and identity-like constructors.
func ValidateSquare[T any](m Matrix[T]) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and its length matches n.
//
// Errors: ErrNilVector on nil input, ErrDimensionMismatch on length mismatch.
// Complexity: O(1).
func ValidateVecLen[T any](x []T, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil[T any](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for general matrix multiplication compatibility — the inner
// dimension chain (m×n)·(n×k) is the one contract Mul enforces.
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
