// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered conditions; panics are
// reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil ring/operand -> shape/index -> dimension mismatch -> structural
// violations (ragged rows, non-square).

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// row or column extent). Zero extents are legal: they describe empty
	// matrices, and folds over them yield the ring's Zero.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, Mul where a.Cols !=
	// b.Rows, or vectors of unequal length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Trace,
	// IdentityLike) but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that a [][]T literal had rows of differing
	// lengths, which cannot represent a rectangular matrix.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRing indicates that a nil Ring was supplied to a kernel that
	// needs scalar arithmetic.
	ErrNilRing = errors.New("matrix: nil ring")

	// ErrNilVector indicates that a nil []T was passed where a fixed-length
	// vector is required (DotProduct, MatVec).
	ErrNilVector = errors.New("matrix: nil vector")
)
