// SPDX-License-Identifier: MIT
// Package matrix: vector kernels. Vectors are plain fixed-length []T slices,
// not a distinct structural type — a vector is an unshaped 1×n sequence with
// the same fixed-length contract as a matrix row.

package matrix

import "fmt"

// DotProduct computes Σ u[i]*v[i] over two equal-length vectors, accumulated
// left-to-right from ring.Zero() in ascending index order.
//
// Implementation:
//   - Stage 1: ValidateRing(ring), ValidateVecLen on both operands.
//   - Stage 2: Single ascending-i fold of ring.Mul(u[i], v[i]).
//
// Behavior highlights:
//   - Operand order inside each product is u[i]*v[i] — preserved for
//     non-commutative element types.
//   - Two empty vectors are legal; the result is ring.Zero().
//
// Inputs:
//   - ring: scalar arithmetic for T.
//   - u, v: non-nil vectors of identical length.
//
// Returns:
//   - T: the accumulated dot product.
//
// Errors:
//   - ErrNilRing, ErrNilVector, ErrDimensionMismatch (length mismatch).
//
// Determinism:
//   - Fixed ascending-i fold.
//
// Complexity:
//   - Time O(n) ring.Mul + ring.Add calls, Space O(1).
func DotProduct[T any](ring Ring[T], u, v []T) (T, error) {
	var zero T
	// Validate the ring first; its Zero seeds the fold.
	if err := ValidateRing(ring); err != nil {
		return zero, matrixErrorf(opDot, err)
	}
	// Validate u non-nil; its length fixes the contract for v.
	if u == nil {
		return zero, matrixErrorf(opDot, validatorErrorf("ValidateVecLen", ErrNilVector))
	}
	// Validate v non-nil and of matching length.
	if err := ValidateVecLen(v, len(u)); err != nil {
		return zero, matrixErrorf(opDot, err)
	}

	// Fold products left-to-right from the additive default.
	sum := ring.Zero()
	for i := 0; i < len(u); i++ { // ascending i, left-to-right
		sum = ring.Add(sum, ring.Mul(u[i], v[i]))
	}

	return sum, nil
}

// MatVec computes y = m · x for a column vector x: y[i] = Σ_j m[i,j]*x[j],
// each row folded left-to-right from ring.Zero() in ascending j order.
//
// Implementation:
//   - Stage 1: ValidateRing(ring), ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: One ascending-j fold per row; *Dense fast-path uses flat
//     row-major indexing, fallback reads via At.
//
// Inputs:
//   - ring: scalar arithmetic for T.
//   - m: non-nil matrix (r×c).
//   - x: non-nil vector of length c.
//
// Returns:
//   - []T: freshly allocated result vector of length r.
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrNilVector, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j loop order on both paths.
//
// Complexity:
//   - Time O(r*c) ring calls, Space O(r) for y.
//
// AI-Hints:
//   - Use *Dense to keep a single flat pass per row.
func MatVec[T any](ring Ring[T], m Matrix[T], x []T) ([]T, error) {
	// Validate ring, matrix and vector length against the column count.
	if err := ValidateRing(ring); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major folds.
	if d, ok := m.(*Dense[T]); ok {
		var i, j, base int // indices and row base offset
		var acc T
		for i = 0; i < rows; i++ { // iterate rows deterministically
			acc = ring.Zero()         // reset accumulator per row
			base = i * cols           // flat base offset for row i
			for j = 0; j < cols; j++ { // ascending j, left-to-right
				acc = ring.Add(acc, ring.Mul(d.data[base+j], x[j]))
			}
			y[i] = acc // store y(i)
		}

		return y, nil // return on fast-path
	}

	// Fallback: interface-based folds via At.
	var i, j int // loop indices
	var mv T     // temporary to hold m(i,j)
	var acc T
	var err error
	for i = 0; i < rows; i++ { // iterate rows
		acc = ring.Zero()          // reset accumulator per row
		for j = 0; j < cols; j++ { // ascending j, left-to-right
			mv, err = m.At(i, j) // read m(i,j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc = ring.Add(acc, ring.Mul(mv, x[j])) // accumulate
		}
		y[i] = acc
	}

	return y, nil // return computed vector
}
