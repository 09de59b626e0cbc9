// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation —
// element-wise addition and subtraction, scalar multiplication, matrix
// multiplication, transpose and trace. All kernels perform strict fail-fast
// validation, return clear sentinel errors on dimension mismatches, and keep
// fixed loop orders so non-commutative and non-associative element types
// behave reproducibly.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared helpers for determinism and error
//     reporting.
//
// Notes:
//   - All kernels use central validators and wrap sentinels once via
//     matrixErrorf at the kernel boundary.
//   - Every kernel allocates a fresh *Dense result and never aliases or
//     mutates its inputs; the freshly allocated result may be written in
//     place internally, which is invisible to callers.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScalarMul = "ScalarMul"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opDot       = "DotProduct"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across kernels. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// pointwise computes out[i,j] = combine(a[i,j], b[i,j]) for a fixed binary
// scalar operation. Inputs must have identical shapes. A fresh Dense is
// allocated; operands are not mutated. Internal helper for Add/Sub to share
// validation, allocation and fast-path. (A ±1 sign multiplier cannot select
// between add and sub for arbitrary rings, so the operation is passed as a
// function instead.)
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense — single flat loop 0..n-1.
//     Otherwise fall back to At/Set with fixed i→j order.
//
// Determinism:
//   - Flat 0..(r*c−1) in fast-path; rows-outer, columns-inner in fallback.
//
// Complexity:
//   - Time O(r*c) combine calls, Space O(r*c) for the new result.
func pointwise[T any](a, b Matrix[T], combine func(x, y T) T, opTag string) (Matrix[T], error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense; every cell is assigned below.
	rows, cols := a.Rows(), a.Cols()
	res := newDense[T](rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = combine(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int  // loop iterators (deterministic order)
	var av, bv T  // element temporaries
	var err error // At/Set error carrier
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			res.data[i*cols+j] = combine(av, bv)
		}
	}

	// Return result.
	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate ring non-nil, operands non-nil and identically shaped.
//   - Stage 2: Delegate to the pointwise kernel with ring.Add.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - ring: scalar arithmetic for T.
//   - a, b: operands with the same shape.
//
// Returns:
//   - Matrix[T]: a new Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Flat 0..n-1 for *Dense; rows-outer, columns-inner for the generic path.
//
// Complexity:
//   - Time O(r*c) ring.Add calls, Space O(r*c).
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; wrap an
//     operand in an interface-only type to force the fallback path in tests.
func Add[T any](ring Ring[T], a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateRing(ring); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	return pointwise(a, b, ring.Add, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh
// Dense result. Same validation, determinism and cost model as Add, with
// ring.Sub as the combining operation (operand order a[i,j] - b[i,j] is
// preserved for non-commutative subtraction).
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrDimensionMismatch.
func Sub[T any](ring Ring[T], a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateRing(ring); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	return pointwise(a, b, ring.Sub, opSub)
}

// ScalarMul returns a new matrix whose elements are k * m[i,j] — the scalar
// is ALWAYS the left operand. This is a deliberate, load-bearing convention:
// for non-commutative element types k*v and v*k differ, and downstream
// circuit lowerings rely on the scalar-first order.
//
// Implementation:
//   - Stage 1: ValidateRing(ring), ValidateNotNil(m); allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At scaling.
//
// Inputs:
//   - ring: scalar arithmetic for T.
//   - m: non-nil matrix (r×c).
//   - k: scalar multiplier, applied on the left.
//
// Returns:
//   - Matrix[T]: Dense with elements ring.Mul(k, m[i,j]).
//
// Errors:
//   - ErrNilRing, ErrNilMatrix.
//
// Determinism:
//   - Flat 0..n-1 for *Dense; rows-outer, columns-inner otherwise.
//
// Complexity:
//   - Time O(r*c) ring.Mul calls, Space O(r*c).
func ScalarMul[T any](ring Ring[T], m Matrix[T], k T) (Matrix[T], error) {
	// Validate ring and input non-nil.
	if err := ValidateRing(ring); err != nil {
		return nil, matrixErrorf(opScalarMul, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarMul, err)
	}

	// Allocate result Dense; every cell is assigned below.
	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](rows, cols)

	// Fast-path for Dense input.
	if dm, ok := m.(*Dense[T]); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = ring.Mul(k, dm.data[idx]) // scalar-first, always
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v T
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScalarMul, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = ring.Mul(k, v) // scalar-first, always
		}
	}

	// Return result.
	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Shapes chain through the inner dimension: (m×n)·(n×k) → (m×k).
//
// Implementation:
//   - Stage 1: Validate ring and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Classic triple loop i→j→k. Each output cell starts from
//     ring.Zero() and folds ring.Mul(A[i,k], B[k,j]) in STRICTLY ascending k.
//
// Behavior highlights:
//   - The ascending-k left-to-right accumulation is canonical and
//     load-bearing: for non-associative or non-commutative element types any
//     other order changes the result, so no zero-skipping, blocking or
//     Strassen-style reassociation is performed. Cost stays exactly
//     r*n*c multiplications — the consuming circuit model prices elementary
//     operations, not wall-clock time.
//
// Inputs:
//   - ring: scalar arithmetic for T.
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix[T]: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k loop order on both paths.
//
// Complexity:
//   - Time O(r*n*c) ring.Mul + ring.Add calls, Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to stay on flat row-major indexing.
//   - If you need A·x for a vector x, prefer MatVec over forming a one-column
//     matrix.
func Mul[T any](ring Ring[T], a, b Matrix[T]) (Matrix[T], error) {
	// Validate ring and inputs via canonical validators.
	if err := ValidateRing(ring); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense; every cell is assigned below.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense[T](aRows, bCols)

	var (
		i, j, k int // loop iterators
		sum     T   // per-cell accumulator
	)
	// Fast-path for two Dense matrices: flat row-major indexing.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowA, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for j = 0; j < bCols; j++ {
					sum = ring.Zero()         // fold starts from the additive default
					for k = 0; k < aCols; k++ { // ascending k, left-to-right
						sum = ring.Add(sum, ring.Mul(da.data[rowA+k], db.data[k*bCols+j]))
					}
					res.data[rowR+j] = sum
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	var av, bv T
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ring.Zero()
			for k = 0; k < aCols; k++ { // ascending k, left-to-right
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum = ring.Add(sum, ring.Mul(av, bv)) // accumulate product
			}
			res.data[i*bCols+j] = sum
		}
	}

	// Return result.
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// (r×c) → (c×r) with out[j,i] = m[i,j]. A pure shape-swapping copy — no
// scalar arithmetic is required, so no ring parameter is taken. The input is
// never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, contiguous flat-slice mapping; else generic
//     i→j loop via At.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Transpose is a full materialization; avoid transposing repeatedly in
//     tight loops — hoist and reuse the result.
func Transpose[T any](m Matrix[T]) (Matrix[T], error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res := newDense[T](cols, rows) // dims flipped

	// Fast-path for Dense → Dense.
	var i, j int // loop iterators
	if dm, ok := m.(*Dense[T]); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v T
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	// Return result.
	return res, nil
}

// Trace returns the sum of the main diagonal of a square matrix,
// accumulated left-to-right from ring.Zero() in ascending index order.
//
// Implementation:
//   - Stage 1: ValidateRing(ring), ValidateSquareNonNil(m).
//   - Stage 2: Single ascending-i fold over m[i,i].
//
// Behavior highlights:
//   - Trace of a 0×0 matrix is ring.Zero() (empty fold).
//
// Inputs:
//   - ring: scalar arithmetic for T.
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - T: Σ m[i,i], folded in ascending i.
//
// Errors:
//   - ErrNilRing, ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed ascending-i fold.
//
// Complexity:
//   - Time O(n) ring.Add calls, Space O(1).
func Trace[T any](ring Ring[T], m Matrix[T]) (T, error) {
	var zero T
	// Validate ring and square shape.
	if err := ValidateRing(ring); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}

	// Fold the diagonal from the ring's additive default.
	n := m.Rows()
	sum := ring.Zero()

	// Fast-path: flat diagonal indexing on *Dense.
	if dm, ok := m.(*Dense[T]); ok {
		for i := 0; i < n; i++ { // ascending i, left-to-right
			sum = ring.Add(sum, dm.data[i*n+i])
		}
		return sum, nil
	}

	// Fallback: generic interface loop.
	var v T
	var err error
	for i := 0; i < n; i++ { // ascending i, left-to-right
		v, err = m.At(i, i)
		if err != nil {
			return zero, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum = ring.Add(sum, v)
	}

	return sum, nil
}
