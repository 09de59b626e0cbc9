// Package matrix offers generic, shape-checked dense matrix arithmetic over
// any scalar element type.
//
// The matrix package provides:
//
//   - Dense[T], a row-major flat-slice container parameterized by the element
//     type, constructed with an explicit (rows, cols) shape that never changes.
//   - The Ring[T] capability contract — addition, subtraction, multiplication
//     and a default "zero" value — as the ONLY requirements on the element
//     type; kernels never call anything else.
//   - Kernels Add, Sub, ScalarMul, Mul, Transpose, Trace, DotProduct and
//     MatVec, all total, pure and single-pass, each allocating a fresh result
//     and never mutating inputs.
//
// Shape contracts (same shape for Add/Sub, inner-dimension chaining
// (m×n)·(n×k)→(m×k) for Mul, square for Trace, equal lengths for DotProduct)
// are validated fail-fast at the operation boundary and reported with
// sentinel errors; no kernel reads an element before its shape contract
// holds. This is the runtime rendition of a statically shape-checked design:
// Go has no compile-time size parameters, so the boundary check replaces the
// compile error, deliberately and with the same no-partial-result guarantee.
//
// Two conventions are load-bearing for non-commutative or non-associative
// element types and are preserved exactly throughout:
//
//   - ScalarMul computes k * element, scalar on the LEFT;
//   - every fold (Mul cells, Trace, DotProduct, MatVec rows) starts from the
//     ring's Zero and accumulates in strictly ascending index order.
//
// See the scalar package for ready-made Ring implementations, including the
// BN254 scalar field used by arithmetic-circuit toolchains.
package matrix
