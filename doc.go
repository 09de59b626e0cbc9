// Package zkmat is a generic, dimension-checked matrix arithmetic toolkit
// designed to be lowered into arithmetic-circuit form by zero-knowledge
// proof toolchains.
//
// 🚀 What is zkmat?
//
//	A small, deterministic library that brings together:
//		• Generic containers: row-major Dense[T] matrices over any scalar type
//		• Scalar contract: Ring[T] — addition, subtraction, multiplication, zero
//		• Kernels: Add, Sub, ScalarMul, Mul, Transpose, Trace, DotProduct
//		• Ready-made rings: machine numerics, modular big.Int, BN254 field elements
//
// ✨ Why choose zkmat?
//
//   - Circuit-friendly – fixed loop orders, no data-dependent branches,
//     cost proportional to the declared shape
//   - Fail-fast guarantees – every dimension contract is validated at the
//     operation boundary with sentinel errors, never mid-computation
//   - Order-exact – scalar-first multiplication and ascending-index
//     accumulation are preserved for non-commutative element types
//   - Pure Go – no cgo, no I/O, no global state
//
// Everything is organized under two subpackages:
//
//	matrix/ — the Dense container, the Ring contract and all kernels
//	scalar/ — Ring implementations (integers, floats, modular big.Int,
//	          and scalar/bn254 for the BN254 scalar field)
//
// Quick example:
//
//	r := scalar.Int[int]{}
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	sum, _ := matrix.Add[int](r, a, b) // [[6, 8], [10, 12]]
//
// Dimension checking note: Go has no compile-time size parameters, so the
// static shape guarantee of const-generic ecosystems is rendered here as
// strict fail-fast runtime validation — a mismatched shape is reported with
// matrix.ErrDimensionMismatch before any element is touched.
//
//	go get github.com/katalvlaran/zkmat
package zkmat
