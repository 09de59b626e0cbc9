// Package scalar provides ready-made Ring implementations for common element
// types, so the matrix kernels are usable out of the box.
//
// The scalar package provides:
//
//   - Int[T] and Float[T], zero-size rings over any machine integer or float
//     type (wrap-around and IEEE-754 semantics respectively — exactly Go's
//     native operators).
//   - ModInt, a modular ring over *big.Int residues in [0, modulus).
//
// Every type here satisfies matrix.UnitalRing structurally; the matrix
// package is not imported. The BN254 scalar-field ring lives in the nested
// scalar/bn254 package to keep the gnark-crypto dependency out of callers
// that only need machine numerics.
package scalar
