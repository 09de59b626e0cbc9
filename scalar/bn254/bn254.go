// SPDX-License-Identifier: MIT
// Package bn254 provides the Ring over the BN254 scalar field — the element
// type arithmetic-circuit toolchains evaluate matrices over. Elements are
// gnark-crypto fr.Element values (fixed-width Montgomery form), so ring
// operations are constant-size with no heap allocation.

package bn254

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Fr is the Ring over fr.Element. Zero-size value type: free to copy.
//
// All methods return by value and never mutate their operands; fr.Element is
// a plain array type, so the value-copy in and out is four words.
//
// AI-Hints:
//   - fr.Element values produced through Fr are always in canonical
//     Montgomery form; == comparison (or Element.Equal) is exact.
//   - Use Elem to lift small integer constants into the field.
type Fr struct{}

// Zero returns the field's additive identity. Complexity: O(1).
func (Fr) Zero() fr.Element {
	var z fr.Element // the zero Element is the field zero
	return z
}

// One returns the field's multiplicative identity. Complexity: O(1).
func (Fr) One() fr.Element {
	var z fr.Element
	z.SetOne()
	return z
}

// Add returns x + y in the field. Complexity: O(1).
func (Fr) Add(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Add(&x, &y)
	return z
}

// Sub returns x - y in the field. Complexity: O(1).
func (Fr) Sub(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&x, &y)
	return z
}

// Mul returns x * y in the field. Complexity: O(1).
func (Fr) Mul(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&x, &y)
	return z
}

// Elem lifts a uint64 constant into the field.
// Complexity: O(1) (one Montgomery conversion).
func Elem(v uint64) fr.Element {
	var z fr.Element
	z.SetUint64(v)
	return z
}
