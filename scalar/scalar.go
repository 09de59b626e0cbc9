// SPDX-License-Identifier: MIT
// Package scalar: machine-numeric and modular big.Int rings.

package scalar

import (
	"errors"
	"math/big"

	"golang.org/x/exp/constraints"
)

// ErrBadModulus is returned by NewModInt when the modulus is nil or < 2.
var ErrBadModulus = errors.New("scalar: modulus must be an integer >= 2")

// Int is a Ring over any machine integer type T. Arithmetic is Go's native
// integer arithmetic, i.e. two's-complement wrap-around on overflow — the
// caller owns the consequences, per the scalar collaborator contract.
// Zero-size value type: free to copy, safe to share.
type Int[T constraints.Integer] struct{}

// Zero returns the additive identity 0. Complexity: O(1).
func (Int[T]) Zero() T { return 0 }

// One returns the multiplicative identity 1. Complexity: O(1).
func (Int[T]) One() T { return 1 }

// Add returns x + y. Complexity: O(1).
func (Int[T]) Add(x, y T) T { return x + y }

// Sub returns x - y. Complexity: O(1).
func (Int[T]) Sub(x, y T) T { return x - y }

// Mul returns x * y. Complexity: O(1).
func (Int[T]) Mul(x, y T) T { return x * y }

// Float is a Ring over any machine float type T. Arithmetic is IEEE-754;
// NaN/Inf propagate as the hardware defines — no numeric policy is imposed
// here, matching the totality requirement of the scalar contract.
// Zero-size value type: free to copy, safe to share.
type Float[T constraints.Float] struct{}

// Zero returns the additive identity 0. Complexity: O(1).
func (Float[T]) Zero() T { return 0 }

// One returns the multiplicative identity 1. Complexity: O(1).
func (Float[T]) One() T { return 1 }

// Add returns x + y. Complexity: O(1).
func (Float[T]) Add(x, y T) T { return x + y }

// Sub returns x - y. Complexity: O(1).
func (Float[T]) Sub(x, y T) T { return x - y }

// Mul returns x * y. Complexity: O(1).
func (Float[T]) Mul(x, y T) T { return x * y }

// ModInt is a Ring over *big.Int residues modulo a fixed modulus m >= 2.
// Every result is freshly allocated and canonicalized into [0, m); inputs
// are never mutated (big.Int.Mod implements Euclidean reduction, so Sub of
// a larger value from a smaller one still lands in [0, m)).
//
// Inputs to Add/Sub/Mul need not be pre-reduced; outputs always are.
//
// AI-Hints:
//   - Construct once via NewModInt and reuse; the ring value is two words.
//   - For the BN254 scalar field prefer scalar/bn254 — fixed-width Montgomery
//     arithmetic is far cheaper than big.Int reduction.
type ModInt struct {
	m *big.Int // modulus, owned by the ring; never exposed mutably
}

// NewModInt builds a modular ring with the given modulus.
// The modulus is deep-copied so later caller mutation cannot skew results.
//
// Errors: ErrBadModulus if modulus is nil or < 2.
// Complexity: O(len(modulus)) for the defensive copy.
func NewModInt(modulus *big.Int) (ModInt, error) {
	// Reject nil and degenerate moduli (0, 1 and negatives collapse the ring).
	if modulus == nil || modulus.Cmp(big.NewInt(2)) < 0 {
		return ModInt{}, ErrBadModulus
	}

	return ModInt{m: new(big.Int).Set(modulus)}, nil
}

// Modulus returns a copy of the ring's modulus. Complexity: O(len(m)).
func (r ModInt) Modulus() *big.Int { return new(big.Int).Set(r.m) }

// Zero returns a fresh additive identity. Complexity: O(1).
func (r ModInt) Zero() *big.Int { return new(big.Int) }

// One returns a fresh multiplicative identity. Complexity: O(1).
func (r ModInt) One() *big.Int { return big.NewInt(1) }

// Add returns (x + y) mod m in a fresh *big.Int. Complexity: O(len).
func (r ModInt) Add(x, y *big.Int) *big.Int {
	z := new(big.Int).Add(x, y)
	return z.Mod(z, r.m)
}

// Sub returns (x - y) mod m in a fresh *big.Int, canonical in [0, m).
// Complexity: O(len).
func (r ModInt) Sub(x, y *big.Int) *big.Int {
	z := new(big.Int).Sub(x, y)
	return z.Mod(z, r.m) // Euclidean Mod: result is non-negative
}

// Mul returns (x * y) mod m in a fresh *big.Int. Complexity: O(len^2).
func (r ModInt) Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, r.m)
}
