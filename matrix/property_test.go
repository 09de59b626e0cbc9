// SPDX-License-Identifier: MIT
// Package matrix_test: property-based suites for the algebraic laws of the
// kernels, over exact machine integers and over the BN254 scalar field.
package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zkmat/matrix"
	"github.com/katalvlaran/zkmat/scalar/bn254"
)

// propDense builds a rows×cols int64 matrix deterministically from seed.
// Inputs are valid by construction, so errors are impossible here.
func propDense(rows, cols int, seed int64) *matrix.Dense[int64] {
	m, _ := matrix.NewDense[int64](ints, rows, cols)
	next := lcg(seed)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, next())
		}
	}
	return m
}

// propEqual compares shape and cells without a testing.TB so it can run
// inside gopter properties.
func propEqual[T comparable](a, b matrix.Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return false
			}
		}
	}
	return true
}

// isZero reports whether every cell equals the given zero value.
func isZero[T comparable](m matrix.Matrix[T], zero T) bool {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if v != zero {
				return false
			}
		}
	}
	return true
}

func TestProperties_Int64(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genRows := gen.IntRange(0, 6)
	genCols := gen.IntRange(0, 6)
	genSide := gen.IntRange(0, 6)
	genSeed := gen.Int64()

	properties.Property("add(A, Zero) == A", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			zero, _ := matrix.NewZeros[int64](ints, rows, cols)
			sum, err := matrix.Add[int64](ints, a, zero)
			return err == nil && propEqual[int64](a, sum)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("sub(A, A) == Zero", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			d, err := matrix.Sub[int64](ints, a, a)
			return err == nil && isZero[int64](d, 0)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("scalar_mult(A, 0) == Zero", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			s, err := matrix.ScalarMul[int64](ints, a, 0)
			return err == nil && isZero[int64](s, 0)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("scalar_mult(A, 1) == A", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			s, err := matrix.ScalarMul[int64](ints, a, 1)
			return err == nil && propEqual[int64](a, s)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("mult(A, I) == A", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			identity, _ := matrix.NewIdentity[int64](ints, cols)
			p, err := matrix.Mul[int64](ints, a, identity)
			return err == nil && propEqual[int64](a, p)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("mult(A, Zero_{n,k}) == Zero_{m,k}", prop.ForAll(
		func(rows, cols, k int, seed int64) bool {
			a := propDense(rows, cols, seed)
			zero, _ := matrix.NewZeros[int64](ints, cols, k)
			p, err := matrix.Mul[int64](ints, a, zero)
			return err == nil && p.Rows() == rows && p.Cols() == k && isZero[int64](p, 0)
		},
		genRows, genCols, genSide, genSeed,
	))

	properties.Property("transpose(transpose(A)) == A", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			once, err := matrix.Transpose[int64](a)
			if err != nil {
				return false
			}
			twice, err := matrix.Transpose[int64](once)
			return err == nil && propEqual[int64](a, twice)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("transpose swaps shape and cells", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := propDense(rows, cols, seed)
			tr, err := matrix.Transpose[int64](a)
			if err != nil || tr.Rows() != cols || tr.Cols() != rows {
				return false
			}
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					av, _ := a.At(i, j)
					tv, _ := tr.At(j, i)
					if av != tv {
						return false
					}
				}
			}
			return true
		},
		genRows, genCols, genSeed,
	))

	properties.Property("trace(add(A, B)) == trace(A) + trace(B)", prop.ForAll(
		func(n int, seedA, seedB int64) bool {
			a := propDense(n, n, seedA)
			b := propDense(n, n, seedB)
			sum, err := matrix.Add[int64](ints, a, b)
			if err != nil {
				return false
			}
			traceSum, err := matrix.Trace[int64](ints, sum)
			if err != nil {
				return false
			}
			traceA, _ := matrix.Trace[int64](ints, a)
			traceB, _ := matrix.Trace[int64](ints, b)
			return traceSum == ints.Add(traceA, traceB)
		},
		genSide, genSeed, genSeed,
	))

	properties.Property("dot(e_i, e_j) == [i==j]", prop.ForAll(
		func(n, i, j int) bool {
			size := n + 1 // at least 1
			ei := make([]int64, size)
			ej := make([]int64, size)
			ei[i%size] = 1
			ej[j%size] = 1
			got, err := matrix.DotProduct[int64](ints, ei, ej)
			if err != nil {
				return false
			}
			if i%size == j%size {
				return got == 1
			}
			return got == 0
		},
		gen.IntRange(0, 7), gen.IntRange(0, 7), gen.IntRange(0, 7),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// frDense builds a rows×cols matrix of BN254 field elements from seed.
func frDense(ring bn254.Fr, rows, cols int, seed int64) *matrix.Dense[fr.Element] {
	m, _ := matrix.NewDense[fr.Element](ring, rows, cols)
	next := lcg(seed)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, bn254.Elem(uint64(next())))
		}
	}
	return m
}

// The same laws must hold over the arithmetic-circuit field; field elements
// produced through the ring stay canonical, so == comparison is exact.
func TestProperties_BN254(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	ring := bn254.Fr{}

	genRows := gen.IntRange(0, 5)
	genCols := gen.IntRange(0, 5)
	genSeed := gen.Int64()

	properties.Property("add(A, Zero) == A over Fr", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := frDense(ring, rows, cols, seed)
			zero, _ := matrix.NewZeros[fr.Element](ring, rows, cols)
			sum, err := matrix.Add[fr.Element](ring, a, zero)
			return err == nil && propEqual[fr.Element](a, sum)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("sub(A, A) == Zero over Fr", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := frDense(ring, rows, cols, seed)
			d, err := matrix.Sub[fr.Element](ring, a, a)
			return err == nil && isZero[fr.Element](d, ring.Zero())
		},
		genRows, genCols, genSeed,
	))

	properties.Property("mult(A, I) == A over Fr", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := frDense(ring, rows, cols, seed)
			identity, _ := matrix.NewIdentity[fr.Element](ring, cols)
			p, err := matrix.Mul[fr.Element](ring, a, identity)
			return err == nil && propEqual[fr.Element](a, p)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("transpose involution over Fr", prop.ForAll(
		func(rows, cols int, seed int64) bool {
			a := frDense(ring, rows, cols, seed)
			once, err := matrix.Transpose[fr.Element](a)
			if err != nil {
				return false
			}
			twice, err := matrix.Transpose[fr.Element](once)
			return err == nil && propEqual[fr.Element](a, twice)
		},
		genRows, genCols, genSeed,
	))

	properties.Property("trace linearity over Fr", prop.ForAll(
		func(n int, seedA, seedB int64) bool {
			a := frDense(ring, n, n, seedA)
			b := frDense(ring, n, n, seedB)
			sum, err := matrix.Add[fr.Element](ring, a, b)
			if err != nil {
				return false
			}
			traceSum, err := matrix.Trace[fr.Element](ring, sum)
			if err != nil {
				return false
			}
			traceA, _ := matrix.Trace[fr.Element](ring, a)
			traceB, _ := matrix.Trace[fr.Element](ring, b)
			return traceSum == ring.Add(traceA, traceB)
		},
		gen.IntRange(0, 5), genSeed, genSeed,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
