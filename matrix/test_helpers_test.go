// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data deterministic (seeded LCG fills) so failures reproduce.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/zkmat/matrix"
	"github.com/katalvlaran/zkmat/scalar"
)

// ints is the default element ring for unit tests: exact machine arithmetic,
// no rounding concerns.
var ints = scalar.Int[int64]{}

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (interface fallback) paths in
// the code under test; results must match the fast path exactly.
type hide struct{ matrix.Matrix[int64] }

// symRing is a "recording" ring over strings: every operation returns the
// fully parenthesized expression it was asked to compute. Multiplying or
// folding symbolic matrices therefore yields the EXACT operand and
// accumulation order as a string, which is how the ordering contracts
// (scalar-first ScalarMul, ascending-index folds) are pinned down.
type symRing struct{}

func (symRing) Zero() string           { return "0" }
func (symRing) One() string            { return "1" }
func (symRing) Add(x, y string) string { return "(" + x + "+" + y + ")" }
func (symRing) Sub(x, y string) string { return "(" + x + "-" + y + ")" }
func (symRing) Mul(x, y string) string { return "(" + x + "*" + y + ")" }

// MustDense ALLOCATES an r×c zero *Dense over the int64 ring or fails the
// test (fatal on error).
func MustDense(t testing.TB, rows, cols int) *matrix.Dense[int64] {
	t.Helper()
	m, err := matrix.NewDense[int64](ints, rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt[T any](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes m(i,j) = v or fails the test.
func MustSet[T any](t testing.TB, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustFromRows lifts a [][]T literal or fails the test.
func MustFromRows[T any](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// lcg is a tiny deterministic pseudo-random sequence for fills; the seed
// fully determines the matrix contents so property failures replay exactly.
func lcg(seed int64) func() int64 {
	state := uint64(seed)
	return func() int64 {
		state = state*6364136223846793005 + 1442695040888963407
		return int64(state>>33) - (1 << 30) // small-ish signed values
	}
}

// randDense builds an r×c int64 matrix deterministically from seed.
func randDense(t testing.TB, rows, cols int, seed int64) *matrix.Dense[int64] {
	t.Helper()
	m := MustDense(t, rows, cols)
	next := lcg(seed)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			MustSet(t, m, i, j, next())
		}
	}
	return m
}

// equalMat reports whether two matrices have identical shape and elements.
// T must be comparable: int64, strings and fr.Element all are.
func equalMat[T comparable](t testing.TB, a, b matrix.Matrix[T]) bool {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if MustAt(t, a, i, j) != MustAt(t, b, i, j) {
				return false
			}
		}
	}
	return true
}

// requireCells fails the test unless m equals the row-major want literal.
func requireCells[T comparable](t *testing.T, m matrix.Matrix[T], want [][]T) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows: got %d, want %d", m.Rows(), len(want))
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols: got %d, want %d", m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("at [%d,%d]: got %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// dims formats a shape for subtest names.
func dims(rows, cols int) string { return fmt.Sprintf("%dx%d", rows, cols) }
