// SPDX-License-Identifier: MIT
// Package: rotorcipher/permutation
//
// permutation.go: builders for letter permutation matrices.
//
// Contract:
//   • Every builder returns a fresh alphabet.Size × alphabet.Size *matrix.Dense.
//   • Result columns are one-hot: column i holds its single 1 at row π(i).
//   • Validation errors are sentinels wrapped with the builder name.
//
// Complexity:
//   • Rotation/Cycle/Wiring: O(n²) allocation + O(n) writes, n = 26.
//   • Composition: O(k·n²) for k cycles (Mul skips zero entries).

package permutation

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/matrix"
)

// Builder method tags used for error context.
const (
	methodCycle    = "CyclicPermutationMatrix"
	methodComposed = "ComposedCyclicPermutation"
	methodWiring   = "FromWiring"
)

// fromMapping materialises the permutation i → to[i]. Callers guarantee that
// to is a bijection on [0, alphabet.Size).
func fromMapping(to []int) *matrix.Dense {
	m, err := matrix.NewZeros(alphabet.Size, alphabet.Size)
	if err != nil {
		panic(fmt.Sprintf("permutation: %v", err)) // alphabet.Size is a positive constant
	}
	for i, j := range to {
		_ = m.Set(j, i, 1) // column i → row to[i]
	}

	return m
}

// identityMapping returns [0, 1, ..., alphabet.Size-1].
func identityMapping() []int {
	to := make([]int, alphabet.Size)
	for i := range to {
		to[i] = i
	}

	return to
}

// Identity returns the identity permutation.
func Identity() *matrix.Dense {
	return fromMapping(identityMapping())
}

// Mod normalises k into [0, alphabet.Size), also for negative k.
func Mod(k int) int {
	k %= alphabet.Size
	if k < 0 {
		k += alphabet.Size
	}

	return k
}

// RotationMatrix returns the permutation mapping letter i to (i+offset) mod 26.
// Negative and out-of-range offsets are normalised; RotationMatrix(0) is the
// identity and RotationMatrix(-k) is the inverse of RotationMatrix(k).
func RotationMatrix(offset int) *matrix.Dense {
	offset = Mod(offset)
	to := make([]int, alphabet.Size)
	for i := range to {
		to[i] = (i + offset) % alphabet.Size
	}

	return fromMapping(to)
}

// CyclicPermutationMatrix returns the permutation c0→c1→…→c(k-1)→c0 over the
// letters of cycle, leaving every other letter fixed. Cycles of length 0 or 1
// yield the identity.
//
// Errors:
//   - ErrInvalidCycle if a letter repeats or lies outside 'a'..'z'.
func CyclicPermutationMatrix(cycle string) (*matrix.Dense, error) {
	idx, err := cycleIndices(cycle)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", methodCycle, cycle, err)
	}
	to := identityMapping()
	for i, from := range idx {
		to[from] = idx[(i+1)%len(idx)]
	}

	return fromMapping(to), nil
}

// cycleIndices decodes cycle into letter indices and rejects repeats.
func cycleIndices(cycle string) ([]int, error) {
	var seen [alphabet.Size]bool
	idx := make([]int, 0, len(cycle))
	pos := 0
	for _, r := range cycle {
		i, err := alphabet.LetterToIndex(r)
		if err != nil {
			return nil, fmt.Errorf("letter %q at %d: %w", r, pos, ErrInvalidCycle)
		}
		if seen[i] {
			return nil, fmt.Errorf("letter %q repeated at %d: %w", r, pos, ErrInvalidCycle)
		}
		seen[i] = true
		idx = append(idx, i)
		pos++
	}

	return idx, nil
}

// ComposedCyclicPermutation folds CyclicPermutationMatrix over cycles by
// successive left multiplication, starting from the identity:
// P = C(k-1) × … × C(1) × C(0).
//
// Cycles must be pairwise disjoint; overlapping cycles are not rejected.
//
// Errors:
//   - ErrInvalidCycle from any malformed cycle (wrapped with its index).
func ComposedCyclicPermutation(cycles []string) (*matrix.Dense, error) {
	var acc matrix.Matrix = Identity()
	for k, cycle := range cycles {
		c, err := CyclicPermutationMatrix(cycle)
		if err != nil {
			return nil, fmt.Errorf("%s: cycle %d: %w", methodComposed, k, err)
		}
		if acc, err = matrix.Mul(c, acc); err != nil {
			return nil, fmt.Errorf("%s: cycle %d: %w", methodComposed, k, err)
		}
	}

	return acc.(*matrix.Dense), nil
}

// FromWiring returns the permutation sending letter i to wiring[i], e.g. the
// wiring "bcd…za" equals RotationMatrix(1).
//
// Errors:
//   - ErrInvalidWiring unless wiring holds each of 'a'..'z' exactly once.
func FromWiring(wiring string) (*matrix.Dense, error) {
	var seen [alphabet.Size]bool
	to := make([]int, 0, alphabet.Size)
	for pos, r := range []rune(wiring) {
		j, err := alphabet.LetterToIndex(r)
		if err != nil {
			return nil, fmt.Errorf("%s: letter %q at %d: %w", methodWiring, r, pos, ErrInvalidWiring)
		}
		if seen[j] {
			return nil, fmt.Errorf("%s: letter %q repeated at %d: %w", methodWiring, r, pos, ErrInvalidWiring)
		}
		seen[j] = true
		to = append(to, j)
	}
	if len(to) != alphabet.Size {
		return nil, fmt.Errorf("%s: %d letters, want %d: %w", methodWiring, len(to), alphabet.Size, ErrInvalidWiring)
	}

	return fromMapping(to), nil
}

// IsPermutation reports whether m is a 26×26 permutation matrix.
func IsPermutation(m matrix.Matrix) bool {
	if matrix.ValidatePermutation(m) != nil {
		return false
	}

	return m.Rows() == alphabet.Size
}

// Apply returns π(i) for the permutation p, i.e. the row of the 1 in column i.
// Errors: matrix.ErrOutOfRange if i is not a letter index, matrix.ErrNotPermutation
// if column i holds no 1.
func Apply(p matrix.Matrix, i int) (int, error) {
	if err := matrix.ValidateNotNil(p); err != nil {
		return 0, err
	}
	for row := 0; row < p.Rows(); row++ {
		v, err := p.At(row, i)
		if err != nil {
			return 0, err
		}
		if v == 1 {
			return row, nil
		}
	}

	return 0, fmt.Errorf("Apply: column %d: %w", i, matrix.ErrNotPermutation)
}
