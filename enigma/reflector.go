// SPDX-License-Identifier: MIT

package enigma

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/matrix"
	"github.com/katalvlaran/rotorcipher/permutation"
)

// Reflector is a fixed permutation built from disjoint letter cycles. It
// never steps and the Machine only ever applies its forward transform.
type Reflector struct {
	cycles []string
	perm   *matrix.Dense
}

// NewReflector builds ComposedCyclicPermutation(cycles). Cycles must be
// pairwise disjoint (not checked). With cycles of length ≤ 2 the reflector
// is its own inverse, which is what makes decryption exact.
//
// Errors:
//   - ErrInvalidCycle for a cycle that repeats a letter or leaves 'a'..'z'.
func NewReflector(cycles []string) (*Reflector, error) {
	perm, err := permutation.ComposedCyclicPermutation(cycles)
	if err != nil {
		return nil, fmt.Errorf("NewReflector: %w", err)
	}

	return &Reflector{cycles: append([]string(nil), cycles...), perm: perm}, nil
}

// Transform returns a copy of the precomputed permutation.
func (r *Reflector) Transform() matrix.Matrix {
	return r.perm.Clone()
}

// Cycles returns a copy of the cycles the reflector was built from.
func (r *Reflector) Cycles() []string {
	return append([]string(nil), r.cycles...)
}

// IsInvolutive reports whether the reflector equals its own inverse.
func (r *Reflector) IsInvolutive() bool {
	sq := mustMatrix(matrix.Mul(r.perm, r.perm))

	return sq.(*matrix.Dense).Equal(permutation.Identity())
}

// String implements fmt.Stringer.
func (r *Reflector) String() string {
	return fmt.Sprintf("Reflector %v", r.cycles)
}
