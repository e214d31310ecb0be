// SPDX-License-Identifier: MIT

package enigma

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/matrix"
	"github.com/katalvlaran/rotorcipher/permutation"
)

// Rotation is a static uniform shift of the alphabet. It never steps.
type Rotation struct {
	offset int // normalised to [0,25]
}

// NewRotation returns the shift by offset places; any integer is accepted and
// normalised modulo 26.
func NewRotation(offset int) *Rotation {
	return &Rotation{offset: permutation.Mod(offset)}
}

// Offset returns the normalised shift.
func (r *Rotation) Offset() int { return r.offset }

// Transform returns RotationMatrix(offset).
func (r *Rotation) Transform() matrix.Matrix {
	return permutation.RotationMatrix(r.offset)
}

// String implements fmt.Stringer.
func (r *Rotation) String() string {
	return fmt.Sprintf("Rotation by %d", r.offset)
}
