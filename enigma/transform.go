// SPDX-License-Identifier: MIT

package enigma

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/matrix"
)

// Transformer yields the permutation matrix to apply right now.
type Transformer interface {
	Transform() matrix.Matrix
}

// InverseTransformer additionally yields the inverse of Transform.
type InverseTransformer interface {
	Transformer
	InverseTransform() matrix.Matrix
}

// Compile-time conformance.
var (
	_ Transformer        = (*Rotation)(nil)
	_ Transformer        = (*Reflector)(nil)
	_ InverseTransformer = (*Rotor)(nil)
)

// mustMatrix unwraps kernel results whose operands are known-good 26×26
// permutations. A failure here is a programmer error, not a user error.
func mustMatrix(m matrix.Matrix, err error) matrix.Matrix {
	if err != nil {
		panic(fmt.Sprintf("enigma: internal invariant violated: %v", err))
	}

	return m
}

// denseCopy copies any 26×26 Matrix into a fresh *matrix.Dense.
func denseCopy(m matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.NewZeros(alphabet.Size, alphabet.Size)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < alphabet.Size; i++ {
		for j := 0; j < alphabet.Size; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
