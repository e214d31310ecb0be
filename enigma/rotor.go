// SPDX-License-Identifier: MIT
// Package: rotorcipher/enigma
//
// rotor.go: a steppable, position-dependent permutation wheel.
//
// Contract:
//   • Wiring is fixed for the rotor's lifetime (defensively copied).
//   • Transform() = RotationMatrix(position) × wiring, rebuilt on every call.
//   • InverseTransform() = Transform()ᵀ.
//   • position ∈ [0,25], advanced modulo 26 by Step.

package enigma

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/matrix"
	"github.com/katalvlaran/rotorcipher/permutation"
)

const methodNewRotor = "NewRotor"

// Rotor is a wired wheel with a mutable position and a fixed notch.
type Rotor struct {
	wiring   *matrix.Dense
	position int
	original int
	notch    int
}

// NewRotor validates and builds a rotor.
//
// Errors:
//   - ErrInvalidConfiguration if position or notch is outside [0,25], or if
//     wiring is nil, not 26×26, or not a permutation matrix.
func NewRotor(wiring matrix.Matrix, position, notch int) (*Rotor, error) {
	if err := validateLetterIndex("position", position); err != nil {
		return nil, err
	}
	if err := validateLetterIndex("notch", notch); err != nil {
		return nil, err
	}
	if err := matrix.ValidatePermutation(wiring); err != nil {
		return nil, fmt.Errorf("%s: wiring: %w: %w", methodNewRotor, ErrInvalidConfiguration, err)
	}
	if wiring.Rows() != alphabet.Size {
		return nil, fmt.Errorf("%s: wiring is %dx%d, want %dx%d: %w", methodNewRotor,
			wiring.Rows(), wiring.Cols(), alphabet.Size, alphabet.Size, ErrInvalidConfiguration)
	}
	w, err := denseCopy(wiring)
	if err != nil {
		return nil, fmt.Errorf("%s: wiring: %w: %w", methodNewRotor, ErrInvalidConfiguration, err)
	}

	return &Rotor{wiring: w, position: position, original: position, notch: notch}, nil
}

// NewRotorFromWiring builds a rotor whose wiring sends letter i to wiring[i].
//
// Errors:
//   - permutation.ErrInvalidWiring for a malformed wiring string.
//   - ErrInvalidConfiguration for position or notch outside [0,25].
func NewRotorFromWiring(wiring string, position, notch int) (*Rotor, error) {
	w, err := permutation.FromWiring(wiring)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewRotor, err)
	}

	return NewRotor(w, position, notch)
}

func validateLetterIndex(field string, v int) error {
	if v < 0 || v >= alphabet.Size {
		return fmt.Errorf("%s: %s=%d outside [0,%d]: %w", methodNewRotor, field, v, alphabet.Size-1, ErrInvalidConfiguration)
	}

	return nil
}

// Transform returns RotationMatrix(position) × wiring: the wiring acts first,
// then the shift by the current position.
func (r *Rotor) Transform() matrix.Matrix {
	return mustMatrix(matrix.Mul(permutation.RotationMatrix(r.position), r.wiring))
}

// InverseTransform returns the transpose of Transform, which is its inverse.
func (r *Rotor) InverseTransform() matrix.Matrix {
	return mustMatrix(matrix.Transpose(r.Transform()))
}

// Step advances the position by one, wrapping 25 → 0.
func (r *Rotor) Step() {
	r.position = (r.position + 1) % alphabet.Size
}

// AtNotch reports whether the rotor currently sits at its notch.
func (r *Rotor) AtNotch() bool { return r.position == r.notch }

// Reset restores the construction-time position.
func (r *Rotor) Reset() { r.position = r.original }

// Position returns the current position.
func (r *Rotor) Position() int { return r.position }

// Notch returns the notch position.
func (r *Rotor) Notch() int { return r.notch }

// String implements fmt.Stringer.
func (r *Rotor) String() string {
	return fmt.Sprintf("Rotor at pos:%d and notch:%d", r.position, r.notch)
}
