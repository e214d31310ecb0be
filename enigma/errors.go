// SPDX-License-Identifier: MIT
// Package: rotorcipher/enigma
//
// errors.go: sentinel errors for the cipher engine.
//
// Error policy:
//   • All errors surface at construction or parse time; a validly built
//     Machine never fails while transforming a Message.
//   • Match with errors.Is; context is attached with %w.

package enigma

import (
	"errors"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/permutation"
)

// ErrInvalidConfiguration indicates a rotor position or notch outside
// [0,25], a wiring that is not a 26×26 permutation, an empty rotor list, a
// rotor used twice, or a missing reflector.
var ErrInvalidConfiguration = errors.New("enigma: invalid configuration")

// ErrNilTransformer indicates a nil Transformer was handed to a Message.
var ErrNilTransformer = errors.New("enigma: nil transformer")

// ErrInvalidLetter re-exports the codec sentinel: input outside 'a'..'z'.
var ErrInvalidLetter = alphabet.ErrInvalidLetter

// ErrInvalidCycle re-exports the builder sentinel: malformed reflector cycle.
var ErrInvalidCycle = permutation.ErrInvalidCycle
