// SPDX-License-Identifier: MIT
// Package: rotorcipher/enigma
//
// message.go: a word held as one-hot vectors, transformed per position.
//
// Each position is transformed on its own because the rotors step between
// letters: position i sees different rotor matrices than position i+1.

package enigma

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/matrix"
)

// Message owns the letter sequence being transformed. Its length is fixed at
// construction and its vectors are replaced in place.
type Message struct {
	vectors [][]float64
}

// NewMessage encodes word.
//
// Errors:
//   - ErrInvalidLetter (as *alphabet.LetterError with letter and index) on the
//     first character outside 'a'..'z'.
func NewMessage(word string) (*Message, error) {
	vs, err := alphabet.WordToVectors(word)
	if err != nil {
		return nil, fmt.Errorf("NewMessage: %w", err)
	}

	return &Message{vectors: vs}, nil
}

// Len returns the number of letters.
func (m *Message) Len() int { return len(m.vectors) }

// Transform replaces the vector at pos with t.Transform() · vector.
//
// Errors: ErrNilTransformer, matrix.ErrOutOfRange for a bad pos, or a
// dimension error if t yields a non 26×26 matrix.
func (m *Message) Transform(t Transformer, pos int) error {
	if t == nil {
		return fmt.Errorf("Message.Transform: %w", ErrNilTransformer)
	}

	return m.apply("Message.Transform", t.Transform(), pos)
}

// InverseTransform replaces the vector at pos with t.InverseTransform() · vector.
func (m *Message) InverseTransform(t InverseTransformer, pos int) error {
	if t == nil {
		return fmt.Errorf("Message.InverseTransform: %w", ErrNilTransformer)
	}

	return m.apply("Message.InverseTransform", t.InverseTransform(), pos)
}

func (m *Message) apply(op string, p matrix.Matrix, pos int) error {
	if pos < 0 || pos >= len(m.vectors) {
		return fmt.Errorf("%s: position %d of %d: %w", op, pos, len(m.vectors), matrix.ErrOutOfRange)
	}
	y, err := matrix.MatVec(p, m.vectors[pos])
	if err != nil {
		return fmt.Errorf("%s: position %d: %w", op, pos, err)
	}
	m.vectors[pos] = y

	return nil
}

// Vector returns a copy of the vector at pos.
func (m *Message) Vector(pos int) ([]float64, error) {
	if pos < 0 || pos >= len(m.vectors) {
		return nil, fmt.Errorf("Message.Vector: position %d of %d: %w", pos, len(m.vectors), matrix.ErrOutOfRange)
	}

	return append([]float64(nil), m.vectors[pos]...), nil
}

// Word decodes the current vectors. It does not mutate the message.
func (m *Message) Word() string {
	return alphabet.VectorsToWord(m.vectors)
}

// String implements fmt.Stringer.
func (m *Message) String() string { return m.Word() }
