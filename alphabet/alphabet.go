// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rotorcipher/matrix"
)

const (
	// Size is the number of letters in the alphabet.
	Size = 26

	// First is the letter with index 0.
	First = 'a'

	// Last is the letter with index Size-1.
	Last = 'z'
)

// LetterToIndex maps 'a'..'z' onto 0..25.
// Errors: *LetterError (unwraps to ErrInvalidLetter) for anything else.
func LetterToIndex(r rune) (int, error) {
	if r < First || r > Last {
		return 0, &LetterError{Letter: r, Position: -1}
	}

	return int(r - First), nil
}

// IndexToLetter maps 0..25 onto 'a'..'z'.
func IndexToLetter(i int) (rune, error) {
	if i < 0 || i >= Size {
		return 0, fmt.Errorf("IndexToLetter(%d): %w", i, ErrInvalidLetter)
	}

	return First + rune(i), nil
}

// LetterToVector returns the one-hot encoding of r.
// Errors: *LetterError (unwraps to ErrInvalidLetter).
func LetterToVector(r rune) ([]float64, error) {
	i, err := LetterToIndex(r)
	if err != nil {
		return nil, err
	}

	// i is in range, NewUnitVector cannot fail here.
	v, _ := matrix.NewUnitVector(Size, i)

	return v, nil
}

// VectorToLetter decodes v by taking the index of its maximum entry (the
// first one on ties). v is not checked for one-hot-ness; an empty vector or
// one longer than Size decodes to the clamped index.
func VectorToLetter(v []float64) rune {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	if best >= Size {
		best = Size - 1
	}

	return First + rune(best)
}

// WordToVectors encodes every rune of word as a one-hot vector.
// It fails on the first invalid rune with a *LetterError carrying that rune
// and its zero-based rune index.
// Complexity: O(len(word) * Size).
func WordToVectors(word string) ([][]float64, error) {
	out := make([][]float64, 0, len(word))
	pos := 0
	for _, r := range word {
		v, err := LetterToVector(r)
		if err != nil {
			return nil, &LetterError{Letter: r, Position: pos}
		}
		out = append(out, v)
		pos++
	}

	return out, nil
}

// VectorsToWord is the element-wise inverse of WordToVectors.
func VectorsToWord(vs [][]float64) string {
	var b strings.Builder
	b.Grow(len(vs))
	for _, v := range vs {
		b.WriteRune(VectorToLetter(v))
	}

	return b.String()
}
