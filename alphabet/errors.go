// SPDX-License-Identifier: MIT
// Package: rotorcipher/alphabet
//
// errors.go: sentinel errors for the alphabet codec.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Positional detail travels in *LetterError, reachable via errors.As.

package alphabet

import (
	"errors"
	"fmt"
)

// ErrInvalidLetter indicates a character outside 'a'..'z' (or an index outside
// [0,25]) was handed to the codec.
// Usage: if errors.Is(err, ErrInvalidLetter) { /* reject the input word */ }.
var ErrInvalidLetter = errors.New("alphabet: invalid letter")

// LetterError reports the offending character and its zero-based position in
// the input word. Position is -1 when a single letter was decoded on its own.
type LetterError struct {
	Letter   rune
	Position int
}

// Error implements error.
func (e *LetterError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%v: %q", ErrInvalidLetter, e.Letter)
	}

	return fmt.Sprintf("%v: %q at index %d", ErrInvalidLetter, e.Letter, e.Position)
}

// Unwrap exposes ErrInvalidLetter to errors.Is.
func (e *LetterError) Unwrap() error { return ErrInvalidLetter }
