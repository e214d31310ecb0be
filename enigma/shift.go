// SPDX-License-Identifier: MIT

package enigma

import "fmt"

// Shift applies a Caesar shift by offset to every letter of word using a
// Rotation. Shift(Shift(w, k), -k) == w.
//
// Errors:
//   - ErrInvalidLetter for input outside 'a'..'z'.
func Shift(word string, offset int) (string, error) {
	msg, err := NewMessage(word)
	if err != nil {
		return "", fmt.Errorf("Shift: %w", err)
	}
	rot := NewRotation(offset)
	for i := 0; i < msg.Len(); i++ {
		mustApply(msg.Transform(rot, i))
	}

	return msg.Word(), nil
}
