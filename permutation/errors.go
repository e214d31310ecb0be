// SPDX-License-Identifier: MIT
// Package: rotorcipher/permutation
//
// errors.go: sentinel errors for the permutation builders.

package permutation

import "errors"

// ErrInvalidCycle indicates a cycle that repeats a letter or contains a
// character outside 'a'..'z'.
// Usage: if errors.Is(err, ErrInvalidCycle) { /* fix the reflector chart */ }.
var ErrInvalidCycle = errors.New("permutation: invalid cycle")

// ErrInvalidWiring indicates a wiring string that is not a rearrangement of
// all 26 letters.
// Usage: if errors.Is(err, ErrInvalidWiring) { /* fix the rotor wiring */ }.
var ErrInvalidWiring = errors.New("permutation: invalid wiring")
