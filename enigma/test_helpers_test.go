package enigma_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/enigma"
	"github.com/katalvlaran/rotorcipher/permutation"
	"github.com/stretchr/testify/require"
)

const identityWiring = "abcdefghijklmnopqrstuvwxyz"

// mustRotor builds a rotor from a wiring string or fails the test.
func mustRotor(t testing.TB, wiring string, position, notch int) *enigma.Rotor {
	t.Helper()
	r, err := enigma.NewRotorFromWiring(wiring, position, notch)
	require.NoError(t, err)

	return r
}

// identityRotor builds a rotor whose wiring is the identity.
func identityRotor(t testing.TB, position, notch int) *enigma.Rotor {
	t.Helper()
	r, err := enigma.NewRotor(permutation.Identity(), position, notch)
	require.NoError(t, err)

	return r
}

func mustReflector(t testing.TB, cycles ...string) *enigma.Reflector {
	t.Helper()
	r, err := enigma.NewReflector(cycles)
	require.NoError(t, err)

	return r
}

func mustMachine(t testing.TB, reflector *enigma.Reflector, rotors ...*enigma.Rotor) *enigma.Machine {
	t.Helper()
	m, err := enigma.NewMachine(rotors, reflector)
	require.NoError(t, err)

	return m
}

// randomWiring returns a seeded random rearrangement of the alphabet.
func randomWiring(rng *rand.Rand) string {
	b := make([]rune, alphabet.Size)
	for i, j := range rng.Perm(alphabet.Size) {
		b[i] = alphabet.First + rune(j)
	}

	return string(b)
}

// randomPairs returns 13 disjoint 2-cycles covering the alphabet.
func randomPairs(rng *rand.Rand) []string {
	perm := rng.Perm(alphabet.Size)
	pairs := make([]string, 0, alphabet.Size/2)
	for i := 0; i < alphabet.Size; i += 2 {
		pairs = append(pairs, string([]rune{alphabet.First + rune(perm[i]), alphabet.First + rune(perm[i+1])}))
	}

	return pairs
}

// randomWord returns a seeded random lowercase word of length n.
func randomWord(rng *rand.Rand, n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = alphabet.First + rune(rng.Intn(alphabet.Size))
	}

	return string(b)
}
