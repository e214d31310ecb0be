// Package permutation builds the 26×26 permutation matrices the cipher is
// made of.
//
// 🚀 What is here?
//
//	RotationMatrix(k)              : uniform shift i → (i+k) mod 26
//	CyclicPermutationMatrix("abc") : a→b→c→a, all other letters fixed
//	ComposedCyclicPermutation(cs)  : product of several disjoint cycles
//	FromWiring("ekmf...")          : rotor wiring: letter i → wiring[i]
//
// Every builder returns a *matrix.Dense P acting on one-hot column vectors:
// P·e_i = e_π(i). Composition is left multiplication, so in P×Q the factor Q
// acts first. The inverse of any result is its transpose.
//
// Preconditions:
//   - Cycles passed to ComposedCyclicPermutation must be pairwise disjoint.
//     Overlapping cycles still produce a valid permutation, just not the one a
//     wiring chart describes; this is not checked.
package permutation
