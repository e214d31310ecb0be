// Package rotorcipher is a rotor machine cipher built on permutation
// matrices: letters become one-hot vectors, wheels become 26×26 permutation
// matrices, and enciphering a letter is a product of matrices.
//
// What is inside?
//
//	A small, dependency-light engine that brings together:
//		• Linear algebra: dense matrices, products, transposes, validators
//		• Alphabet codec: letters ⇄ indices ⇄ one-hot vectors
//		• Permutation builders: rotations, cycles, composed reflectors, wirings
//		• Cipher engine: rotors with notches, a reflector, the stepping machine
//		• YAML machine descriptions and a cobra CLI
//
// Under the hood everything is organised as:
//
//	matrix/          : Dense, Mul, Transpose, MatVec, permutation validators
//	alphabet/        : letter and word encoding
//	permutation/     : RotationMatrix, CyclicPermutationMatrix, FromWiring
//	enigma/          : Rotor, Reflector, Message, Machine, Shift
//	config/          : YAML load/save/validate/build
//	cmd/rotorcipher/ : encrypt, decrypt, shift, init
//
// One letter through a machine with rotors E_0..E_{n-1} and reflector R:
//
//	v' = E_0ᵀ · … · E_{n-1}ᵀ · R · E_{n-1} · … · E_0 · v
//
// With an involutive R the whole product is its own inverse, so the same
// pass from the same start positions deciphers.
//
//	go get github.com/katalvlaran/rotorcipher/enigma
package rotorcipher
