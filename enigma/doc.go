// Package enigma simulates an electromechanical rotor cipher machine.
//
// 🚀 What is a rotor machine?
//
//	An ordered stack of rotors (wired permutation wheels that turn) plus a
//	fixed reflector. Each letter enters the stack, passes every rotor, is
//	reflected, and travels back through the rotors in reverse order using
//	each rotor's inverse wiring. Between letters the rotors step: the first
//	rotor always advances, and a rotor sitting at its notch carries its
//	neighbour one place along.
//
// ✨ Building blocks:
//   - Transformer / InverseTransformer: anything that yields the permutation
//     matrix to apply right now.
//   - Rotation: a static uniform shift (also drives Shift, a Caesar cipher).
//   - Rotor: wiring × position, steps and reports its notch.
//   - Reflector: fixed product of disjoint letter cycles.
//   - Message: one-hot vectors transformed position by position.
//   - Machine: the pass and the stepping protocol.
//
// ⚙️ Usage:
//
//	r1, _ := enigma.NewRotorFromWiring("ekmflgdqvzntowyhxuspaibrcj", 0, 16)
//	refl, _ := enigma.NewReflector([]string{"ay", "br", "cu", "dh", "eq", "fs", "gl",
//		"ip", "jx", "kn", "mo", "tz", "vw"})
//	m, _ := enigma.NewMachine([]*enigma.Rotor{r1}, refl)
//	ct, _ := m.TransformWord("hello")
//	m.Reset()
//	pt, _ := m.TransformWord(ct) // "hello"
//
// Decryption is the same pass run from the same starting positions; it is
// exact whenever the reflector is an involution (all cycles of length ≤ 2).
//
// Concurrency: a Machine mutates its rotors while transforming and is not
// safe for concurrent use. Distinct machines share nothing.
package enigma
