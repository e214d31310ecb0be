// SPDX-License-Identifier: MIT
// Package: rotorcipher/enigma
//
// machine.go: the encryption pass and the stepping state machine.
//
// Pass for letter i:
//   1. entry:   rotors[0], rotors[1], …, rotors[n-1]        (Transform)
//   2. reflect: reflector                                    (Transform)
//   3. exit:    rotors[n-1], …, rotors[0]                    (InverseTransform)
//   4. step:    see Step.
//
// Stepping never depends on the letter that passed through, so running the
// pass again from the same start positions retraces the same rotor states;
// with an involutive reflector E_iᵀ·R·E_i is its own inverse per letter.

package enigma

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"go.uber.org/zap"
)

const methodNewMachine = "NewMachine"

// Machine drives an ordered rotor stack (entry side first) and a reflector.
// It exclusively owns its rotors: callers must not step or reset them
// behind its back. A Machine is not safe for concurrent use.
type Machine struct {
	rotors    []*Rotor
	reflector *Reflector
	logger    *zap.Logger
}

// NewMachine assembles a machine.
//
// Errors:
//   - ErrInvalidConfiguration for an empty rotor list, a nil rotor, the same
//     rotor listed twice, or a nil reflector.
func NewMachine(rotors []*Rotor, reflector *Reflector, opts ...Option) (*Machine, error) {
	if len(rotors) == 0 {
		return nil, fmt.Errorf("%s: no rotors: %w", methodNewMachine, ErrInvalidConfiguration)
	}
	seen := make(map[*Rotor]int, len(rotors))
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("%s: rotor %d is nil: %w", methodNewMachine, i, ErrInvalidConfiguration)
		}
		if j, dup := seen[r]; dup {
			return nil, fmt.Errorf("%s: rotor %d repeats rotor %d: %w", methodNewMachine, i, j, ErrInvalidConfiguration)
		}
		seen[r] = i
	}
	if reflector == nil {
		return nil, fmt.Errorf("%s: nil reflector: %w", methodNewMachine, ErrInvalidConfiguration)
	}

	m := &Machine{
		rotors:    append([]*Rotor(nil), rotors...),
		reflector: reflector,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// TransformMessage enciphers msg in place, position by position, stepping the
// rotors after every letter, and returns msg. An empty message is returned
// unchanged and leaves the rotors untouched. A nil msg yields nil.
func (m *Machine) TransformMessage(msg *Message) *Message {
	if msg == nil {
		return nil
	}
	m.logger.Debug("transforming message",
		zap.Int("length", msg.Len()),
		zap.Ints("positions", m.Positions()),
	)
	for i := 0; i < msg.Len(); i++ {
		m.encipherAt(msg, i)
		m.Step()
	}
	m.logger.Debug("message transformed", zap.Ints("positions", m.Positions()))

	return msg
}

// encipherAt runs entry pass, reflection and exit pass on position i.
// Every operand is a validated 26×26 permutation and i is in range.
func (m *Machine) encipherAt(msg *Message, i int) {
	for _, r := range m.rotors {
		mustApply(msg.Transform(r, i))
	}
	mustApply(msg.Transform(m.reflector, i))
	for k := len(m.rotors) - 1; k >= 0; k-- {
		mustApply(msg.InverseTransform(m.rotors[k], i))
	}
}

func mustApply(err error) {
	if err != nil {
		panic(fmt.Sprintf("enigma: internal invariant violated: %v", err))
	}
}

// TransformWord parses word, transforms it and renders the result.
//
// Errors:
//   - ErrInvalidLetter for input outside 'a'..'z'; the rotors are untouched.
func (m *Machine) TransformWord(word string) (string, error) {
	msg, err := NewMessage(word)
	if err != nil {
		return "", err
	}

	return m.TransformMessage(msg).Word(), nil
}

// Step advances the rotors once.
//
// The first rotor always steps. Rotor k (k ≥ 1) steps iff rotor k-1 sat at
// its notch before this Step began. Scanning from the last rotor down reads
// every notch before its own rotor moves, and the first rotor moves last, so
// every rotor advances at most one place per letter.
func (m *Machine) Step() {
	for k := len(m.rotors) - 1; k >= 1; k-- {
		if m.rotors[k-1].AtNotch() {
			m.rotors[k].Step()
			m.logger.Debug("next rotor is advanced",
				zap.Int("rotor", k),
				zap.Int("position", m.rotors[k].Position()),
			)
		}
	}
	m.rotors[0].Step()
}

// Reset returns every rotor to its original position. The reflector is
// immutable and unaffected.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
}

// Positions returns the current rotor positions, entry side first.
func (m *Machine) Positions() []int {
	out := make([]int, len(m.rotors))
	for i, r := range m.rotors {
		out[i] = r.Position()
	}

	return out
}

// PositionLetters renders Positions as letters ("a" for 0), the way a
// machine's windows show them.
func (m *Machine) PositionLetters() string {
	b := make([]rune, len(m.rotors))
	for i, r := range m.rotors {
		b[i] = alphabet.First + rune(r.Position())
	}

	return string(b)
}

// Len returns the number of rotors.
func (m *Machine) Len() int { return len(m.rotors) }

// Reflector returns the machine's reflector.
func (m *Machine) Reflector() *Reflector { return m.reflector }
