// SPDX-License-Identifier: MIT
// Package: rotorcipher/enigma
//
// options.go: functional options for NewMachine.
//
// Contract:
//   • Options are functional (type Option func(*Machine)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the machine itself never panics on user input.

package enigma

import "go.uber.org/zap"

// Option customizes a Machine during NewMachine.
type Option func(*Machine)

// WithLogger routes the machine's debug events (message passes, notch
// carries) to l. Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("enigma: WithLogger(nil)")
	}
	return func(m *Machine) {
		m.logger = l
	}
}
