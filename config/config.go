// SPDX-License-Identifier: MIT
// Package: rotorcipher/config
//
// config.go: YAML machine description: defaults, load/save, validation and
// assembly into an enigma.Machine.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/rotorcipher/alphabet"
	"github.com/katalvlaran/rotorcipher/enigma"
	"github.com/katalvlaran/rotorcipher/permutation"
	"gopkg.in/yaml.v3"
)

// Config is the root machine description.
type Config struct {
	Rotors    []RotorConfig   `yaml:"rotors"`
	Reflector ReflectorConfig `yaml:"reflector"`
}

// RotorConfig describes one rotor. Wiring lists the image of 'a'..'z' in
// order; Position and Notch are letter indices in [0,25].
type RotorConfig struct {
	Wiring   string `yaml:"wiring"`
	Position int    `yaml:"position"`
	Notch    int    `yaml:"notch"`
}

// ReflectorConfig lists the reflector's disjoint cycles.
type ReflectorConfig struct {
	Cycles []string `yaml:"cycles"`
}

// Default returns a three-rotor machine with a fully paired reflector.
func Default() *Config {
	return &Config{
		Rotors: []RotorConfig{
			{Wiring: "ekmflgdqvzntowyhxuspaibrcj", Position: 0, Notch: 16},
			{Wiring: "ajdksiruxblhwtmcqgznpyfvoe", Position: 0, Notch: 4},
			{Wiring: "bdfhjlcprtxvznyeiwgakmusqo", Position: 0, Notch: 21},
		},
		Reflector: ReflectorConfig{
			Cycles: []string{"ay", "br", "cu", "dh", "eq", "fs", "gl", "ip", "jx", "kn", "mo", "tz", "vw"},
		},
	}
}

// Load reads and validates the description at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML description. The document replaces the
// defaults entirely; a missing rotors list is an error, and so is any key
// the description does not define.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault returns Default for an empty path and Load(path) otherwise.
// A path that was given but does not exist is an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Save writes c to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Init writes the default description to path unless a file already exists
// there. It reports whether a file was written.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := Default().Save(path); err != nil {
		return false, err
	}

	return true, nil
}

// Validate checks every rotor and the reflector without building a machine.
//
// Checks, in order:
//   - at least one rotor;
//   - each wiring holds 'a'..'z' exactly once;
//   - each position and notch lies in [0,25];
//   - at least one reflector cycle, every cycle well formed and at most two
//     letters long, and no letter shared between cycles.
//
// Cycles of length ≤ 2 make the reflector its own inverse, which is what
// lets the same pass decipher.
//
// Errors wrap ErrInvalidConfig and, where one applies, the underlying
// permutation sentinel.
func (c *Config) Validate() error {
	if len(c.Rotors) == 0 {
		return fmt.Errorf("no rotors: %w", ErrInvalidConfig)
	}
	for i, rc := range c.Rotors {
		if _, err := permutation.FromWiring(rc.Wiring); err != nil {
			return fmt.Errorf("rotor %d: %w: %w", i, ErrInvalidConfig, err)
		}
		if rc.Position < 0 || rc.Position >= alphabet.Size {
			return fmt.Errorf("rotor %d: position %d out of [0,%d): %w", i, rc.Position, alphabet.Size, ErrInvalidConfig)
		}
		if rc.Notch < 0 || rc.Notch >= alphabet.Size {
			return fmt.Errorf("rotor %d: notch %d out of [0,%d): %w", i, rc.Notch, alphabet.Size, ErrInvalidConfig)
		}
	}

	if len(c.Reflector.Cycles) == 0 {
		return fmt.Errorf("reflector: no cycles: %w", ErrInvalidConfig)
	}
	used := make(map[rune]int, alphabet.Size)
	for i, cycle := range c.Reflector.Cycles {
		if _, err := permutation.CyclicPermutationMatrix(cycle); err != nil {
			return fmt.Errorf("reflector cycle %d: %w: %w", i, ErrInvalidConfig, err)
		}
		if n := len([]rune(cycle)); n > 2 {
			return fmt.Errorf("reflector cycle %d: %q has %d letters, want at most 2: %w", i, cycle, n, ErrInvalidConfig)
		}
		for _, r := range cycle {
			if j, dup := used[r]; dup {
				return fmt.Errorf("reflector cycle %d: letter %q already in cycle %d: %w", i, r, j, ErrInvalidConfig)
			}
			used[r] = i
		}
	}

	return nil
}

// Build validates c and assembles a fresh machine. Every call returns new
// rotors at their configured start positions.
func (c *Config) Build(opts ...enigma.Option) (*enigma.Machine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rotors := make([]*enigma.Rotor, len(c.Rotors))
	for i, rc := range c.Rotors {
		r, err := enigma.NewRotorFromWiring(rc.Wiring, rc.Position, rc.Notch)
		if err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i, err)
		}
		rotors[i] = r
	}
	reflector, err := enigma.NewReflector(c.Reflector.Cycles)
	if err != nil {
		return nil, fmt.Errorf("reflector: %w", err)
	}

	return enigma.NewMachine(rotors, reflector, opts...)
}
