// Package config describes a rotor machine as a YAML document and turns it
// into an *enigma.Machine.
//
// Document shape:
//
//	rotors:            # entry side first
//	  - wiring: ekmflgdqvzntowyhxuspaibrcj
//	    position: 0
//	    notch: 16
//	reflector:
//	  cycles: [ay, br, cu, dh, eq, fs, gl, ip, jx, kn, mo, tz, vw]
//
// Default returns a three-rotor machine with a fully paired reflector, Load
// and Save read and write the document, and Build validates it and assembles
// the machine. Validation failures wrap ErrInvalidConfig.
package config
