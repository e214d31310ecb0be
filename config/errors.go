// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig indicates a document that parses as YAML but does not
// describe a usable machine.
var ErrInvalidConfig = errors.New("config: invalid machine description")
