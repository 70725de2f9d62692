// SPDX-License-Identifier: MIT
// Package: systax/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the constructor name using %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive lattice constant, layer count, repeat
// count or spacing.
var ErrBadSize = errors.New("builder: invalid size")

// ErrUnknownSpecies indicates an atomic number outside the element table.
var ErrUnknownSpecies = errors.New("builder: unknown species")

// ErrNeedRandSource indicates that rattling was requested without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an invalid result.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the given method context.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
