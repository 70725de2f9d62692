// SPDX-License-Identifier: MIT

package atoms

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyAtoms is returned when a structure exceeds the configured atom limit.
	ErrTooManyAtoms = errors.New("atoms: too many atoms")

	// ErrLengthMismatch indicates that numbers and positions differ in length.
	ErrLengthMismatch = errors.New("atoms: numbers and positions length mismatch")

	// ErrMalformedCell indicates that the cell rows of periodic axes are not
	// linearly independent.
	ErrMalformedCell = errors.New("atoms: malformed cell")

	// ErrUnknownElement indicates an atomic number or symbol outside the element table.
	ErrUnknownElement = errors.New("atoms: unknown element")

	// ErrIndexOutOfRange indicates an atom index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("atoms: index out of range")

	// ErrBadRepeat indicates a non-positive repeat count.
	ErrBadRepeat = errors.New("atoms: repeat counts must be positive")
)

const (
	opNew       = "New"
	opNumber    = "Number"
	opCheckSize = "CheckSize"
	opSubset    = "Subset"
	opRepeat    = "Repeat"
	opScaled    = "ScaledPositions"
)

func atomsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
