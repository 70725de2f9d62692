// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrAxisOutOfRange is returned for an axis outside {0,1,2}.
	ErrAxisOutOfRange = errors.New("geometry: axis out of range")

	// ErrNotOrthogonal is returned by MinimizedCell when the chosen cell axis is
	// not orthogonal to the other two cell vectors.
	ErrNotOrthogonal = errors.New("geometry: cell axis is not orthogonal to the others")

	// ErrEmptyStructure is returned when an operation needs at least one atom.
	ErrEmptyStructure = errors.New("geometry: structure has no atoms")

	// ErrLengthMismatch is returned when parallel input slices differ in length.
	ErrLengthMismatch = errors.New("geometry: input length mismatch")
)

const (
	opLattice       = "NewLattice"
	opDisplacement  = "Displacement"
	opToScaled      = "ToScaled"
	opThickness     = "Thickness"
	opMinimizedCell = "MinimizedCell"
	opCenterOfMass  = "CenterOfMass"
	opMatches       = "Matches"
	opDimension     = "EstimateDimensionality"
	opDecompose     = "NewDecomposition"
	opBonds         = "BondGraph"
)

func geometryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
