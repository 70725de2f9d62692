// SPDX-License-Identifier: MIT

package periodicfinder

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPeriodicRegion reports that no valid periodic region exists around
	// the seed. It is an expected outcome, not a failure of the engine.
	ErrNoPeriodicRegion = errors.New("periodicfinder: no periodic region found")

	// ErrDegenerateBasis reports that no combination of spans is linearly
	// independent within tolerance.
	ErrDegenerateBasis = errors.New("periodicfinder: degenerate basis")

	// ErrSeedOutOfRange is returned for a seed index outside the structure.
	ErrSeedOutOfRange = errors.New("periodicfinder: seed index out of range")
)

const (
	opFindRegion = "FindRegion"
	opBestBasis  = "FindBestBasis"
)

func finderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// noRegion wraps a cause into ErrNoPeriodicRegion.
func noRegion(cause error) error {
	if cause == nil {
		return finderErrorf(opFindRegion, ErrNoPeriodicRegion)
	}

	return fmt.Errorf("%s: %w: %w", opFindRegion, ErrNoPeriodicRegion, cause)
}
