// SPDX-License-Identifier: MIT
// Package: systax/builder
//
// api.go: public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(cons, opts...). Resolves cfg, runs cons, then
//     applies repeat, vacuum, periodicity and rattle in that order.
//   - Constructors live in impl_*.go; each returns the smallest unit of its
//     structure with the non-periodic cell rows left at zero.
//   - Determinism: same inputs/options/seed ⇒ identical structures.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/geometry"
)

// Constructor produces the unit structure of a fixture using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(cfg builderConfig) (*atoms.Structure, error)

// Build runs cons and post-processes its unit with the given options.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - ErrBadSize when a repeat count above 1 targets a non-periodic axis.
//   - ErrNeedRandSource when WithRattle is set without an RNG.
//   - Constructor errors, wrapped.
func Build(cons Constructor, opts ...BuilderOption) (*atoms.Structure, error) {
	if cons == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuild, ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	s, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	for k, n := range cfg.repeat {
		if n > 1 && !s.PBC[k] {
			return nil, builderErrorf(MethodBuild, "repeat %d along non-periodic axis %d: %w", n, k, ErrBadSize)
		}
	}
	if s, err = s.Repeat(cfg.repeat); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	addVacuum(s, cfg.vacuum)
	if cfg.fullPBC {
		s.PBC = [3]bool{true, true, true}
	}
	if cfg.sigma > 0 {
		if cfg.rng == nil {
			return nil, builderErrorf(MethodBuild, "rattle sigma=%g: %w", cfg.sigma, ErrNeedRandSource)
		}
		s = geometry.RandomDisplacement(s, cfg.sigma, cfg.rng)
	}
	if cfg.shake > 0 {
		if cfg.rng == nil {
			return nil, builderErrorf(MethodBuild, "shake d=%g: %w", cfg.shake, ErrNeedRandSource)
		}
		s = geometry.Shake(s, cfg.shake, cfg.rng)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodBuild, err, ErrConstructFailed)
	}

	return s, nil
}

// addVacuum sets every non-periodic cell row to the atomic extent along its
// completed direction plus vacuum, and centres the atoms along it.
func addVacuum(s *atoms.Structure, vacuum float64) {
	full := s.CompleteCell()
	for k := 0; k < 3; k++ {
		if s.PBC[k] {
			continue
		}
		n := full[k].Unit()
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range s.Positions {
			x := p.Dot(n)
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
		if s.Len() == 0 {
			lo, hi = 0, 0
		}
		s.Cell[k] = n.Scale(hi - lo + vacuum)
		shift := n.Scale(vacuum/2 - lo)
		for i := range s.Positions {
			s.Positions[i] = s.Positions[i].Add(shift)
		}
	}
}

// checkSpecies rejects atomic numbers without a chemical symbol.
func checkSpecies(method string, zs ...int) error {
	for _, z := range zs {
		if z < 1 || atoms.Symbol(z) == "X" {
			return builderErrorf(method, "atomic number %d: %w", z, ErrUnknownSpecies)
		}
	}

	return nil
}

// checkPositive rejects non-positive lengths.
func checkPositive(method string, names []string, vs ...float64) error {
	for i, v := range vs {
		if !(v > 0) {
			return builderErrorf(method, "%s=%g: %w", names[i], v, ErrBadSize)
		}
	}

	return nil
}
