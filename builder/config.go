// SPDX-License-Identifier: MIT
// Package: systax/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • repeat  = 1×1×1
//   • vacuum  = DefaultVacuum
//   • fullPBC = false
//   • sigma   = 0 (no rattle)
//   • shake   = 0 (no shake)
//   • rng     = nil

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE to constructors.
type builderConfig struct {
	repeat  [3]int
	vacuum  float64
	fullPBC bool
	sigma   float64
	shake   float64
	rng     *rand.Rand
}

// newBuilderConfig starts from the defaults and applies opts in order
// (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		repeat: [3]int{1, 1, 1},
		vacuum: DefaultVacuum,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
