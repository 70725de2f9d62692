// SPDX-License-Identifier: MIT
// Package: systax/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes Build by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRepeat tiles the unit n[0]×n[1]×n[2] times. Counts above 1 are only
// allowed along periodic axes (checked by Build).
// Panics on a non-positive count.
func WithRepeat(a, b, c int) BuilderOption {
	if a < 1 || b < 1 || c < 1 {
		panic("builder: WithRepeat(count<1)")
	}
	return func(cfg *builderConfig) {
		cfg.repeat = [3]int{a, b, c}
	}
}

// WithVacuum sets the vacuum added along non-periodic axes (Å).
// Panics if v < 0.
func WithVacuum(v float64) BuilderOption {
	if v < 0 {
		panic("builder: WithVacuum(v<0)")
	}
	return func(cfg *builderConfig) {
		cfg.vacuum = v
	}
}

// WithFullPBC marks every axis periodic after the vacuum has been added,
// the usual setup for slab calculations.
func WithFullPBC() BuilderOption {
	return func(cfg *builderConfig) {
		cfg.fullPBC = true
	}
}

// WithRattle displaces every coordinate by a normal variate of standard
// deviation sigma (Å). Requires WithSeed or WithRand.
// Panics if sigma < 0.
func WithRattle(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithRattle(sigma<0)")
	}
	return func(cfg *builderConfig) {
		cfg.sigma = sigma
	}
}

// WithShake moves every atom exactly d Å along a random direction.
// Requires WithSeed or WithRand. Panics if d < 0.
func WithShake(d float64) BuilderOption {
	if d < 0 {
		panic("builder: WithShake(d<0)")
	}
	return func(cfg *builderConfig) {
		cfg.shake = d
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
