// SPDX-License-Identifier: MIT
// Package builder provides deterministic "functional-options" constructors
// for reference structures: 2D sheets, slabs, bulk crystals and chains. The
// fixtures drive the tests of every analysis package and the `build` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  repeat counts, vacuum, rattle amplitude and RNG.
//   - Constructors (Constructor implementations):
//     – Graphene:       two-atom honeycomb sheet.
//     – MX2:            2H transition-metal dichalcogenide monolayer.
//     – BCC100:         body-centred cubic (100) slab.
//     – Diamond:        eight-atom conventional diamond cell.
//     – RockSalt:       eight-atom conventional rock-salt cell.
//     – Chain:          one-atom linear chain.
//   - Post-processing (applied by Build in this order):
//     – repeat along periodic axes, vacuum along the others, full periodicity,
//     rattle.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical structures.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime validation errors are sentinels wrapped with the constructor name.
package builder
