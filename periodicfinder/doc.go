// SPDX-License-Identifier: MIT
// Package periodicfinder discovers the smallest repeating unit around a seed
// atom and grows it over the whole structure.
//
// What
//
//   - Span discovery: seed-to-image vectors of atoms of the seed's species
//     within MaxCellSize, de-duplicated within tolerance and up to sign.
//   - Span metric: adaptive chaining from the seed; each step predicts
//     "previous match + v" and accepts an atom of the seed species within
//     PosTol + PosTolScaling·|v|. The metric counts confirmed steps in both
//     directions, up to MaxSpanRepeats each, and the span vector is refitted
//     as the mean step between the two chain ends.
//   - FindBestBasis: picks dim spans by metric sum (desc), measure (asc,
//     relative ties within CellSizeTol), orthogonality (asc) and finally the
//     lexicographically first combination.
//   - Motif voting: atoms bonded to the seed are reduced modulo the basis and
//     clustered into sites within PosTol + PosTolScaling·|b|max; sites closer
//     than half a bond are merged and sites rare compared with the seed site
//     are dropped.
//   - Region growing: breadth-first over integer cell indices; every cell is
//     predicted from the anchor of its parent, refitted to the mean of the
//     matched atoms, so slightly curved or strained lattices are followed.
//
// Failure
//
//	"No periodic region" is an expected outcome, reported with the sentinel
//	ErrNoPeriodicRegion (test with errors.Is). ErrSeedOutOfRange is a
//	contract violation.
//
// Determinism
//
//	Spans are ordered by distance, index and factor; combinations are
//	enumerated lexicographically; neighbours are expanded +a, −a, +b, −b, +c, −c.
//	Identical inputs always yield identical regions.
//
// Complexity (N atoms, S spans, C cells, M motif sites)
//
//   - Span metric:    O(S·R·N) mic evaluations (R = MaxSpanRepeats).
//   - Basis search:   O(S^dim).
//   - Region growing: O(C·(M + C)·N) in the worst case.
package periodicfinder
