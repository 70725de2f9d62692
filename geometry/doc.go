// SPDX-License-Identifier: MIT
// Package geometry implements the periodic-boundary geometry kernel:
// displacement tensors under the minimum-image convention (valid for skewed
// cells), distance matrices, fractional↔cartesian transforms, cell
// minimization, periodic-aware center of mass, position matching,
// neighbour-image enumeration, the dimensionality estimator and the
// Delaunay-based inside/outside decomposition.
//
// Conventions:
//
//   - Displacements are b − a (from the first argument to the second).
//   - A lattice factor n ∈ ℤ³ denotes the translation n·Cell; factors are
//     non-zero only along periodic axes.
//   - Functions never mutate the *atoms.Structure they receive.
//
// Minimum image:
//
//	A displacement d is first reduced by rounding its fractional coordinates
//	on periodic axes, then the 3^k neighbouring translations (k periodic axes)
//	are compared and the shortest wins. For strongly skewed cells rounding
//	alone is not sufficient; the neighbour search makes the result exact for
//	any cell whose reduced vectors are not pathologically oblique.
//
// Determinism:
//
//	Candidate translations are visited in lexicographic order and ties keep
//	the first candidate, so equal inputs always produce equal factors.
package geometry
