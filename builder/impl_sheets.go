// SPDX-License-Identifier: MIT
// Package: systax/builder
//
// impl_sheets.go: two-dimensional constructors: Graphene and MX2.
//
// Contract:
//   • Both return a hexagonal cell a1 = (a, 0, 0), a2 = (−a/2, a√3/2, 0) with
//     PBC (true, true, false) and a zero third row.
//   • Atoms are emitted in a fixed order: A then B sublattice (Graphene),
//     M then lower X then upper X (MX2).

package builder

import (
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

func hexCell(a float64) matrix.Mat3 {
	return matrix.Mat3{
		{a, 0, 0},
		{-a / 2, a * math.Sqrt(3) / 2, 0},
		{},
	}
}

// Graphene returns a Constructor for a carbon honeycomb sheet with lattice
// constant a (Å). The B atom sits a/√3 above the A atom along y.
func Graphene(a float64) Constructor {
	return func(cfg builderConfig) (*atoms.Structure, error) {
		if err := checkPositive(MethodGraphene, []string{"a"}, a); err != nil {
			return nil, err
		}

		return atoms.New(
			[]int{6, 6},
			[]matrix.Vec3{{0, 0, 0}, {0, a / math.Sqrt(3), 0}},
			hexCell(a),
			[3]bool{true, true, false},
		)
	}
}

// MX2 returns a Constructor for a 2H monolayer of metal m and chalcogen x
// with lattice constant a and X–X thickness t (Å).
func MX2(m, x int, a, t float64) Constructor {
	return func(cfg builderConfig) (*atoms.Structure, error) {
		if err := checkSpecies(MethodMX2, m, x); err != nil {
			return nil, err
		}
		if err := checkPositive(MethodMX2, []string{"a", "t"}, a, t); err != nil {
			return nil, err
		}
		y := a / math.Sqrt(3)

		return atoms.New(
			[]int{m, x, x},
			[]matrix.Vec3{{0, 0, 0}, {0, y, -t / 2}, {0, y, t / 2}},
			hexCell(a),
			[3]bool{true, true, false},
		)
	}
}
