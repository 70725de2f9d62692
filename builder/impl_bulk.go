// SPDX-License-Identifier: MIT
// Package: systax/builder
//
// impl_bulk.go: cubic constructors (BCC100 slab, Diamond, RockSalt) and Chain.
//
// Contract:
//   • Cubic cells are axis-aligned; atoms are emitted in the order of the
//     fractional basis tables below.
//   • BCC100 stacks layers along z with spacing a/2, alternating between the
//     corner and the centre of the a×a square; PBC (true, true, false).

package builder

import (
	"fmt"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

var fccBasis = []matrix.Vec3{
	{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
}

// BCC100 returns a Constructor for a bcc (100) slab of species z with cubic
// constant a (Å) and the given number of atomic layers (≥ 1).
func BCC100(z int, a float64, layers int) Constructor {
	return func(cfg builderConfig) (*atoms.Structure, error) {
		if err := checkSpecies(MethodBCC100, z); err != nil {
			return nil, err
		}
		if err := checkPositive(MethodBCC100, []string{"a"}, a); err != nil {
			return nil, err
		}
		if layers < 1 {
			return nil, fmt.Errorf("%s: layers=%d: %w", MethodBCC100, layers, ErrBadSize)
		}
		numbers := make([]int, layers)
		positions := make([]matrix.Vec3, layers)
		for l := 0; l < layers; l++ {
			numbers[l] = z
			positions[l] = matrix.Vec3{0, 0, float64(l) * a / 2}
			if l%2 == 1 {
				positions[l][0], positions[l][1] = a/2, a/2
			}
		}

		return atoms.New(numbers, positions, matrix.Mat3{{a, 0, 0}, {0, a, 0}, {}}, [3]bool{true, true, false})
	}
}

// Diamond returns a Constructor for the eight-atom conventional diamond cell
// of species z with cubic constant a (Å).
func Diamond(z int, a float64) Constructor {
	return func(cfg builderConfig) (*atoms.Structure, error) {
		if err := checkSpecies(MethodDiamond, z); err != nil {
			return nil, err
		}
		if err := checkPositive(MethodDiamond, []string{"a"}, a); err != nil {
			return nil, err
		}
		var numbers []int
		var positions []matrix.Vec3
		for _, shift := range []matrix.Vec3{{0, 0, 0}, {0.25, 0.25, 0.25}} {
			for _, f := range fccBasis {
				numbers = append(numbers, z)
				positions = append(positions, f.Add(shift).Scale(a))
			}
		}

		return atoms.New(numbers, positions, matrix.Diag(a, a, a), [3]bool{true, true, true})
	}
}

// RockSalt returns a Constructor for the eight-atom conventional rock-salt
// cell with cation z1 and anion z2 and cubic constant a (Å).
func RockSalt(z1, z2 int, a float64) Constructor {
	return func(cfg builderConfig) (*atoms.Structure, error) {
		if err := checkSpecies(MethodRockSalt, z1, z2); err != nil {
			return nil, err
		}
		if err := checkPositive(MethodRockSalt, []string{"a"}, a); err != nil {
			return nil, err
		}
		var numbers []int
		var positions []matrix.Vec3
		for _, f := range fccBasis {
			numbers = append(numbers, z1, z2)
			positions = append(positions, f.Scale(a), f.Add(matrix.Vec3{0.5, 0, 0}).Scale(a))
		}

		return atoms.New(numbers, positions, matrix.Diag(a, a, a), [3]bool{true, true, true})
	}
}

// Chain returns a Constructor for a linear chain of species z along x with
// spacing d (Å); PBC (true, false, false).
func Chain(z int, d float64) Constructor {
	return func(cfg builderConfig) (*atoms.Structure, error) {
		if err := checkSpecies(MethodChain, z); err != nil {
			return nil, err
		}
		if err := checkPositive(MethodChain, []string{"d"}, d); err != nil {
			return nil, err
		}

		return atoms.New([]int{z}, []matrix.Vec3{{}}, matrix.Mat3{{d, 0, 0}}, [3]bool{true, false, false})
	}
}
