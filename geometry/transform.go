// SPDX-License-Identifier: MIT

package geometry

import (
	"math/rand"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

// ToCartesian maps fractional coordinates to cartesian ones. When wrap is
// true, fractional coordinates on periodic axes are first wrapped into [0,1).
func ToCartesian(cell matrix.Mat3, pbc [3]bool, scaled []matrix.Vec3, wrap bool) []matrix.Vec3 {
	out := make([]matrix.Vec3, len(scaled))
	for i, f := range scaled {
		if wrap {
			for k := 0; k < 3; k++ {
				if pbc[k] {
					f[k] = wrapUnit(f[k])
				}
			}
		}
		out[i] = cell.VecMul(f)
	}

	return out
}

// ToScaled maps cartesian positions to fractional coordinates of the
// completed cell, optionally wrapping periodic axes into [0,1).
func ToScaled(cell matrix.Mat3, pbc [3]bool, positions []matrix.Vec3, wrap bool) ([]matrix.Vec3, error) {
	l, err := NewLattice(cell, pbc)
	if err != nil {
		return nil, geometryErrorf(opToScaled, err)
	}
	out := make([]matrix.Vec3, len(positions))
	for i, p := range positions {
		f := l.Fractional(p)
		if wrap {
			for k := 0; k < 3; k++ {
				if pbc[k] {
					f[k] = wrapUnit(f[k])
				}
			}
		}
		out[i] = f
	}

	return out, nil
}

// Wrap returns a copy of s with all atoms moved into the cell along periodic axes.
func Wrap(s *atoms.Structure) (*atoms.Structure, error) {
	l, err := LatticeOf(s)
	if err != nil {
		return nil, err
	}
	c := s.Clone()
	for i, p := range c.Positions {
		c.Positions[i] = l.Wrap(p)
	}

	return c, nil
}

// RandomDisplacement returns a copy of s with every coordinate displaced by
// a normal variate of standard deviation sigma drawn from rng.
func RandomDisplacement(s *atoms.Structure, sigma float64, rng *rand.Rand) *atoms.Structure {
	c := s.Clone()
	for i := range c.Positions {
		for k := 0; k < 3; k++ {
			c.Positions[i][k] += sigma * rng.NormFloat64()
		}
	}

	return c
}

// Shake returns a copy of s with every atom moved exactly distance along a
// uniformly random direction drawn from rng.
func Shake(s *atoms.Structure, distance float64, rng *rand.Rand) *atoms.Structure {
	c := s.Clone()
	for i := range c.Positions {
		var dir matrix.Vec3
		for dir.Norm() < 1e-9 {
			dir = matrix.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		}
		c.Positions[i] = c.Positions[i].Add(dir.Unit().Scale(distance))
	}

	return c
}
