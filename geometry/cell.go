// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

// orthoTol is the largest |cos| between the minimized axis and the other cell vectors.
const orthoTol = 1e-6

// Thickness returns max − min of the cartesian coordinate axis over all atoms
// (0 for an empty structure).
func Thickness(s *atoms.Structure, axis int) (float64, error) {
	if axis < 0 || axis > 2 {
		return 0, geometryErrorf(opThickness, fmt.Errorf("%w: %d", ErrAxisOutOfRange, axis))
	}
	if s.Len() == 0 {
		return 0, nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range s.Positions {
		lo = math.Min(lo, p[axis])
		hi = math.Max(hi, p[axis])
	}

	return hi - lo, nil
}

// MinimizedCell returns a copy of s whose cell vector along axis is shrunk to
// the atoms' extent along that direction (at least minSize); atoms are
// centred in the new extent and the axis becomes non-periodic.
//
// Implementation:
//   - Stage 1: n̂ = unit normal of the two other cell vectors; the current
//     axis vector, if non-zero, must be parallel to n̂.
//   - Stage 2: project positions on n̂ to get the extent [lo, hi].
//   - Stage 3: L = max(hi − lo, minSize); shift every atom by
//     (L − (hi − lo))/2 − lo along n̂.
//
// Errors:
//   - ErrAxisOutOfRange, ErrEmptyStructure, ErrNotOrthogonal.
func MinimizedCell(s *atoms.Structure, axis int, minSize float64) (*atoms.Structure, error) {
	if axis < 0 || axis > 2 {
		return nil, geometryErrorf(opMinimizedCell, ErrAxisOutOfRange)
	}
	if s.Len() == 0 {
		return nil, geometryErrorf(opMinimizedCell, ErrEmptyStructure)
	}
	full := s.CompleteCell()
	n := full[(axis+1)%3].Cross(full[(axis+2)%3]).Unit()
	if v := s.Cell[axis]; v.Norm() > 0 {
		if c := math.Abs(v.Unit().Dot(n)); math.Abs(c-1) > orthoTol {
			return nil, geometryErrorf(opMinimizedCell, ErrNotOrthogonal)
		}
		// keep the original orientation of the axis
		if v.Dot(n) < 0 {
			n = n.Neg()
		}
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range s.Positions {
		x := p.Dot(n)
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	thick := hi - lo
	size := math.Max(thick, minSize)
	shift := (size-thick)/2 - lo

	out := s.Clone()
	for i := range out.Positions {
		out.Positions[i] = out.Positions[i].Add(n.Scale(shift))
	}
	out.Cell[axis] = n.Scale(size)
	out.PBC[axis] = false

	return out, nil
}

// CenterOfMass returns the mass-weighted centre of s. Along periodic axes the
// fractional coordinates are first unwrapped around their circular mean so
// that a cluster split by the boundary is averaged as one piece; the result
// is wrapped back into the cell.
func CenterOfMass(s *atoms.Structure) (matrix.Vec3, error) {
	if s.Len() == 0 {
		return matrix.Vec3{}, geometryErrorf(opCenterOfMass, ErrEmptyStructure)
	}
	l, err := LatticeOf(s)
	if err != nil {
		return matrix.Vec3{}, geometryErrorf(opCenterOfMass, err)
	}
	masses := s.Masses()
	frac := make([]matrix.Vec3, s.Len())
	for i, p := range s.Positions {
		frac[i] = l.Fractional(p)
	}

	var ref matrix.Vec3
	for k := 0; k < 3; k++ {
		if !s.PBC[k] {
			continue
		}
		var sx, sy float64
		for i, f := range frac {
			theta := 2 * math.Pi * f[k]
			sx += masses[i] * math.Cos(theta)
			sy += masses[i] * math.Sin(theta)
		}
		ref[k] = math.Atan2(sy, sx) / (2 * math.Pi)
	}

	var (
		sum   matrix.Vec3
		total float64
	)
	for i, f := range frac {
		for k := 0; k < 3; k++ {
			if s.PBC[k] {
				// branch nearest to the reference
				f[k] -= math.Floor(f[k] - ref[k] + 0.5)
			}
		}
		sum = sum.Add(f.Scale(masses[i]))
		total += masses[i]
	}
	com := sum.Scale(1 / total)

	return l.Wrap(l.Cartesian(com)), nil
}
