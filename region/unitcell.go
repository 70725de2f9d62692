// SPDX-License-Identifier: MIT

package region

import (
	"math"

	"github.com/katalvlaran/systax/matrix"
)

// UnitCellVacuum is the padding added along directions the basis does not span.
const UnitCellVacuum = 10.0

// UnitCell is the reconstructed conventional input for a symmetry analysis:
// the basis completed to a 3×3 cell and the motif sites in cartesian coordinates
// relative to the cell origin.
type UnitCell struct {
	Cell      matrix.Mat3
	PBC       [3]bool
	Numbers   []int
	Positions []matrix.Vec3
}

// UnitCell completes the basis with orthogonal vacuum directions and places
// the motif sites inside it. Missing directions get the motif extent along
// them plus UnitCellVacuum, and the motif is centred along them.
func (r *Region) UnitCell() UnitCell {
	var uc UnitCell
	basis := append([]matrix.Vec3(nil), r.Basis...)
	normals := complete(basis)

	for k := 0; k < 3; k++ {
		if k < len(basis) {
			uc.Cell[k] = basis[k]
			uc.PBC[k] = true
			continue
		}
		n := normals[k-len(basis)]
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, s := range r.Sites {
			x := s.Offset.Dot(n)
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
		if len(r.Sites) == 0 {
			lo, hi = 0, 0
		}
		uc.Cell[k] = n.Scale(hi - lo + UnitCellVacuum)
	}

	// shift so the motif is centred along the vacuum directions
	var shift matrix.Vec3
	for k := len(basis); k < 3; k++ {
		n := uc.Cell[k].Unit()
		lo := math.Inf(1)
		for _, s := range r.Sites {
			lo = math.Min(lo, s.Offset.Dot(n))
		}
		if len(r.Sites) == 0 {
			lo = 0
		}
		shift = shift.Add(n.Scale(UnitCellVacuum/2 - lo))
	}
	for _, s := range r.Sites {
		uc.Numbers = append(uc.Numbers, s.Species)
		uc.Positions = append(uc.Positions, s.Offset.Add(shift))
	}

	return uc
}

// complete returns unit vectors orthogonal to basis that fill it up to three
// dimensions.
func complete(basis []matrix.Vec3) []matrix.Vec3 {
	switch len(basis) {
	case 2:
		return []matrix.Vec3{basis[0].Cross(basis[1]).Unit()}
	case 1:
		u := basis[0].Unit()
		axes := []matrix.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		best := axes[0]
		bestDot := math.Inf(1)
		for _, a := range axes {
			if d := math.Abs(u.Dot(a)); d < bestDot {
				best, bestDot = a, d
			}
		}
		n1 := u.Cross(best).Unit()

		return []matrix.Vec3{n1, u.Cross(n1).Unit()}
	case 0:
		return []matrix.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	default:
		return nil
	}
}

// CompletedBasis returns the basis followed by unit normals up to three rows.
func (r *Region) CompletedBasis() matrix.Mat3 {
	var m matrix.Mat3
	rows := append(append([]matrix.Vec3(nil), r.Basis...), complete(r.Basis)...)
	copy(m[:], rows)

	return m
}
