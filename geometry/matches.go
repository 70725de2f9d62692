// SPDX-License-Identifier: MIT

package geometry

import (
	"math"
	"sort"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

// MatchResult describes, per searched position, the nearest atom within tolerance.
type MatchResult struct {
	// Indices[i] is the matched atom index or -1.
	Indices []int
	// Substitutions[i] is true when the matched atom's species differs from
	// the expected one.
	Substitutions []bool
	// Factors[i] is the lattice factor of the matched periodic copy:
	// matched = Positions[Indices[i]] + Factors[i]·cell.
	Factors [][3]int
	// Distances[i] is the distance to the matched copy (+Inf when unmatched).
	Distances []float64
}

// Matches finds, for every position, the nearest atom of s within the
// corresponding tolerance. numbers may be nil to skip species comparison.
//
// Errors:
//   - ErrLengthMismatch when numbers or tolerances do not match positions.
func Matches(s *atoms.Structure, positions []matrix.Vec3, numbers []int, tolerances []float64, mic bool) (*MatchResult, error) {
	if len(tolerances) != len(positions) || (numbers != nil && len(numbers) != len(positions)) {
		return nil, geometryErrorf(opMatches, ErrLengthMismatch)
	}
	var l *Lattice
	if mic {
		var err error
		if l, err = LatticeOf(s); err != nil {
			return nil, geometryErrorf(opMatches, err)
		}
	}
	res := &MatchResult{
		Indices:       make([]int, len(positions)),
		Substitutions: make([]bool, len(positions)),
		Factors:       make([][3]int, len(positions)),
		Distances:     make([]float64, len(positions)),
	}
	for i, q := range positions {
		res.Indices[i] = -1
		res.Distances[i] = math.Inf(1)
		for j, p := range s.Positions {
			d := q.Sub(p)
			var f [3]int
			if l != nil {
				// q − (p + f·cell) is minimal
				var neg [3]int
				d, neg = l.MinimumImage(d)
				f = [3]int{-neg[0], -neg[1], -neg[2]}
			}
			if dist := d.Norm(); dist <= tolerances[i] && dist < res.Distances[i] {
				res.Indices[i], res.Factors[i], res.Distances[i] = j, f, dist
			}
		}
		if idx := res.Indices[i]; idx >= 0 && numbers != nil {
			res.Substitutions[i] = s.Numbers[idx] != numbers[i]
		}
	}

	return res, nil
}

// Image is one periodic copy of an atom relative to a centre.
type Image struct {
	Index  int
	Factor [3]int
	// Vector is Positions[Index] + Factor·cell − centre.
	Vector matrix.Vec3
	Dist   float64
}

// NeighborImages returns every atom image within radius of center, sorted by
// distance, then index, then factor. Periodic axes are searched far enough
// to cover the radius, so the zero-factor self image and lattice translations
// longer than half the cell are both found.
func NeighborImages(s *atoms.Structure, center matrix.Vec3, radius float64) ([]Image, error) {
	l, err := LatticeOf(s)
	if err != nil {
		return nil, err
	}
	h := l.Heights()
	var reach [3]int
	for k := 0; k < 3; k++ {
		if s.PBC[k] {
			reach[k] = int(math.Ceil(radius/h[k])) + 1
		}
	}
	var out []Image
	for j, p := range s.Positions {
		_, nb := l.MinimumImage(p.Sub(center))
		for a := -reach[0]; a <= reach[0]; a++ {
			for b := -reach[1]; b <= reach[1]; b++ {
				for c := -reach[2]; c <= reach[2]; c++ {
					f := [3]int{nb[0] + a, nb[1] + b, nb[2] + c}
					v := p.Add(l.Translate(f)).Sub(center)
					if d := v.Norm(); d <= radius {
						out = append(out, Image{Index: j, Factor: f, Vector: v, Dist: d})
					}
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if math.Abs(a.Dist-b.Dist) > 1e-9 {
			return a.Dist < b.Dist
		}
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		for k := 0; k < 3; k++ {
			if a.Factor[k] != b.Factor[k] {
				return a.Factor[k] < b.Factor[k]
			}
		}

		return false
	})

	return out, nil
}
