// SPDX-License-Identifier: MIT

package periodicfinder

import (
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/matrix"
)

// Span is a candidate lattice vector from the seed to an image of the same species.
type Span struct {
	Vector matrix.Vec3
	// Target is the atom the span points at and Factor its periodic copy.
	Target int
	Factor [3]int
	// Metric counts the confirmed repeats along ±Vector.
	Metric int
}

// probe answers "is there an atom near q" queries under minimum image.
type probe struct {
	s   *atoms.Structure
	lat *geometry.Lattice
}

// nearest returns the atom (of species z, or any species when z < 0) closest
// to q within tol and the position of its matched copy.
func (p probe) nearest(q matrix.Vec3, z int, tol float64) (int, matrix.Vec3) {
	best, bestD := -1, math.Inf(1)
	var at matrix.Vec3
	for j, pos := range p.s.Positions {
		if z >= 0 && p.s.Numbers[j] != z {
			continue
		}
		d, _ := p.lat.MinimumImage(pos.Sub(q))
		if n := d.Norm(); n <= tol && n < bestD {
			best, bestD, at = j, n, q.Add(d)
		}
	}

	return best, at
}

// discoverSpans lists the distinct seed-to-image vectors of the seed species
// within cfg.MaxCellSize, shortest first. Vectors equal within tolerance, or
// opposite within tolerance, are kept once.
func discoverSpans(p probe, seed int, cfg config.Config) ([]Span, error) {
	center := p.s.Positions[seed]
	z := p.s.Numbers[seed]
	imgs, err := geometry.NeighborImages(p.s, center, cfg.MaxCellSize)
	if err != nil {
		return nil, err
	}

	var spans []Span
	for _, im := range imgs {
		if p.s.Numbers[im.Index] != z || im.Dist <= cfg.PosTol {
			continue
		}
		tol := cfg.Tolerance(im.Dist)
		dup := false
		for _, sp := range spans {
			if im.Vector.Dist(sp.Vector) <= tol || im.Vector.Dist(sp.Vector.Neg()) <= tol {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		spans = append(spans, Span{Vector: im.Vector, Target: im.Index, Factor: im.Factor})
	}
	for i := range spans {
		spans[i].Metric, spans[i].Vector = spanMetric(p, seed, spans[i].Vector, cfg)
	}

	return spans, nil
}

// spanMetric chains from the seed along +v and −v. Every step predicts the
// previous match plus v and looks for an atom of the seed species there, so
// the chain follows gradual strain. Each direction stops at the first miss.
// It returns the number of steps and v refitted as the mean step between the
// two chain ends, which averages out the displacement of single atoms.
func spanMetric(p probe, seed int, v matrix.Vec3, cfg config.Config) (int, matrix.Vec3) {
	z := p.s.Numbers[seed]
	tol := cfg.Tolerance(v.Norm())
	count := 0
	var ends [2]matrix.Vec3
	for e, step := range []matrix.Vec3{v, v.Neg()} {
		prev := p.s.Positions[seed]
		for k := 0; k < cfg.MaxSpanRepeats; k++ {
			j, at := p.nearest(prev.Add(step), z, tol)
			if j < 0 {
				break
			}
			prev = at
			count++
		}
		ends[e] = prev
	}
	if count == 0 {
		return 0, v
	}

	return count, ends[0].Sub(ends[1]).Scale(1 / float64(count))
}

// splitSpans keeps the spans with a metric of at least cfg.MinSpanMetric and
// sorts them into those lying in the subspace spanned by dirs and those
// leaving it by more than cfg.AngleTol.
func splitSpans(spans []Span, dirs []matrix.Vec3, cfg config.Config) (in, out []Span) {
	for _, sp := range spans {
		if sp.Metric < cfg.MinSpanMetric {
			continue
		}
		v := sp.Vector
		var proj matrix.Vec3
		for _, d := range dirs {
			proj = proj.Add(d.Scale(v.Dot(d)))
		}
		res := v.Sub(proj).Norm()
		switch {
		case res <= cfg.Tolerance(v.Norm()):
			in = append(in, sp)
		case math.Asin(math.Min(1, res/v.Norm()))*180/math.Pi >= cfg.AngleTol:
			out = append(out, sp)
		}
	}

	return in, out
}
