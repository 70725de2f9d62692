// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/delaunay"
	"github.com/katalvlaran/systax/matrix"
)

// Decomposition is a Delaunay tetrahedralization of a set of atoms used as a
// solid for inside/outside tests. Points closer than Threshold to any kept
// tetrahedron are inside.
type Decomposition struct {
	tri       *delaunay.Triangulation
	keep      []int
	lo, hi    []matrix.Vec3
	threshold float64
	lattice   *Lattice
	pad       [3]bool
}

// DecompositionOptions tunes NewDecomposition.
type DecompositionOptions struct {
	// Threshold inflates every tetrahedron (Å).
	Threshold float64
	// MaxEdge drops tetrahedra with a longer edge (Å); ≤ 0 keeps all.
	MaxEdge float64
	// PadAxes selects the periodic axes along which one shell of images is added.
	PadAxes [3]bool
}

// NewDecomposition triangulates the atoms at indices (nil = all).
//
// Implementation:
//   - Stage 1: collect positions plus their images along PadAxes that lie
//     within MaxEdge of the bounding box of the originals.
//   - Stage 2: PCA (Jacobi eigen of the covariance); every principal direction
//     whose spread is below Threshold/4 is thickened by replacing each point
//     with copies at ±Threshold/4 along it, so flat sheets, chains and single
//     atoms still triangulate into a thin solid.
//   - Stage 3: Bowyer–Watson; tetrahedra with an edge longer than MaxEdge are dropped.
func NewDecomposition(s *atoms.Structure, indices []int, opt DecompositionOptions) (*Decomposition, error) {
	if indices == nil {
		indices = make([]int, s.Len())
		for i := range indices {
			indices[i] = i
		}
	}
	if len(indices) == 0 {
		return nil, geometryErrorf(opDecompose, ErrEmptyStructure)
	}
	l, err := LatticeOf(s)
	if err != nil {
		return nil, geometryErrorf(opDecompose, err)
	}
	for k := 0; k < 3; k++ {
		opt.PadAxes[k] = opt.PadAxes[k] && s.PBC[k]
	}

	pts := make([]matrix.Vec3, 0, len(indices))
	for _, i := range indices {
		pts = append(pts, s.Positions[i])
	}
	lo, hi := box(pts)
	margin := opt.MaxEdge
	if margin <= 0 {
		margin = math.Inf(1)
	}
	for _, t := range Translations(opt.PadAxes, 1) {
		off := l.Translate(t)
		for _, i := range indices {
			p := s.Positions[i].Add(off)
			if boxDistance(p, lo, hi) <= margin {
				pts = append(pts, p)
			}
		}
	}

	pts = thicken(pts, opt.Threshold/4)
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, geometryErrorf(opDecompose, err)
	}

	d := &Decomposition{tri: tri, threshold: opt.Threshold, lattice: l, pad: opt.PadAxes}
	for i := range tri.Tetrahedra {
		if opt.MaxEdge > 0 && tri.MaxEdge(i) > opt.MaxEdge {
			continue
		}
		d.keep = append(d.keep, i)
		tlo, thi := box(tetPoints(tri, i))
		d.lo = append(d.lo, tlo)
		d.hi = append(d.hi, thi)
	}

	return d, nil
}

// Len returns the number of kept tetrahedra.
func (d *Decomposition) Len() int { return len(d.keep) }

// Volume returns the summed volume of the kept tetrahedra.
func (d *Decomposition) Volume() float64 {
	var v float64
	for _, i := range d.keep {
		v += d.tri.Volume(i)
	}

	return v
}

// Contains reports whether p lies within Threshold of a kept tetrahedron.
// Along padded axes p is also tested after wrapping it into the cell.
func (d *Decomposition) Contains(p matrix.Vec3) bool {
	if d.contains(p) {
		return true
	}
	if d.pad[0] || d.pad[1] || d.pad[2] {
		f := d.lattice.Fractional(p)
		for k := 0; k < 3; k++ {
			if d.pad[k] {
				f[k] = wrapUnit(f[k])
			}
		}
		if w := d.lattice.Cartesian(f); !w.ApproxEqual(p, 1e-12) {
			return d.contains(w)
		}
	}

	return false
}

func (d *Decomposition) contains(p matrix.Vec3) bool {
	for n, i := range d.keep {
		if boxDistance(p, d.lo[n], d.hi[n]) > d.threshold {
			continue
		}
		if d.tri.Distance(i, p) <= d.threshold {
			return true
		}
	}

	return false
}

func tetPoints(tri *delaunay.Triangulation, i int) []matrix.Vec3 {
	v := tri.Tetrahedra[i]

	return []matrix.Vec3{tri.Points[v[0]], tri.Points[v[1]], tri.Points[v[2]], tri.Points[v[3]]}
}

// thicken replaces every point by copies offset ±h along each principal
// direction whose standard deviation is below h.
func thicken(pts []matrix.Vec3, h float64) []matrix.Vec3 {
	if h <= 0 {
		h = 1e-3
	}
	cov, _ := matrix.Covariance(pts)
	vals, vecs, err := matrix.EigenSym(cov, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	if err != nil {
		return pts
	}
	var missing []matrix.Vec3
	for k := 0; k < 3; k++ {
		if math.Sqrt(math.Max(vals[k], 0)) < h {
			missing = append(missing, vecs[k])
		}
	}
	if len(missing) == 0 && len(pts) >= 4 {
		return pts
	}
	if len(missing) == 0 {
		// too few points: thicken along the flattest direction
		missing = append(missing, vecs[0])
	}
	out := pts
	for _, dir := range missing {
		next := make([]matrix.Vec3, 0, 2*len(out))
		for _, p := range out {
			next = append(next, p.Add(dir.Scale(h)), p.Sub(dir.Scale(h)))
		}
		out = next
	}

	return out
}

func box(ps []matrix.Vec3) (matrix.Vec3, matrix.Vec3) {
	lo, hi := ps[0], ps[0]
	for _, p := range ps[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}

	return lo, hi
}

// boxDistance returns the euclidean distance from p to the box [lo, hi].
func boxDistance(p, lo, hi matrix.Vec3) float64 {
	var d2 float64
	for k := 0; k < 3; k++ {
		switch {
		case p[k] < lo[k]:
			d2 += (lo[k] - p[k]) * (lo[k] - p[k])
		case p[k] > hi[k]:
			d2 += (p[k] - hi[k]) * (p[k] - hi[k])
		}
	}

	return math.Sqrt(d2)
}
