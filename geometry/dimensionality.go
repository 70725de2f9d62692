// SPDX-License-Identifier: MIT

package geometry

import (
	"math"
	"sort"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/connectivity"
	"github.com/katalvlaran/systax/matrix"
)

// DimensionalityResult reports how a structure connects to its periodic copies.
type DimensionalityResult struct {
	// Dimension is the rank of Translations (0..3).
	Dimension int
	// ConnectedAxes[k] is true when some translation has a non-zero k component.
	ConnectedAxes [3]bool
	// Translations lists the factors t ≠ 0 for which an atom and its copy at
	// t·cell share a cluster, in lexicographic order.
	Translations [][3]int
	// Directions is an orthonormal basis of span{t·cell}.
	Directions []matrix.Vec3
}

// LinkFunc reports whether two atoms (by atomic number) at distance d are linked.
type LinkFunc func(zi, zj int, d float64) bool

// GapLink links atoms whose surface gap d − (r_i + r_j) is at most threshold.
func GapLink(threshold float64) LinkFunc {
	return func(zi, zj int, d float64) bool {
		return d-(atoms.CovalentRadius(zi)+atoms.CovalentRadius(zj)) <= threshold
	}
}

// BondLink links atoms with d ≤ factor·(r_i + r_j).
func BondLink(factor float64) LinkFunc {
	return func(zi, zj int, d float64) bool {
		return d <= factor*(atoms.CovalentRadius(zi)+atoms.CovalentRadius(zj))
	}
}

// maxRadius returns the largest covalent radius among numbers.
func maxRadius(numbers []int) float64 {
	r := 0.0
	for _, z := range numbers {
		r = math.Max(r, atoms.CovalentRadius(z))
	}

	return r
}

// EstimateDimensionality clusters the atoms of s together with their copies
// in the 3×3×3 (periodic axes only) supercell by single linkage, merging two
// atoms when their gap d − (r_i + r_j) ≤ clusterThreshold. The dimension is the
// rank of the translations that map an atom onto a copy in its own cluster.
//
// A structure without periodic axes is 0-dimensional.
//
// Complexity:
//   - Time O(M·k) with M = N·3^p images and k the neighbours per hash bucket.
func EstimateDimensionality(s *atoms.Structure, clusterThreshold float64) (*DimensionalityResult, error) {
	reach := clusterThreshold + 2*maxRadius(s.Numbers)
	res, err := Periodicity(s, nil, GapLink(clusterThreshold), reach)
	if err != nil {
		return nil, geometryErrorf(opDimension, err)
	}

	return res, nil
}

// Periodicity runs the translation analysis of EstimateDimensionality on the
// atoms at indices (nil = all) with an arbitrary link rule; reach is the
// largest distance link can accept.
func Periodicity(s *atoms.Structure, indices []int, link LinkFunc, reach float64) (*DimensionalityResult, error) {
	res := &DimensionalityResult{}
	if s.PeriodicCount() == 0 || s.Len() == 0 {
		return res, nil
	}
	l, err := LatticeOf(s)
	if err != nil {
		return nil, err
	}
	if indices == nil {
		indices = make([]int, s.Len())
		for i := range indices {
			indices[i] = i
		}
	}
	if len(indices) == 0 {
		return res, nil
	}

	shifts := append([][3]int{{0, 0, 0}}, Translations(s.PBC, 1)...)
	n := len(indices)
	pts := make([]matrix.Vec3, 0, n*len(shifts))
	zs := make([]int, 0, n*len(shifts))
	for _, t := range shifts {
		off := l.Translate(t)
		for _, i := range indices {
			pts = append(pts, s.Positions[i].Add(off))
			zs = append(zs, s.Numbers[i])
		}
	}

	dsu := connectivity.NewDisjointSet(len(pts))
	forPairsWithin(pts, reach, func(a, b int, d float64) {
		if link(zs[a], zs[b], d) {
			dsu.Union(a, b)
		}
	})

	seen := map[[3]int]bool{}
	for si, t := range shifts {
		if si == 0 {
			continue
		}
		for a := 0; a < n; a++ {
			if dsu.Same(a, si*n+a) {
				seen[t] = true
				break
			}
		}
	}
	for _, t := range shifts[1:] {
		if !seen[t] {
			continue
		}
		res.Translations = append(res.Translations, t)
		for k := 0; k < 3; k++ {
			if t[k] != 0 {
				res.ConnectedAxes[k] = true
			}
		}
	}
	vecs := make([]matrix.Vec3, len(res.Translations))
	for i, t := range res.Translations {
		vecs[i] = l.Translate(t)
	}
	res.Directions = Orthonormalize(vecs, 1e-6)
	res.Dimension = len(res.Directions)

	return res, nil
}

// Orthonormalize runs Gram–Schmidt over vs (in order) and returns at most
// three orthonormal vectors; residuals shorter than tol·|v| are dropped.
func Orthonormalize(vs []matrix.Vec3, tol float64) []matrix.Vec3 {
	var basis []matrix.Vec3
	for _, v := range vs {
		if len(basis) == 3 {
			break
		}
		r := v
		for _, b := range basis {
			r = r.Sub(b.Scale(r.Dot(b)))
		}
		if r.Norm() > tol*math.Max(v.Norm(), 1) {
			basis = append(basis, r.Unit())
		}
	}

	return basis
}

// forPairsWithin calls fn for every pair a<b with |p_a − p_b| ≤ cutoff,
// using a uniform hash grid of cell size cutoff. Pairs are visited in
// ascending a, then ascending b.
func forPairsWithin(pts []matrix.Vec3, cutoff float64, fn func(a, b int, d float64)) {
	if cutoff <= 0 || len(pts) < 2 {
		return
	}
	key := func(p matrix.Vec3) [3]int {
		return [3]int{
			int(math.Floor(p[0] / cutoff)),
			int(math.Floor(p[1] / cutoff)),
			int(math.Floor(p[2] / cutoff)),
		}
	}
	grid := make(map[[3]int][]int, len(pts))
	for i, p := range pts {
		k := key(p)
		grid[k] = append(grid[k], i)
	}
	var cand []int
	for a, p := range pts {
		k := key(p)
		cand = cand[:0]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, b := range grid[[3]int{k[0] + dx, k[1] + dy, k[2] + dz}] {
						if b > a {
							cand = append(cand, b)
						}
					}
				}
			}
		}
		sort.Ints(cand)
		for _, b := range cand {
			if d := p.Dist(pts[b]); d <= cutoff {
				fn(a, b, d)
			}
		}
	}
}
