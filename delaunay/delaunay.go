// SPDX-License-Identifier: MIT
// Package delaunay computes 3D Delaunay tetrahedralizations with the
// Bowyer–Watson insertion algorithm and answers inflated point-in-tetrahedron
// queries.
//
// Implementation:
//   - Stage 1: copy the input and apply a deterministic sub-milliångström
//     perturbation (derived from the point index) to break the co-spherical
//     degeneracies every crystal lattice has.
//   - Stage 2: enclose all points in a super tetrahedron.
//   - Stage 3: insert points one by one; remove the tetrahedra whose
//     circumsphere contains the point and re-triangulate the cavity boundary.
//   - Stage 4: drop every tetrahedron touching a super vertex.
//
// Determinism:
//   - The perturbation depends only on the point index, and insertion follows
//     input order, so identical inputs give identical tetrahedra.
//
// Complexity:
//   - Time O(n·T) with T the live tetrahedra count (≈ 6n), Memory O(T).
package delaunay

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/systax/matrix"
)

var (
	// ErrTooFewPoints is returned for fewer than four input points.
	ErrTooFewPoints = errors.New("delaunay: at least four points are required")

	// ErrDegenerateInput is returned when all points lie on a plane or a line.
	ErrDegenerateInput = errors.New("delaunay: points are coplanar")
)

// perturbScale is the perturbation amplitude relative to the bounding-box diagonal.
const perturbScale = 1e-6

// Triangulation is the result of Triangulate. Tetrahedra index into Points,
// which are the caller's original (unperturbed) coordinates.
type Triangulation struct {
	Points     []matrix.Vec3
	Tetrahedra [][4]int
}

type tet struct {
	v      [4]int
	center matrix.Vec3
	r2     float64
	dead   bool
}

// Triangulate returns the Delaunay tetrahedralization of points.
func Triangulate(points []matrix.Vec3) (*Triangulation, error) {
	n := len(points)
	if n < 4 {
		return nil, fmt.Errorf("Triangulate: %w", ErrTooFewPoints)
	}
	lo, hi := bounds(points)
	diag := hi.Sub(lo).Norm()
	if diag == 0 {
		return nil, fmt.Errorf("Triangulate: %w", ErrDegenerateInput)
	}
	if flat(points, diag) {
		return nil, fmt.Errorf("Triangulate: %w", ErrDegenerateInput)
	}

	// working coordinates: perturbed input + 4 super vertices
	work := make([]matrix.Vec3, n, n+4)
	for i, p := range points {
		work[i] = p.Add(jitter(i).Scale(perturbScale * diag))
	}
	center := lo.Add(hi).Scale(0.5)
	s := 50 * (diag + 1)
	for _, d := range [4]matrix.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}} {
		work = append(work, center.Add(d.Scale(s)))
	}

	tets := []tet{newTet(work, [4]int{n, n + 1, n + 2, n + 3})}
	for p := 0; p < n; p++ {
		q := work[p]
		faces := make(map[[3]int]int)
		var order [][3]int
		for i := range tets {
			t := &tets[i]
			if t.dead || q.Sub(t.center).Norm2() > t.r2 {
				continue
			}
			t.dead = true
			for _, f := range faceIdx {
				key := sortedFace(t.v[f[0]], t.v[f[1]], t.v[f[2]])
				if faces[key] == 0 {
					order = append(order, key)
				}
				faces[key]++
			}
		}
		for _, key := range order {
			if faces[key] != 1 {
				continue
			}
			tets = append(tets, newTet(work, [4]int{key[0], key[1], key[2], p}))
		}
		if p%32 == 31 {
			tets = compact(tets)
		}
	}

	out := &Triangulation{Points: append([]matrix.Vec3(nil), points...)}
	for _, t := range tets {
		if t.dead || t.v[0] >= n || t.v[1] >= n || t.v[2] >= n || t.v[3] >= n {
			continue
		}
		out.Tetrahedra = append(out.Tetrahedra, t.v)
	}

	return out, nil
}

var faceIdx = [4][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

func sortedFace(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return [3]int{a, b, c}
}

func compact(ts []tet) []tet {
	out := ts[:0]
	for _, t := range ts {
		if !t.dead {
			out = append(out, t)
		}
	}

	return out
}

// newTet computes the circumsphere of the four work points. Degenerate
// (flat) tetrahedra get an infinite radius so the next insertion removes them.
func newTet(work []matrix.Vec3, v [4]int) tet {
	a := work[v[0]]
	u, w, x := work[v[1]].Sub(a), work[v[2]].Sub(a), work[v[3]].Sub(a)
	den := 2 * u.Dot(w.Cross(x))
	if math.Abs(den) < 1e-18 {
		return tet{v: v, center: a, r2: math.Inf(1)}
	}
	num := w.Cross(x).Scale(u.Norm2()).
		Add(x.Cross(u).Scale(w.Norm2())).
		Add(u.Cross(w).Scale(x.Norm2()))
	off := num.Scale(1 / den)

	return tet{v: v, center: a.Add(off), r2: off.Norm2()}
}

// jitter returns a deterministic pseudo-random vector in [-1,1)³ for index i.
func jitter(i int) matrix.Vec3 {
	var out matrix.Vec3
	x := uint64(i)*0x9E3779B97F4A7C15 + 0x632BE59BD9B4E019
	for k := 0; k < 3; k++ {
		// splitmix64
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		out[k] = float64(z>>11)/float64(1<<53)*2 - 1
	}

	return out
}

func bounds(ps []matrix.Vec3) (matrix.Vec3, matrix.Vec3) {
	lo, hi := ps[0], ps[0]
	for _, p := range ps[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}

	return lo, hi
}

// flat reports whether the points have affine rank < 3.
func flat(ps []matrix.Vec3, diag float64) bool {
	cov, _ := matrix.Covariance(ps)
	vals, _, err := matrix.EigenSym(cov, matrix.DefaultEigenTol*diag*diag, matrix.DefaultEigenMaxIter)
	if err != nil {
		return true
	}

	return math.Sqrt(math.Max(vals[0], 0)) < 1e-6*diag
}
