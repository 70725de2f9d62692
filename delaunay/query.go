// SPDX-License-Identifier: MIT

package delaunay

import (
	"math"

	"github.com/katalvlaran/systax/matrix"
)

// Volume returns the unsigned volume of tetrahedron i.
func (t *Triangulation) Volume(i int) float64 {
	a, b, c, d := t.vertices(i)

	return math.Abs(b.Sub(a).Dot(c.Sub(a).Cross(d.Sub(a)))) / 6
}

// MaxEdge returns the longest edge of tetrahedron i.
func (t *Triangulation) MaxEdge(i int) float64 {
	v := t.Tetrahedra[i]
	var m float64
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			m = math.Max(m, t.Points[v[a]].Dist(t.Points[v[b]]))
		}
	}

	return m
}

func (t *Triangulation) vertices(i int) (matrix.Vec3, matrix.Vec3, matrix.Vec3, matrix.Vec3) {
	v := t.Tetrahedra[i]

	return t.Points[v[0]], t.Points[v[1]], t.Points[v[2]], t.Points[v[3]]
}

// Distance returns the euclidean distance from q to tetrahedron i (0 inside).
func (t *Triangulation) Distance(i int, q matrix.Vec3) float64 {
	a, b, c, d := t.vertices(i)

	return DistanceToTetrahedron(q, a, b, c, d)
}

// DistanceToTetrahedron returns the distance from q to the solid tetrahedron
// abcd, 0 when q is inside. Flat tetrahedra degrade to the distance to
// their faces.
func DistanceToTetrahedron(q, a, b, c, d matrix.Vec3) float64 {
	vol := b.Sub(a).Dot(c.Sub(a).Cross(d.Sub(a)))
	if math.Abs(vol) > 1e-12 {
		// barycentric coordinates via signed sub-volumes
		l1 := q.Sub(a).Dot(c.Sub(a).Cross(d.Sub(a))) / vol
		l2 := b.Sub(a).Dot(q.Sub(a).Cross(d.Sub(a))) / vol
		l3 := b.Sub(a).Dot(c.Sub(a).Cross(q.Sub(a))) / vol
		if l1 >= 0 && l2 >= 0 && l3 >= 0 && l1+l2+l3 <= 1 {
			return 0
		}
	}
	best := math.Inf(1)
	for _, f := range [4][3]matrix.Vec3{{a, b, c}, {a, b, d}, {a, c, d}, {b, c, d}} {
		p := ClosestPointOnTriangle(q, f[0], f[1], f[2])
		best = math.Min(best, q.Dist(p))
	}

	return best
}

// ClosestPointOnTriangle returns the point of triangle abc closest to p,
// using the Voronoi-region walk of Ericson's "Real-Time Collision Detection".
func ClosestPointOnTriangle(p, a, b, c matrix.Vec3) matrix.Vec3 {
	ab, ac, ap := b.Sub(a), c.Sub(a), p.Sub(a)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Scale(safeDiv(d1, d1-d3)))
	}
	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Scale(safeDiv(d2, d2-d6)))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		return b.Add(c.Sub(b).Scale(safeDiv(d4-d3, (d4-d3)+(d5-d6))))
	}
	den := va + vb + vc
	if den == 0 {
		// collinear triangle: nearest vertex is good enough
		return nearest(p, a, b, c)
	}
	v, w := vb/den, vc/den

	return a.Add(ab.Scale(v)).Add(ac.Scale(w))
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}

func nearest(p matrix.Vec3, cs ...matrix.Vec3) matrix.Vec3 {
	best := cs[0]
	for _, c := range cs[1:] {
		if p.Dist(c) < p.Dist(best) {
			best = c
		}
	}

	return best
}
