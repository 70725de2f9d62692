// SPDX-License-Identifier: MIT

package periodicfinder

import (
	"math"

	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/region"
)

type pending struct {
	index  [3]int
	anchor matrix.Vec3
}

// grower expands the motif cell by cell from the seed.
type grower struct {
	p       probe
	reg     *region.Region
	solid   *geometry.Decomposition
	claimed []bool
	tol     float64 // bounds every site match and the anchor dedupe
	reach   float64
	limit   int
}

func newGrower(p probe, reg *region.Region, solid *geometry.Decomposition, tol float64, cfg config.Config) *grower {
	g := &grower{
		p:       p,
		tol:     tol,
		reg:     reg,
		solid:   solid,
		claimed: make([]bool, p.s.Len()),
		limit:   2*p.s.Len() + 64,
	}
	maxOff := 0.0
	for _, st := range reg.Sites {
		maxOff = math.Max(maxOff, st.Offset.Norm())
	}
	g.reach = cfg.MaxCellSize + maxOff

	return g
}

// grow runs the breadth-first expansion. Neighbours are enqueued in the
// order +b0, −b0, +b1, −b1, +b2, −b2 and predicted from the observed anchor of
// their parent.
func (g *grower) grow() {
	queue := []pending{{anchor: g.p.s.Positions[g.reg.Seed]}}
	for qi := 0; qi < len(queue) && len(g.reg.Cells) < g.limit; qi++ {
		item := queue[qi]
		if g.visited(item.anchor, g.tol) || !g.populated(item.anchor) {
			continue
		}
		cell, ok := g.match(item, qi == 0)
		if !ok {
			continue
		}
		g.accept(cell)
		for k, b := range g.reg.Basis {
			for _, sign := range []int{1, -1} {
				next := cell.Index
				next[k] += sign
				queue = append(queue, pending{
					index:  next,
					anchor: cell.Anchor.Add(b.Scale(float64(sign))),
				})
			}
		}
	}
}

func (g *grower) visited(anchor matrix.Vec3, tol float64) bool {
	for _, c := range g.reg.Cells {
		d, _ := g.p.lat.MinimumImage(anchor.Sub(c.Anchor))
		if d.Norm() <= tol {
			return true
		}
	}

	return false
}

// populated reports whether any atom lies within reach of anchor.
func (g *grower) populated(anchor matrix.Vec3) bool {
	j, _ := g.p.nearest(anchor, -1, g.reach)
	return j >= 0
}

// match fills the sites of one predicted cell. The origin cell always takes the
// seed at site 0. The anchor is refitted to the mean of the matched atoms minus
// their site offsets, so predictions for the neighbours do not inherit the
// displacement of a single atom. A cell without any matched site is kept only
// when its anchor lies inside the solid of the seed component.
func (g *grower) match(item pending, origin bool) (region.Cell, bool) {
	cell := region.Cell{Index: item.index, Anchor: item.anchor, Atoms: make([]int, len(g.reg.Sites))}
	for i := range cell.Atoms {
		cell.Atoms[i] = -1
	}
	taken := map[int]bool{}
	found := 0
	var fit matrix.Vec3

	if origin {
		cell.Atoms[0] = g.reg.Seed
		taken[g.reg.Seed] = true
		found++
		fit = cell.Anchor
	} else if j, at := g.pick(item.anchor, g.tol, taken); j >= 0 {
		cell.Atoms[0], cell.Anchor = j, at
		taken[j] = true
		found++
		fit = at
	}
	for s := 1; s < len(g.reg.Sites); s++ {
		off := g.reg.Sites[s].Offset
		if j, at := g.pick(cell.Anchor.Add(off), g.tol, taken); j >= 0 {
			cell.Atoms[s] = j
			taken[j] = true
			found++
			fit = fit.Add(at.Sub(off))
		}
	}
	if found == 0 {
		return cell, g.solid != nil && g.solid.Contains(item.anchor)
	}
	cell.Anchor = fit.Scale(1 / float64(found))

	return cell, true
}

// pick finds the nearest unclaimed atom of any species within tol of q that
// this cell has not taken yet.
func (g *grower) pick(q matrix.Vec3, tol float64, taken map[int]bool) (int, matrix.Vec3) {
	best, bestD := -1, math.Inf(1)
	var at matrix.Vec3
	for j, pos := range g.p.s.Positions {
		if g.claimed[j] || taken[j] {
			continue
		}
		d, _ := g.p.lat.MinimumImage(pos.Sub(q))
		if n := d.Norm(); n <= tol && n < bestD {
			best, bestD, at = j, n, q.Add(d)
		}
	}

	return best, at
}

func (g *grower) accept(cell region.Cell) {
	ci := len(g.reg.Cells)
	g.reg.Cells = append(g.reg.Cells, cell)
	for s, j := range cell.Atoms {
		if j < 0 {
			g.reg.Vacancies = append(g.reg.Vacancies, region.VacancySite{
				Cell:     ci,
				Site:     s,
				Species:  g.reg.Sites[s].Species,
				Position: cell.Anchor.Add(g.reg.Sites[s].Offset),
			})
			continue
		}
		g.claimed[j] = true
		g.reg.Assignments[j] = region.SiteMatch{Cell: ci, Site: s}
	}
}
