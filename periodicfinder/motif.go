// SPDX-License-Identifier: MIT

package periodicfinder

import (
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/region"
)

// reducer folds vectors modulo the first dim rows of a completed basis.
type reducer struct {
	basis matrix.Mat3
	inv   matrix.Mat3
	dim   int
}

// reduce returns the shortest vector equivalent to v modulo the lattice.
func (r reducer) reduce(v matrix.Vec3) matrix.Vec3 {
	f := r.inv.VecMul(v)
	for k := 0; k < r.dim; k++ {
		f[k] -= math.Floor(f[k] + 0.5)
	}
	base := r.basis.VecMul(f)
	best := base
	var n [3]int
	var walk func(k int)
	walk = func(k int) {
		if k == r.dim {
			w := base
			for i := 0; i < r.dim; i++ {
				w = w.Add(r.basis[i].Scale(float64(n[i])))
			}
			if w.Norm2() < best.Norm2()-1e-12 {
				best = w
			}
			return
		}
		for _, s := range []int{-1, 0, 1} {
			n[k] = s
			walk(k + 1)
		}
	}
	walk(0)

	return best
}

type siteVotes struct {
	// offset is the reduced offset of the first member; sum accumulates the
	// reduced deltas of every member relative to it.
	offset  matrix.Vec3
	sum     matrix.Vec3
	members []int
	species map[int]int
}

func (v *siteVotes) mean() matrix.Vec3 {
	return v.offset.Add(v.sum.Scale(1 / float64(len(v.members))))
}

// voteMotif reduces every atom of comp (seed first) into the unit cell
// anchored at the seed and clusters the reduced offsets into sites: an atom
// joins the nearest site whose running mean lies within tol. Sites closer than
// half their covalent bond length are then merged, so noise cannot split one
// site in two. Sites whose population falls below cfg.SiteCoverage of the
// seed site are discarded. Each site takes the majority species of its
// members, ties going to the lower atomic number. Offsets are reported
// relative to the mean of the seed site.
func voteMotif(p probe, seed int, comp []int, red reducer, tol float64, cfg config.Config) []region.Site {
	origin := p.s.Positions[seed]
	var votes []*siteVotes
	for _, j := range comp {
		d, _ := p.lat.MinimumImage(p.s.Positions[j].Sub(origin))
		r := red.reduce(d)
		var hit *siteVotes
		bestD := tol
		for _, v := range votes {
			if n := red.reduce(r.Sub(v.mean())).Norm(); n <= bestD {
				hit, bestD = v, n
			}
		}
		if hit == nil {
			hit = &siteVotes{offset: r, species: map[int]int{}}
			votes = append(votes, hit)
		}
		hit.sum = hit.sum.Add(red.reduce(r.Sub(hit.offset)))
		hit.members = append(hit.members, j)
		hit.species[p.s.Numbers[j]]++
	}
	if len(votes) == 0 {
		return nil
	}
	votes = mergeVotes(votes, red)

	zero := votes[0].mean()
	need := cfg.SiteCoverage * float64(len(votes[0].members))
	var sites []region.Site
	for n, v := range votes {
		if n > 0 && float64(len(v.members)) < need {
			continue
		}
		var off matrix.Vec3
		if n > 0 {
			off = red.reduce(v.mean().Sub(zero))
		}
		sites = append(sites, region.Site{
			Offset:     off,
			Species:    majority(v.species),
			Population: len(v.members),
		})
	}

	return sites
}

// mergeVotes folds later sites into earlier ones while any pair of means lies
// closer than half the bond length of their majority species.
func mergeVotes(votes []*siteVotes, red reducer) []*siteVotes {
	for merged := true; merged; {
		merged = false
		for a := 0; a < len(votes) && !merged; a++ {
			for b := a + 1; b < len(votes); b++ {
				va, vb := votes[a], votes[b]
				limit := 0.5 * (atoms.CovalentRadius(majority(va.species)) + atoms.CovalentRadius(majority(vb.species)))
				if red.reduce(vb.mean().Sub(va.mean())).Norm() >= limit {
					continue
				}
				shift := red.reduce(vb.offset.Sub(va.offset))
				va.sum = va.sum.Add(vb.sum).Add(shift.Scale(float64(len(vb.members))))
				va.members = append(va.members, vb.members...)
				for z, n := range vb.species {
					va.species[z] += n
				}
				votes = append(votes[:b], votes[b+1:]...)
				merged = true
				break
			}
		}
	}

	return votes
}

func majority(counts map[int]int) int {
	best, bestN := -1, -1
	for z, n := range counts {
		if n > bestN || (n == bestN && z < best) {
			best, bestN = z, n
		}
	}

	return best
}
