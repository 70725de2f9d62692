// SPDX-License-Identifier: MIT

package classify

import (
	"github.com/katalvlaran/systax/connectivity"
)

// environment is the multiset of species bonded to an atom.
type environment map[int]int

func environmentOf(g *connectivity.Graph, numbers []int, i int) environment {
	env := environment{}
	for _, j := range g.Neighbors(i) {
		env[numbers[j]]++
	}

	return env
}

// Similarity returns Σ min(count) / Σ max(count) over the species of both
// environments; two empty environments are identical.
func Similarity(a, b map[int]int) float64 {
	var lo, hi int
	for z, na := range a {
		nb := b[z]
		lo += min(na, nb)
		hi += max(na, nb)
	}
	for z, nb := range b {
		if _, ok := a[z]; !ok {
			hi += nb
		}
	}
	if hi == 0 {
		return 1
	}

	return float64(lo) / float64(hi)
}

// componentSimilarity averages, over the boundary atoms of comp, the best
// similarity to a lattice atom of the same species. Boundary atoms have a bond
// leaving comp; an isolated component uses all its atoms.
func componentSimilarity(g *connectivity.Graph, numbers []int, comp, lattice []int) float64 {
	in := make(map[int]bool, len(comp))
	for _, i := range comp {
		in[i] = true
	}
	var boundary []int
	for _, i := range comp {
		for _, j := range g.Neighbors(i) {
			if !in[j] {
				boundary = append(boundary, i)
				break
			}
		}
	}
	if len(boundary) == 0 {
		boundary = comp
	}

	latticeEnv := make(map[int]environment, len(lattice))
	for _, l := range lattice {
		latticeEnv[l] = environmentOf(g, numbers, l)
	}
	var sum float64
	for _, b := range boundary {
		env := environmentOf(g, numbers, b)
		best := 0.0
		for _, l := range lattice {
			if numbers[l] != numbers[b] {
				continue
			}
			if s := Similarity(env, latticeEnv[l]); s > best {
				best = s
			}
		}
		sum += best
	}

	return sum / float64(len(boundary))
}
