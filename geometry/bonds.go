// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/connectivity"
)

// BondGraph links every pair of atoms whose minimum-image distance is at most
// factor·(r_i + r_j).
func BondGraph(s *atoms.Structure, factor float64) (*connectivity.Graph, error) {
	l, err := LatticeOf(s)
	if err != nil {
		return nil, geometryErrorf(opBonds, err)
	}
	link := BondLink(factor)

	return connectivity.Build(s.Len(), func(i, j int) bool {
		d, _ := l.MinimumImage(s.Positions[j].Sub(s.Positions[i]))
		return link(s.Numbers[i], s.Numbers[j], d.Norm())
	}), nil
}
