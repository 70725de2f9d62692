// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

// Lattice caches the completed cell, its inverse and the candidate
// translations used for minimum-image searches.
type Lattice struct {
	cell   matrix.Mat3
	inv    matrix.Mat3
	pbc    [3]bool
	shifts [][3]int
	// axes lists the periodic axes; gramInv inverts their Gram matrix
	// (padded with identity) for projecting onto the periodic sublattice.
	axes    []int
	gramInv matrix.Mat3
}

// NewLattice prepares a lattice for cell/pbc. Rows of non-periodic axes may be
// zero; they are completed with orthonormal directions.
func NewLattice(cell matrix.Mat3, pbc [3]bool) (*Lattice, error) {
	s := atoms.Structure{Cell: cell, PBC: pbc}
	if err := s.Validate(); err != nil {
		return nil, geometryErrorf(opLattice, err)
	}
	full := s.CompleteCell()
	inv, err := matrix.Inverse(full)
	if err != nil {
		return nil, geometryErrorf(opLattice, err)
	}
	l := &Lattice{cell: full, inv: inv, pbc: pbc}
	l.shifts = Translations(pbc, 1)
	for k := 0; k < 3; k++ {
		if pbc[k] {
			l.axes = append(l.axes, k)
		}
	}
	gram := matrix.Identity()
	for i, a := range l.axes {
		for j, b := range l.axes {
			gram[i][j] = full[a].Dot(full[b])
		}
	}
	if l.gramInv, err = matrix.Inverse(gram); err != nil {
		return nil, geometryErrorf(opLattice, err)
	}

	return l, nil
}

// LatticeOf is NewLattice(s.Cell, s.PBC).
func LatticeOf(s *atoms.Structure) (*Lattice, error) {
	return NewLattice(s.Cell, s.PBC)
}

// Cell returns the completed cell.
func (l *Lattice) Cell() matrix.Mat3 { return l.cell }

// PBC returns the periodicity flags.
func (l *Lattice) PBC() [3]bool { return l.pbc }

// Periodic reports whether any axis is periodic.
func (l *Lattice) Periodic() bool { return l.pbc[0] || l.pbc[1] || l.pbc[2] }

// Fractional returns v expressed in cell coordinates.
func (l *Lattice) Fractional(v matrix.Vec3) matrix.Vec3 { return l.inv.VecMul(v) }

// Cartesian returns f·cell.
func (l *Lattice) Cartesian(f matrix.Vec3) matrix.Vec3 { return l.cell.VecMul(f) }

// Translate returns n·cell.
func (l *Lattice) Translate(n [3]int) matrix.Vec3 {
	return l.cell.VecMul(matrix.Vec3{float64(n[0]), float64(n[1]), float64(n[2])})
}

// MinimumImage returns the shortest periodic equivalent of d and the lattice
// factor n such that result = d + n·cell. Only periodic rows take part: d is
// projected onto their span through the Gram matrix, the coefficients are
// rounded, and the ±1 shell around that factor is searched. The result is
// never longer than d.
func (l *Lattice) MinimumImage(d matrix.Vec3) (matrix.Vec3, [3]int) {
	if !l.Periodic() {
		return d, [3]int{}
	}
	var rhs matrix.Vec3
	for i, a := range l.axes {
		rhs[i] = l.cell[a].Dot(d)
	}
	c := l.gramInv.VecMul(rhs)
	var base [3]int
	for i, a := range l.axes {
		base[a] = -int(math.Floor(c[i] + 0.5))
	}

	best := d.Add(l.Translate(base))
	bestN, bestLen := base, best.Norm2()
	try := func(n [3]int) {
		v := d.Add(l.Translate(n))
		if n2 := v.Norm2(); n2 < bestLen-1e-12 {
			best, bestN, bestLen = v, n, n2
		}
	}
	for _, s := range l.shifts {
		try([3]int{base[0] + s[0], base[1] + s[1], base[2] + s[2]})
	}
	try([3]int{})

	return best, bestN
}

// Wrap maps p into the cell along periodic axes (fractional [0,1)).
func (l *Lattice) Wrap(p matrix.Vec3) matrix.Vec3 {
	f := l.Fractional(p)
	for k := 0; k < 3; k++ {
		if l.pbc[k] {
			f[k] = wrapUnit(f[k])
		}
	}

	return l.Cartesian(f)
}

// Heights returns the perpendicular widths of the completed cell.
func (l *Lattice) Heights() matrix.Vec3 {
	vol := math.Abs(l.cell.Det())
	var h matrix.Vec3
	for k := 0; k < 3; k++ {
		h[k] = vol / l.cell[(k+1)%3].Cross(l.cell[(k+2)%3]).Norm()
	}

	return h
}

// wrapUnit maps x to [0,1), folding values within 1e-12 of 1 back to 0.
func wrapUnit(x float64) float64 {
	w := x - math.Floor(x)
	if w >= 1-1e-12 {
		w = 0
	}

	return w
}

// Translations returns every factor in {-m..m}^3 restricted to the periodic
// axes, excluding the zero factor, in lexicographic order.
func Translations(pbc [3]bool, m int) [][3]int {
	var rng [3][]int
	for k := 0; k < 3; k++ {
		if pbc[k] {
			for v := -m; v <= m; v++ {
				rng[k] = append(rng[k], v)
			}
		} else {
			rng[k] = []int{0}
		}
	}
	var out [][3]int
	for _, i := range rng[0] {
		for _, j := range rng[1] {
			for _, k := range rng[2] {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				out = append(out, [3]int{i, j, k})
			}
		}
	}

	return out
}
