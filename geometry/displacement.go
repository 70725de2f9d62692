// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

// DisplacementTensor holds, for every pair (i∈A, j∈B), the vector
// B[j] + Factors[i][j]·cell − A[i] and the lattice factor that produced it.
type DisplacementTensor struct {
	Vectors [][]matrix.Vec3
	Factors [][][3]int
}

// Displacement computes b − a for every pair of positions. When mic is true
// and some axis is periodic, each vector is replaced by its minimum image.
//
// Errors:
//   - atoms.ErrMalformedCell (wrapped) for a degenerate periodic cell.
func Displacement(a, b []matrix.Vec3, cell matrix.Mat3, pbc [3]bool, mic bool) (*DisplacementTensor, error) {
	var (
		l   *Lattice
		err error
	)
	if mic {
		if l, err = NewLattice(cell, pbc); err != nil {
			return nil, geometryErrorf(opDisplacement, err)
		}
	}
	out := &DisplacementTensor{
		Vectors: make([][]matrix.Vec3, len(a)),
		Factors: make([][][3]int, len(a)),
	}
	for i, pa := range a {
		out.Vectors[i] = make([]matrix.Vec3, len(b))
		out.Factors[i] = make([][3]int, len(b))
		for j, pb := range b {
			d := pb.Sub(pa)
			if l != nil {
				d, out.Factors[i][j] = l.MinimumImage(d)
			}
			out.Vectors[i][j] = d
		}
	}

	return out, nil
}

// Norms returns the euclidean length of every vector of the tensor.
func (t *DisplacementTensor) Norms() [][]float64 {
	out := make([][]float64, len(t.Vectors))
	for i, row := range t.Vectors {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v.Norm()
		}
	}

	return out
}

// Distances returns the distance matrix between a and b (b = nil means a).
func Distances(a, b []matrix.Vec3, cell matrix.Mat3, pbc [3]bool, mic bool) ([][]float64, error) {
	if b == nil {
		b = a
	}
	t, err := Displacement(a, b, cell, pbc, mic)
	if err != nil {
		return nil, err
	}

	return t.Norms(), nil
}

// StructureDistances returns the minimum-image distance matrix of s with itself.
func StructureDistances(s *atoms.Structure) ([][]float64, error) {
	return Distances(s.Positions, nil, s.Cell, s.PBC, true)
}

// Distance returns the minimum-image distance between atoms i and j of s.
func (l *Lattice) Distance(s *atoms.Structure, i, j int) float64 {
	d, _ := l.MinimumImage(s.Positions[j].Sub(s.Positions[i]))

	return d.Norm()
}
