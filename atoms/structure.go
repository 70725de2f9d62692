// SPDX-License-Identifier: MIT
// Package atoms defines the atomic structure value consumed by every
// geometry kernel: species, cartesian positions, a 3×3 cell and per-axis
// periodicity flags, together with element tables.
//
// Structures are treated as immutable by the engine: every kernel reads a
// *Structure and returns fresh values. Mutating helpers (Translate, Repeat,
// Subset, ...) always return a new Structure.
package atoms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systax/matrix"
)

// degenerateEps is the minimum row norm / volume treated as non-zero.
const degenerateEps = 1e-8

// Structure is a set of atoms with an optional periodic cell.
type Structure struct {
	// Numbers holds the atomic number of every atom.
	Numbers []int
	// Positions holds cartesian coordinates in Å.
	Positions []matrix.Vec3
	// Cell rows are the lattice vectors; rows of non-periodic axes may be zero.
	Cell matrix.Mat3
	// PBC flags periodicity per cell axis.
	PBC [3]bool
}

// New validates and returns a structure that owns copies of numbers and positions.
//
// Errors:
//   - ErrLengthMismatch when len(numbers) != len(positions).
//   - ErrUnknownElement for a negative atomic number.
//   - ErrMalformedCell when the rows of periodic axes are degenerate.
func New(numbers []int, positions []matrix.Vec3, cell matrix.Mat3, pbc [3]bool) (*Structure, error) {
	s := &Structure{
		Numbers:   append([]int(nil), numbers...),
		Positions: append([]matrix.Vec3(nil), positions...),
		Cell:      cell,
		PBC:       pbc,
	}
	if err := s.Validate(); err != nil {
		return nil, atomsErrorf(opNew, err)
	}

	return s, nil
}

// Validate checks the structural invariants of s.
func (s *Structure) Validate() error {
	if len(s.Numbers) != len(s.Positions) {
		return fmt.Errorf("%w: %d numbers, %d positions", ErrLengthMismatch, len(s.Numbers), len(s.Positions))
	}
	for i, z := range s.Numbers {
		if z < 0 {
			return fmt.Errorf("%w: atom %d has number %d", ErrUnknownElement, i, z)
		}
	}
	var rows []matrix.Vec3
	for i := 0; i < 3; i++ {
		if s.PBC[i] {
			rows = append(rows, s.Cell[i])
		}
	}
	if measure(rows) < degenerateEps {
		return fmt.Errorf("%w: periodic cell vectors are linearly dependent", ErrMalformedCell)
	}

	return nil
}

// measure returns the length, area or volume spanned by rows (1 for none).
func measure(rows []matrix.Vec3) float64 {
	switch len(rows) {
	case 0:
		return 1
	case 1:
		return rows[0].Norm()
	case 2:
		return rows[0].Cross(rows[1]).Norm()
	default:
		return math.Abs(rows[0].Dot(rows[1].Cross(rows[2])))
	}
}

// Len returns the number of atoms.
func (s *Structure) Len() int { return len(s.Numbers) }

// Clone returns a deep copy of s.
func (s *Structure) Clone() *Structure {
	return &Structure{
		Numbers:   append([]int(nil), s.Numbers...),
		Positions: append([]matrix.Vec3(nil), s.Positions...),
		Cell:      s.Cell,
		PBC:       s.PBC,
	}
}

// PeriodicCount returns how many axes are periodic.
func (s *Structure) PeriodicCount() int {
	n := 0
	for _, p := range s.PBC {
		if p {
			n++
		}
	}

	return n
}

// CheckSize returns ErrTooManyAtoms when s holds more than maxAtoms atoms.
// A non-positive maxAtoms disables the check.
func (s *Structure) CheckSize(maxAtoms int) error {
	if maxAtoms > 0 && s.Len() > maxAtoms {
		return atomsErrorf(opCheckSize, fmt.Errorf("%w: %d > %d", ErrTooManyAtoms, s.Len(), maxAtoms))
	}

	return nil
}

// CompleteCell returns the cell with every degenerate row replaced by a unit
// vector orthogonal to the remaining rows. The result is always invertible
// for a validated structure and is used for fractional transforms only.
func (s *Structure) CompleteCell() matrix.Mat3 {
	c := s.Cell
	good := [3]bool{}
	for i := 0; i < 3; i++ {
		good[i] = c[i].Norm() > degenerateEps
	}
	// drop rows that are dependent on earlier good rows
	var kept []matrix.Vec3
	for i := 0; i < 3; i++ {
		if !good[i] {
			continue
		}
		if measure(append(append([]matrix.Vec3(nil), kept...), c[i])) < degenerateEps {
			good[i] = false
			continue
		}
		kept = append(kept, c[i])
	}
	for i := 0; i < 3; i++ {
		if good[i] {
			continue
		}
		c[i] = complement(kept)
		kept = append(kept, c[i])
	}

	return c
}

// complement returns a unit vector orthogonal to the span of rows (len ≤ 2).
func complement(rows []matrix.Vec3) matrix.Vec3 {
	axes := [3]matrix.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	switch len(rows) {
	case 2:
		return rows[0].Cross(rows[1]).Unit()
	case 1:
		// cross with the coordinate axis least aligned with rows[0]
		best, bestDot := 0, math.Inf(1)
		u := rows[0].Unit()
		for i, a := range axes {
			if d := math.Abs(u.Dot(a)); d < bestDot {
				best, bestDot = i, d
			}
		}

		return u.Cross(axes[best]).Unit()
	default:
		return axes[0]
	}
}

// ScaledPositions returns fractional coordinates relative to CompleteCell.
func (s *Structure) ScaledPositions() ([]matrix.Vec3, error) {
	inv, err := matrix.Inverse(s.CompleteCell())
	if err != nil {
		return nil, atomsErrorf(opScaled, err)
	}
	out := make([]matrix.Vec3, s.Len())
	for i, p := range s.Positions {
		out[i] = inv.VecMul(p)
	}

	return out, nil
}

// Masses returns the atomic masses of all atoms.
func (s *Structure) Masses() []float64 {
	out := make([]float64, s.Len())
	for i, z := range s.Numbers {
		out[i] = Mass(z)
	}

	return out
}

// Radii returns the covalent radii of all atoms.
func (s *Structure) Radii() []float64 {
	out := make([]float64, s.Len())
	for i, z := range s.Numbers {
		out[i] = CovalentRadius(z)
	}

	return out
}

// Translate returns a copy of s with every position shifted by v.
func (s *Structure) Translate(v matrix.Vec3) *Structure {
	c := s.Clone()
	for i := range c.Positions {
		c.Positions[i] = c.Positions[i].Add(v)
	}

	return c
}

// Append returns a copy of s with one extra atom.
func (s *Structure) Append(number int, position matrix.Vec3) *Structure {
	c := s.Clone()
	c.Numbers = append(c.Numbers, number)
	c.Positions = append(c.Positions, position)

	return c
}

// Extend returns a copy of s followed by the atoms of other; the cell and
// periodicity of s are kept.
func (s *Structure) Extend(other *Structure) *Structure {
	c := s.Clone()
	c.Numbers = append(c.Numbers, other.Numbers...)
	c.Positions = append(c.Positions, other.Positions...)

	return c
}

// Subset returns the atoms at indices (in the given order) with the same cell.
func (s *Structure) Subset(indices []int) (*Structure, error) {
	out := &Structure{
		Numbers:   make([]int, 0, len(indices)),
		Positions: make([]matrix.Vec3, 0, len(indices)),
		Cell:      s.Cell,
		PBC:       s.PBC,
	}
	for _, i := range indices {
		if i < 0 || i >= s.Len() {
			return nil, atomsErrorf(opSubset, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
		}
		out.Numbers = append(out.Numbers, s.Numbers[i])
		out.Positions = append(out.Positions, s.Positions[i])
	}

	return out, nil
}

// Delete returns a copy of s without the atoms at indices. Out-of-range
// indices are ignored.
func (s *Structure) Delete(indices ...int) *Structure {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	out := &Structure{Cell: s.Cell, PBC: s.PBC}
	for i := range s.Numbers {
		if drop[i] {
			continue
		}
		out.Numbers = append(out.Numbers, s.Numbers[i])
		out.Positions = append(out.Positions, s.Positions[i])
	}

	return out
}

// Repeat tiles s n[0]×n[1]×n[2] times along its cell vectors. Atoms are
// emitted cell by cell with the first axis varying slowest.
func (s *Structure) Repeat(n [3]int) (*Structure, error) {
	for _, k := range n {
		if k < 1 {
			return nil, atomsErrorf(opRepeat, ErrBadRepeat)
		}
	}
	total := s.Len() * n[0] * n[1] * n[2]
	out := &Structure{
		Numbers:   make([]int, 0, total),
		Positions: make([]matrix.Vec3, 0, total),
		PBC:       s.PBC,
	}
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				shift := s.Cell.VecMul(matrix.Vec3{float64(i), float64(j), float64(k)})
				for a := range s.Numbers {
					out.Numbers = append(out.Numbers, s.Numbers[a])
					out.Positions = append(out.Positions, s.Positions[a].Add(shift))
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		out.Cell[i] = s.Cell[i].Scale(float64(n[i]))
	}

	return out, nil
}

// Formula returns the chemical formula of s (see Formula).
func (s *Structure) Formula() string { return Formula(s.Numbers) }
