// SPDX-License-Identifier: MIT
package atoms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/matrix"
)

func water(t *testing.T) *atoms.Structure {
	t.Helper()
	s, err := atoms.New(
		[]int{8, 1, 1},
		[]matrix.Vec3{{0, 0, 0.119262}, {0, 0.763239, -0.477047}, {0, -0.763239, -0.477047}},
		matrix.Diag(3, 3, 3),
		[3]bool{},
	)
	require.NoError(t, err)

	return s
}

func TestNew_Validation(t *testing.T) {
	_, err := atoms.New([]int{1, 1}, []matrix.Vec3{{}}, matrix.Identity(), [3]bool{})
	require.ErrorIs(t, err, atoms.ErrLengthMismatch)

	_, err = atoms.New([]int{-1}, []matrix.Vec3{{}}, matrix.Identity(), [3]bool{})
	require.ErrorIs(t, err, atoms.ErrUnknownElement)

	// periodic axes with parallel vectors
	_, err = atoms.New([]int{6}, []matrix.Vec3{{}}, matrix.Mat3{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}}, [3]bool{true, true, false})
	require.ErrorIs(t, err, atoms.ErrMalformedCell)

	// zero row on a non-periodic axis is fine
	s, err := atoms.New([]int{6}, []matrix.Vec3{{}}, matrix.Mat3{{1, 0, 0}, {0, 1, 0}, {}}, [3]bool{true, true, false})
	require.NoError(t, err)
	assert.Equal(t, 2, s.PeriodicCount())
}

func TestNew_CopiesInput(t *testing.T) {
	nums := []int{6}
	pos := []matrix.Vec3{{1, 2, 3}}
	s, err := atoms.New(nums, pos, matrix.Identity(), [3]bool{})
	require.NoError(t, err)
	nums[0] = 1
	pos[0] = matrix.Vec3{}
	assert.Equal(t, 6, s.Numbers[0])
	assert.Equal(t, matrix.Vec3{1, 2, 3}, s.Positions[0])
}

func TestCheckSize(t *testing.T) {
	n := 1100
	nums := make([]int, n)
	pos := make([]matrix.Vec3, n)
	for i := range nums {
		nums[i] = 6
		pos[i] = matrix.Vec3{float64(i), 0, 0}
	}
	s, err := atoms.New(nums, pos, matrix.Identity(), [3]bool{})
	require.NoError(t, err)

	require.ErrorIs(t, s.CheckSize(1000), atoms.ErrTooManyAtoms)
	require.NoError(t, s.CheckSize(2000))
	require.NoError(t, s.CheckSize(0))
}

func TestCompleteCell(t *testing.T) {
	s := &atoms.Structure{Cell: matrix.Mat3{{2, 0, 0}, {0, 3, 0}, {}}, PBC: [3]bool{true, true, false}}
	c := s.CompleteCell()
	assert.Equal(t, matrix.Vec3{2, 0, 0}, c[0])
	assert.Equal(t, matrix.Vec3{0, 3, 0}, c[1])
	assert.InDelta(t, 1, c[2].Norm(), 1e-12)
	assert.InDelta(t, 0, c[2].Dot(c[0]), 1e-12)
	assert.InDelta(t, 0, c[2].Dot(c[1]), 1e-12)

	empty := &atoms.Structure{}
	assert.NotZero(t, empty.CompleteCell().Det())
}

func TestScaledPositions(t *testing.T) {
	s, err := atoms.New([]int{1}, []matrix.Vec3{{1, 1.5, 0.5}}, matrix.Mat3{{1, 1, 0}, {0, 2, 0}, {1, 0, 1}}, [3]bool{true, true, true})
	require.NoError(t, err)
	frac, err := s.ScaledPositions()
	require.NoError(t, err)
	assert.True(t, s.Cell.VecMul(frac[0]).ApproxEqual(s.Positions[0], 1e-12))
}

func TestRepeatSubsetDelete(t *testing.T) {
	unit, err := atoms.New([]int{6, 8}, []matrix.Vec3{{0, 0, 0}, {0.5, 0, 0}}, matrix.Diag(1, 1, 10), [3]bool{true, true, true})
	require.NoError(t, err)

	big, err := unit.Repeat([3]int{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 12, big.Len())
	assert.Equal(t, matrix.Vec3{2, 0, 0}, big.Cell[0])
	assert.Equal(t, matrix.Vec3{0, 3, 0}, big.Cell[1])
	assert.Equal(t, matrix.Vec3{1.5, 2, 0}, big.Positions[11])

	_, err = unit.Repeat([3]int{0, 1, 1})
	require.ErrorIs(t, err, atoms.ErrBadRepeat)

	sub, err := big.Subset([]int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8}, sub.Numbers)
	_, err = big.Subset([]int{42})
	require.ErrorIs(t, err, atoms.ErrIndexOutOfRange)

	del := big.Delete(0, 1)
	assert.Equal(t, 10, del.Len())
	assert.Equal(t, 12, big.Len(), "receiver must not change")
}

func TestTranslateAppend(t *testing.T) {
	w := water(t)
	moved := w.Translate(matrix.Vec3{1, 0, 0})
	assert.Equal(t, 0.0, w.Positions[0][0])
	assert.Equal(t, 1.0, moved.Positions[0][0])

	more := w.Append(6, matrix.Vec3{1, 1, 1})
	assert.Equal(t, 4, more.Len())
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, "OH2C", more.Formula())
}

func TestElements(t *testing.T) {
	assert.InDelta(t, 0.76, atoms.CovalentRadius(6), 1e-12)
	assert.InDelta(t, atoms.DefaultCovalentRadius, atoms.CovalentRadius(200), 1e-12)
	assert.InDelta(t, 15.999, atoms.Mass(8), 1e-12)
	assert.Equal(t, "Mo", atoms.Symbol(42))
	assert.Equal(t, "Rn", atoms.Symbol(86))

	z, err := atoms.Number("Au")
	require.NoError(t, err)
	assert.Equal(t, 79, z)
	_, err = atoms.Number("Zz")
	require.ErrorIs(t, err, atoms.ErrUnknownElement)

	assert.Equal(t, "MoS2", atoms.Formula([]int{42, 16, 16}))
	assert.Equal(t, "C12", atoms.Formula(make12(6)))
}

func make12(z int) []int {
	out := make([]int, 12)
	for i := range out {
		out[i] = z
	}

	return out
}
