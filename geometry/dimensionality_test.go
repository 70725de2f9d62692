// SPDX-License-Identifier: MIT
package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/matrix"
)

func graphene(t *testing.T, vacuum float64) *atoms.Structure {
	t.Helper()
	cell := matrix.Mat3{{2.46, 0, 0}, {-1.23, 2.130422, 0}, {0, 0, vacuum}}
	frac := []matrix.Vec3{{0, 0, 0.5}, {1.0 / 3, 2.0 / 3, 0.5}}

	return mustStructure(t, []int{6, 6}, geometry.ToCartesian(cell, allPBC, frac, false), cell, allPBC)
}

func TestEstimateDimensionality(t *testing.T) {
	cases := []struct {
		name string
		s    *atoms.Structure
		want int
	}{
		{"molecule-no-pbc", water(t), 0},
		{"molecule-in-box", mustStructure(t,
			[]int{8, 1, 1},
			[]matrix.Vec3{{5, 5, 5.119262}, {5, 5.763239, 4.522953}, {5, 4.236761, 4.522953}},
			matrix.Diag(10, 10, 10), allPBC), 0},
		{"chain", mustStructure(t, []int{6}, []matrix.Vec3{{0, 7.5, 7.5}}, matrix.Diag(1.5, 15, 15), allPBC), 1},
		{"graphene", graphene(t, 15), 2},
		{"bcc", mustStructure(t, []int{26, 26}, []matrix.Vec3{{0, 0, 0}, {1.435, 1.435, 1.435}}, matrix.Diag(2.87, 2.87, 2.87), allPBC), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := geometry.EstimateDimensionality(tc.s, 3.0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Dimension)
			assert.Len(t, res.Directions, tc.want)
		})
	}
}

func TestEstimateDimensionality_NoPBCIsZero(t *testing.T) {
	s := graphene(t, 15)
	s.PBC = [3]bool{}
	res, err := geometry.EstimateDimensionality(s, 3.0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Dimension)
	assert.Empty(t, res.Translations)
}

func TestEstimateDimensionality_Supercell(t *testing.T) {
	big, err := graphene(t, 20).Repeat([3]int{3, 3, 1})
	require.NoError(t, err)
	res, err := geometry.EstimateDimensionality(big, 3.0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Dimension)
	assert.Equal(t, [3]bool{true, true, false}, res.ConnectedAxes)
	for _, d := range res.Directions {
		assert.InDelta(t, 0, d[2], 1e-9, "directions stay in plane")
	}
}

func TestPeriodicity_BondRule(t *testing.T) {
	// two well separated molecules: neither wraps onto itself
	s := mustStructure(t, []int{6, 8, 6, 8},
		[]matrix.Vec3{{1, 1, 1}, {2.13, 1, 1}, {5, 5, 5}, {6.13, 5, 5}},
		matrix.Diag(8, 8, 8), allPBC)
	res, err := geometry.Periodicity(s, []int{0, 1}, geometry.BondLink(1.2), 4)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Dimension)
}

func TestOrthonormalize(t *testing.T) {
	out := geometry.Orthonormalize([]matrix.Vec3{{2, 0, 0}, {4, 0, 0}, {1, 1, 0}, {0, 3, 0}}, 1e-9)
	require.Len(t, out, 2)
	assert.True(t, out[0].ApproxEqual(matrix.Vec3{1, 0, 0}, 1e-12))
	assert.True(t, out[1].ApproxEqual(matrix.Vec3{0, 1, 0}, 1e-12))
}

func TestDecomposition_Bulk(t *testing.T) {
	var pos []matrix.Vec3
	var nums []int
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				pos = append(pos, matrix.Vec3{float64(i) * 2, float64(j) * 2, float64(k) * 2})
				nums = append(nums, 29)
			}
		}
	}
	s := mustStructure(t, nums, pos, matrix.Diag(30, 30, 30), [3]bool{})
	d, err := geometry.NewDecomposition(s, nil, geometry.DecompositionOptions{Threshold: 0.5, MaxEdge: 8})
	require.NoError(t, err)
	assert.InDelta(t, 216, d.Volume(), 0.1)

	assert.True(t, d.Contains(matrix.Vec3{3, 3, 3}), "interior gap")
	assert.True(t, d.Contains(matrix.Vec3{3, 3, 6.3}), "within threshold of a face")
	assert.False(t, d.Contains(matrix.Vec3{3, 3, 8}), "above the surface")
}

func TestDecomposition_FlatSheetAndVacuum(t *testing.T) {
	big, err := graphene(t, 20).Repeat([3]int{4, 4, 1})
	require.NoError(t, err)
	d, err := geometry.NewDecomposition(big, nil, geometry.DecompositionOptions{
		Threshold: 0.8, MaxEdge: 8, PadAxes: [3]bool{true, true, false},
	})
	require.NoError(t, err)
	require.Positive(t, d.Len())

	// hexagon centre of the sheet, then the same point moved out of the cell
	centre := big.Positions[0].Add(matrix.Vec3{1.23, 0.710141, 0})
	assert.True(t, d.Contains(centre))
	assert.True(t, d.Contains(centre.Add(big.Cell[0]).Add(big.Cell[1].Scale(-2))))
	assert.False(t, d.Contains(centre.Add(matrix.Vec3{0, 0, 3})))
}

func TestDecomposition_SingleAtom(t *testing.T) {
	s := mustStructure(t, []int{1}, []matrix.Vec3{{1, 1, 1}}, matrix.Diag(5, 5, 5), [3]bool{})
	d, err := geometry.NewDecomposition(s, nil, geometry.DecompositionOptions{Threshold: 0.8, MaxEdge: 8})
	require.NoError(t, err)
	assert.True(t, d.Contains(matrix.Vec3{1, 1, 1.5}))
	assert.False(t, d.Contains(matrix.Vec3{1, 1, 3}))

	_, err = geometry.NewDecomposition(s, []int{}, geometry.DecompositionOptions{Threshold: 0.8})
	require.ErrorIs(t, err, geometry.ErrEmptyStructure)
}
