// SPDX-License-Identifier: MIT
package delaunay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/delaunay"
	"github.com/katalvlaran/systax/matrix"
)

func cubeLattice(n int, a float64) []matrix.Vec3 {
	var ps []matrix.Vec3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				ps = append(ps, matrix.Vec3{float64(i) * a, float64(j) * a, float64(k) * a})
			}
		}
	}

	return ps
}

func totalVolume(tr *delaunay.Triangulation) float64 {
	var v float64
	for i := range tr.Tetrahedra {
		v += tr.Volume(i)
	}

	return v
}

func TestTriangulate_UnitCube(t *testing.T) {
	tr, err := delaunay.Triangulate(cubeLattice(2, 1))
	require.NoError(t, err)
	require.NotEmpty(t, tr.Tetrahedra)
	assert.InDelta(t, 1.0, totalVolume(tr), 1e-4, "tetrahedra tile the convex hull")
}

func TestTriangulate_Lattice(t *testing.T) {
	ps := cubeLattice(4, 2)
	tr, err := delaunay.Triangulate(ps)
	require.NoError(t, err)
	assert.InDelta(t, 216.0, totalVolume(tr), 1e-2)
	for _, tt := range tr.Tetrahedra {
		for _, v := range tt {
			assert.True(t, v >= 0 && v < len(ps))
		}
	}
}

func TestTriangulate_Errors(t *testing.T) {
	_, err := delaunay.Triangulate([]matrix.Vec3{{}, {1, 0, 0}, {0, 1, 0}})
	require.ErrorIs(t, err, delaunay.ErrTooFewPoints)

	plane := []matrix.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 3, 0}}
	_, err = delaunay.Triangulate(plane)
	require.ErrorIs(t, err, delaunay.ErrDegenerateInput)
}

func TestTriangulate_Deterministic(t *testing.T) {
	ps := cubeLattice(3, 1.5)
	a, err := delaunay.Triangulate(ps)
	require.NoError(t, err)
	b, err := delaunay.Triangulate(ps)
	require.NoError(t, err)
	assert.Equal(t, a.Tetrahedra, b.Tetrahedra)
}

func TestDistanceToTetrahedron(t *testing.T) {
	a, b, c, d := matrix.Vec3{0, 0, 0}, matrix.Vec3{1, 0, 0}, matrix.Vec3{0, 1, 0}, matrix.Vec3{0, 0, 1}

	assert.Equal(t, 0.0, delaunay.DistanceToTetrahedron(matrix.Vec3{0.1, 0.1, 0.1}, a, b, c, d))
	assert.InDelta(t, 0.5, delaunay.DistanceToTetrahedron(matrix.Vec3{0.2, 0.2, -0.5}, a, b, c, d), 1e-12)
	assert.InDelta(t, 1.0, delaunay.DistanceToTetrahedron(matrix.Vec3{-1, 0, 0}, a, b, c, d), 1e-12)

	// flat tetrahedron still measures distance to its faces
	flat := matrix.Vec3{1, 1, 0}
	assert.InDelta(t, 0.3, delaunay.DistanceToTetrahedron(matrix.Vec3{0.5, 0.5, 0.3}, a, b, c, flat), 1e-12)
}

func TestClosestPointOnTriangle(t *testing.T) {
	a, b, c := matrix.Vec3{0, 0, 0}, matrix.Vec3{2, 0, 0}, matrix.Vec3{0, 2, 0}
	assert.Equal(t, a, delaunay.ClosestPointOnTriangle(matrix.Vec3{-1, -1, 0}, a, b, c))
	assert.True(t, delaunay.ClosestPointOnTriangle(matrix.Vec3{1, -1, 3}, a, b, c).ApproxEqual(matrix.Vec3{1, 0, 0}, 1e-12))
	assert.True(t, delaunay.ClosestPointOnTriangle(matrix.Vec3{0.5, 0.5, 1}, a, b, c).ApproxEqual(matrix.Vec3{0.5, 0.5, 0}, 1e-12))
	assert.True(t, delaunay.ClosestPointOnTriangle(matrix.Vec3{2, 2, 0}, a, b, c).ApproxEqual(matrix.Vec3{1, 1, 0}, 1e-12))
}
