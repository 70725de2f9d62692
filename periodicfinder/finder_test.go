// SPDX-License-Identifier: MIT
package periodicfinder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/builder"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/periodicfinder"
)

func newFinder(t *testing.T) *periodicfinder.Finder {
	t.Helper()
	f, err := periodicfinder.New(config.Default())
	require.NoError(t, err)

	return f
}

func TestFindRegion_PristineGraphene(t *testing.T) {
	s, err := builder.Build(builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1))
	require.NoError(t, err)

	r, err := newFinder(t).FindRegion(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Dimension)
	assert.InDelta(t, builder.GrapheneA*builder.GrapheneA*math.Sqrt(3)/2, r.Measure(), 1e-6)
	require.Len(t, r.Sites, 2)
	assert.Equal(t, 6, r.Sites[0].Species)
	assert.InDelta(t, builder.GrapheneA/math.Sqrt(3), r.Sites[1].Offset.Norm(), 0.05)
	assert.Len(t, r.Cells, 16)
	assert.Empty(t, r.Vacancies)
	assert.Empty(t, r.Unassigned())
	assert.Empty(t, r.OutOfPlane)
	assert.Equal(t, [3]bool{true, true, false}, r.PeriodicAxes)
	for _, m := range r.Metrics {
		assert.GreaterOrEqual(t, m, config.DefaultMinSpanMetric)
	}
	assert.Equal(t, 0, r.Assignments[0].Site)
	assert.Equal(t, 0, r.Assignments[0].Cell)
}

func TestFindRegion_GrapheneVacancy(t *testing.T) {
	s, err := builder.Build(builder.Graphene(builder.GrapheneA), builder.WithRepeat(5, 5, 1))
	require.NoError(t, err)
	removed := s.Positions[25]
	s = s.Delete(25)

	r, err := newFinder(t).FindRegion(s, 0)
	require.NoError(t, err)
	assert.Len(t, r.Cells, 25)
	require.Len(t, r.Vacancies, 1)
	v := r.Vacancies[0]
	assert.Equal(t, 6, v.Species)
	lat, err := geometry.LatticeOf(s)
	require.NoError(t, err)
	d, _ := lat.MinimumImage(v.Position.Sub(removed))
	assert.Less(t, d.Norm(), 0.1)
	assert.Empty(t, r.Unassigned())
}

func TestFindRegion_ShakenGrapheneHasNoDefects(t *testing.T) {
	f := newFinder(t)
	for trial := 0; trial < 15; trial++ {
		s, err := builder.Build(builder.Graphene(builder.GrapheneA),
			builder.WithRepeat(5, 5, 1), builder.WithShake(0.1), builder.WithSeed(int64(7+trial)))
		require.NoError(t, err)

		seed := (3 * trial) % s.Len()
		r, err := f.FindRegion(s, seed)
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, 2, r.Dimension, "trial %d", trial)
		assert.Len(t, r.Sites, 2, "trial %d", trial)
		assert.Len(t, r.Cells, 25, "trial %d", trial)
		assert.Empty(t, r.Vacancies, "trial %d", trial)
		assert.Empty(t, r.Unassigned(), "trial %d", trial)
	}
}

func TestFindRegion_RattledDiamondHasNoDefects(t *testing.T) {
	f := newFinder(t)
	for seed := int64(1); seed <= 5; seed++ {
		s, err := builder.Build(builder.Diamond(14, builder.SiA),
			builder.WithRepeat(2, 2, 2), builder.WithRattle(0.05), builder.WithSeed(seed))
		require.NoError(t, err)

		r, err := f.FindRegion(s, 0)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 3, r.Dimension, "seed %d", seed)
		assert.Len(t, r.Sites, 2, "seed %d", seed)
		assert.Len(t, r.Cells, 32, "seed %d", seed)
		assert.Empty(t, r.Vacancies, "seed %d", seed)
		assert.Empty(t, r.Unassigned(), "seed %d", seed)
	}
}

func TestFindRegion_SiteOffsetsAreRelativeToSeedSiteMean(t *testing.T) {
	s, err := builder.Build(builder.Graphene(builder.GrapheneA),
		builder.WithRepeat(5, 5, 1), builder.WithShake(0.1), builder.WithSeed(7))
	require.NoError(t, err)

	r, err := newFinder(t).FindRegion(s, 0)
	require.NoError(t, err)
	require.Len(t, r.Sites, 2)
	assert.Equal(t, matrix.Vec3{}, r.Sites[0].Offset)
	assert.InDelta(t, builder.GrapheneA/math.Sqrt(3), r.Sites[1].Offset.Norm(), 0.05)
	assert.Equal(t, 25, r.Sites[0].Population)
	assert.Equal(t, 25, r.Sites[1].Population)
	for _, b := range r.Basis {
		assert.InDelta(t, builder.GrapheneA, b.Norm(), 0.05)
	}
}

func TestFindRegion_DiamondBulk(t *testing.T) {
	s, err := builder.Build(builder.Diamond(14, builder.SiA), builder.WithRepeat(2, 2, 2))
	require.NoError(t, err)

	r, err := newFinder(t).FindRegion(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Dimension)
	assert.InDelta(t, math.Pow(builder.SiA, 3)/4, r.Measure(), 1e-6)
	assert.Len(t, r.Sites, 2)
	assert.Len(t, r.Cells, 32)
	assert.Empty(t, r.Unassigned())
}

func TestFindRegion_SlabHasOutOfPlaneSpans(t *testing.T) {
	s, err := builder.Build(builder.BCC100(26, builder.FeA, 4),
		builder.WithRepeat(2, 2, 1), builder.WithFullPBC())
	require.NoError(t, err)

	r, err := newFinder(t).FindRegion(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Dimension)
	assert.NotEmpty(t, r.OutOfPlane)
	assert.Len(t, r.Sites, 4)
	assert.Len(t, r.Cells, 4)
	assert.Empty(t, r.Unassigned())
}

func TestFindRegion_Chain(t *testing.T) {
	s, err := builder.Build(builder.Chain(6, 1.3), builder.WithRepeat(10, 1, 1))
	require.NoError(t, err)

	r, err := newFinder(t).FindRegion(s, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Dimension)
	assert.InDelta(t, 1.3, r.Measure(), 1e-9)
	assert.Len(t, r.Cells, 10)
}

func TestFindRegion_NoRegion(t *testing.T) {
	f := newFinder(t)

	mol, err := atoms.New([]int{8, 1, 1},
		[]matrix.Vec3{{0, 0, 0}, {0.76, 0.59, 0}, {-0.76, 0.59, 0}},
		matrix.Mat3{}, [3]bool{})
	require.NoError(t, err)
	_, err = f.FindRegion(mol, 0)
	require.ErrorIs(t, err, periodicfinder.ErrNoPeriodicRegion)

	_, err = f.FindRegion(mol, 7)
	require.ErrorIs(t, err, periodicfinder.ErrSeedOutOfRange)

	// isolated atoms in a cell larger than MaxCellSize
	big, err := atoms.New([]int{6}, []matrix.Vec3{{}}, matrix.Diag(7, 7, 7), [3]bool{true, true, true})
	require.NoError(t, err)
	_, err = f.FindRegion(big, 0)
	require.ErrorIs(t, err, periodicfinder.ErrNoPeriodicRegion)
}

func TestFindRegionDim_SharedEstimateIsDeterministic(t *testing.T) {
	s, err := builder.Build(builder.MX2(42, 16, builder.MoS2A, builder.MoS2Thickness), builder.WithRepeat(3, 3, 1))
	require.NoError(t, err)
	dim, err := geometry.EstimateDimensionality(s, config.DefaultClusterThreshold)
	require.NoError(t, err)

	f := newFinder(t)
	a, err := f.FindRegionDim(s, 0, dim)
	require.NoError(t, err)
	b, err := f.FindRegionDim(s, 0, dim)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a.Sites, 3)
	assert.Len(t, a.Cells, 9)
	assert.Equal(t, 42, a.Sites[0].Species)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	c := config.Default()
	c.PosTol = 0
	_, err := periodicfinder.New(c)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
