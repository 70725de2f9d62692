// SPDX-License-Identifier: MIT
package systax_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax"
	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/builder"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/region"
)

func build(t *testing.T, cons builder.Constructor, opts ...builder.BuilderOption) *atoms.Structure {
	t.Helper()
	s, err := builder.Build(cons, opts...)
	require.NoError(t, err)

	return s
}

func water(t *testing.T) *atoms.Structure {
	t.Helper()
	s, err := atoms.New([]int{8, 1, 1},
		[]matrix.Vec3{{0, 0, 0}, {0.76, 0.59, 0}, {-0.76, 0.59, 0}},
		matrix.Mat3{}, [3]bool{})
	require.NoError(t, err)

	return s
}

func newClassifier(t *testing.T, opts ...systax.Option) *systax.Classifier {
	t.Helper()
	c, err := systax.New(config.Default(), opts...)
	require.NoError(t, err)

	return c
}

func TestClassify_Categories(t *testing.T) {
	single, err := atoms.New([]int{6}, []matrix.Vec3{{}}, matrix.Diag(7, 7, 7), [3]bool{true, true, true})
	require.NoError(t, err)

	cases := []struct {
		name string
		s    *atoms.Structure
		want systax.Category
		dim  int
	}{
		{"atom", single, systax.Atom, 0},
		{"molecule", water(t), systax.Molecule, 0},
		{"chain", build(t, builder.Chain(6, 1.3), builder.WithRepeat(10, 1, 1)), systax.Material1D, 1},
		{"graphene", build(t, builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1)), systax.Material2D, 2},
		{"mos2", build(t, builder.MX2(42, 16, builder.MoS2A, builder.MoS2Thickness), builder.WithRepeat(3, 3, 1)), systax.Material2D, 2},
		{"bcc slab", build(t, builder.BCC100(26, builder.FeA, 4), builder.WithRepeat(2, 2, 1), builder.WithFullPBC()), systax.Surface, 2},
		{"diamond", build(t, builder.Diamond(14, builder.SiA), builder.WithRepeat(2, 2, 2)), systax.Crystal, 3},
	}
	c := newClassifier(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := c.Classify(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Category)
			assert.Equal(t, tc.dim, res.Dimensionality)
			assert.NotEmpty(t, res.RunID)
			if tc.dim > 0 {
				require.NotNil(t, res.Report)
				require.NotNil(t, res.Region)
				assert.GreaterOrEqual(t, res.Seed, 0)
				assert.LessOrEqual(t, res.SeedsTried, config.DefaultMaxSeedTrials)
			} else {
				assert.Nil(t, res.Report)
				assert.Equal(t, -1, res.Seed)
			}
		})
	}
}

func TestClassify_MoleculeCellIsMinimized(t *testing.T) {
	res, err := newClassifier(t).Classify(water(t))
	require.NoError(t, err)
	require.NotNil(t, res.Minimized)
	for k := 0; k < 3; k++ {
		assert.InDelta(t, config.DefaultMinCellSize, res.Minimized.Cell[k].Norm(), 1e-9)
	}
	assert.Equal(t, [3]bool{}, res.Minimized.PBC)
}

func TestClassify_NoRegionIsUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.MaxCellSize = 1.0
	c, err := systax.New(cfg)
	require.NoError(t, err)

	res, err := c.Classify(build(t, builder.Chain(6, 1.3), builder.WithRepeat(10, 1, 1)))
	require.NoError(t, err)
	assert.Equal(t, systax.Unknown, res.Category)
	assert.Equal(t, 1, res.Dimensionality)
	assert.Equal(t, cfg.MaxSeedTrials, res.SeedsTried)
	assert.Nil(t, res.Report)
}

func TestClassify_Errors(t *testing.T) {
	c := newClassifier(t)
	_, err := c.Classify(nil)
	require.ErrorIs(t, err, systax.ErrNilStructure)

	cfg := config.Default()
	cfg.MaxAtoms = 10
	small, err := systax.New(cfg)
	require.NoError(t, err)
	_, err = small.Classify(build(t, builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1)))
	require.ErrorIs(t, err, atoms.ErrTooManyAtoms)

	cfg = config.Default()
	cfg.AngleTol = 95
	_, err = systax.New(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestClassify_SymmetryReceivesUnitCell(t *testing.T) {
	var got region.UnitCell
	sym := systax.SymmetryFunc(func(uc region.UnitCell) (any, error) {
		got = uc
		return "P6/mmm", nil
	})
	c := newClassifier(t, systax.WithSymmetry(sym))

	res, err := c.Classify(build(t, builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1)))
	require.NoError(t, err)
	assert.Equal(t, "P6/mmm", res.Symmetry)
	assert.Equal(t, []int{6, 6}, got.Numbers)
	assert.Equal(t, [3]bool{true, true, false}, got.PBC)
	require.NotNil(t, res.UnitCell)
	assert.Equal(t, got.Cell, res.UnitCell.Cell)

	boom := errors.New("no spglib")
	failing := newClassifier(t, systax.WithSymmetry(systax.SymmetryFunc(func(region.UnitCell) (any, error) {
		return nil, boom
	})))
	_, err = failing.Classify(build(t, builder.Graphene(builder.GrapheneA), builder.WithRepeat(3, 3, 1)))
	require.ErrorIs(t, err, boom)
}

func TestClassify_LogsRun(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	res, err := newClassifier(t, systax.WithLogger(log)).
		Classify(build(t, builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"dimensionality"`)
	assert.Contains(t, out, `"msg":"region found"`)
	assert.Contains(t, out, res.RunID)
}

func TestClassifyBatch_KeepsOrder(t *testing.T) {
	structures := []*atoms.Structure{
		build(t, builder.Diamond(14, builder.SiA), builder.WithRepeat(2, 2, 2)),
		water(t),
		build(t, builder.Graphene(builder.GrapheneA), builder.WithRepeat(4, 4, 1)),
		build(t, builder.Chain(6, 1.3), builder.WithRepeat(10, 1, 1)),
	}
	res, err := newClassifier(t).ClassifyBatch(context.Background(), structures, 2)
	require.NoError(t, err)
	require.Len(t, res, 4)
	want := []systax.Category{systax.Crystal, systax.Molecule, systax.Material2D, systax.Material1D}
	for i, r := range res {
		assert.Equal(t, want[i], r.Category, "structure %d", i)
	}
}

func TestClassifyBatch_FirstErrorWins(t *testing.T) {
	structures := []*atoms.Structure{water(t), nil}
	_, err := newClassifier(t).ClassifyBatch(context.Background(), structures, 1)
	require.ErrorIs(t, err, systax.ErrNilStructure)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newClassifier(t).ClassifyBatch(ctx, []*atoms.Structure{water(t)}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
