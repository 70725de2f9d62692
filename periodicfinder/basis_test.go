// SPDX-License-Identifier: MIT
package periodicfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/periodicfinder"
)

func TestFindBestBasis_Selection(t *testing.T) {
	cfg := config.Default()
	x, y, z := matrix.Vec3{1, 0, 0}, matrix.Vec3{0, 1, 0}, matrix.Vec3{0, 0, 1}

	tests := []struct {
		name    string
		spans   []matrix.Vec3
		metrics []int
		dim     int
		want    []int
	}{
		{"3D orthogonal wins equal volume", []matrix.Vec3{x, y, z, {0, 2, 1}}, []int{0, 0, 0, 0}, 3, []int{0, 1, 2}},
		{"3D metric beats orthogonality", []matrix.Vec3{x, y, z, {0, 2, 1}}, []int{2, 2, 1, 2}, 3, []int{0, 1, 3}},
		{"3D volume then orthogonality", []matrix.Vec3{x, y, z, {0, 0.5, 0.5}}, []int{0, 0, 0, 0}, 3, []int{0, 1, 3}},
		{"2D orthogonal wins equal area", []matrix.Vec3{x, y, {1, 1, 0}}, []int{0, 0, 0}, 2, []int{0, 1}},
		{"2D metric beats orthogonality", []matrix.Vec3{x, y, {1, 2, 0}}, []int{2, 1, 2}, 2, []int{0, 2}},
		{"2D area then orthogonality", []matrix.Vec3{x, y, {0, 0.5, 0}}, []int{0, 0, 0}, 2, []int{0, 2}},
		{"1D shortest", []matrix.Vec3{{2, 0, 0}, x, {3, 0, 0}}, []int{6, 6, 6}, 1, []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := periodicfinder.FindBestBasis(tc.spans, tc.metrics, tc.dim, cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindBestBasis_Degenerate(t *testing.T) {
	cfg := config.Default()

	// all collinear
	_, err := periodicfinder.FindBestBasis([]matrix.Vec3{{1, 0, 0}, {2, 0, 0}, {-1, 0, 0}}, []int{6, 6, 6}, 2, cfg)
	require.ErrorIs(t, err, periodicfinder.ErrDegenerateBasis)

	// 10° apart is below the angle tolerance
	_, err = periodicfinder.FindBestBasis([]matrix.Vec3{{1, 0, 0}, {0.985, 0.174, 0}}, []int{6, 6}, 2, cfg)
	require.ErrorIs(t, err, periodicfinder.ErrDegenerateBasis)

	_, err = periodicfinder.FindBestBasis([]matrix.Vec3{{1, 0, 0}}, []int{6, 6}, 1, cfg)
	require.ErrorIs(t, err, periodicfinder.ErrDegenerateBasis)

	_, err = periodicfinder.FindBestBasis(nil, nil, 4, cfg)
	require.ErrorIs(t, err, periodicfinder.ErrDegenerateBasis)
}
