// SPDX-License-Identifier: MIT

package periodicfinder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/region"
)

// Finder searches periodic regions with a fixed configuration. It holds no
// per-structure state and is safe for concurrent use.
type Finder struct {
	cfg config.Config
}

// New validates cfg and returns a Finder.
func New(cfg config.Config) (*Finder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Finder{cfg: cfg}, nil
}

// Config returns the configuration the finder was built with.
func (f *Finder) Config() config.Config { return f.cfg }

// FindRegion estimates the dimensionality of s and searches the periodic
// region around seed. See FindRegionDim.
func (f *Finder) FindRegion(s *atoms.Structure, seed int) (*region.Region, error) {
	if seed < 0 || seed >= s.Len() {
		return nil, fmt.Errorf("%s: %w: %d of %d", opFindRegion, ErrSeedOutOfRange, seed, s.Len())
	}
	dim, err := geometry.EstimateDimensionality(s, f.cfg.ClusterThreshold)
	if err != nil {
		return nil, finderErrorf(opFindRegion, err)
	}

	return f.FindRegionDim(s, seed, dim)
}

// FindRegionDim searches the periodic region around seed using a precomputed
// dimensionality result, so several seeds can share one estimate.
//
// Steps:
//  1. discover spans of the seed species and score them by chaining;
//  2. keep spans in the periodic subspace and pick the basis;
//  3. vote the motif from the atoms bonded to the seed;
//  4. grow cells breadth-first from the seed.
//
// Errors:
//   - ErrSeedOutOfRange for an invalid seed.
//   - ErrNoPeriodicRegion (wrapped) when the structure is not periodic, too few
//     spans repeat, every basis is degenerate or the basis exceeds
//     MaxCellSize^dim.
func (f *Finder) FindRegionDim(s *atoms.Structure, seed int, dim *geometry.DimensionalityResult) (*region.Region, error) {
	if seed < 0 || seed >= s.Len() {
		return nil, fmt.Errorf("%s: %w: %d of %d", opFindRegion, ErrSeedOutOfRange, seed, s.Len())
	}
	if dim == nil || dim.Dimension == 0 {
		return nil, noRegion(nil)
	}
	lat, err := geometry.LatticeOf(s)
	if err != nil {
		return nil, finderErrorf(opFindRegion, err)
	}
	p := probe{s: s, lat: lat}

	spans, err := discoverSpans(p, seed, f.cfg)
	if err != nil {
		return nil, finderErrorf(opFindRegion, err)
	}
	in, out := splitSpans(spans, dim.Directions, f.cfg)
	if len(in) < dim.Dimension {
		return nil, noRegion(fmt.Errorf("%d repeating spans for dimension %d", len(in), dim.Dimension))
	}
	vecs := make([]matrix.Vec3, len(in))
	metrics := make([]int, len(in))
	for i, sp := range in {
		vecs[i], metrics[i] = sp.Vector, sp.Metric
	}
	idx, err := FindBestBasis(vecs, metrics, dim.Dimension, f.cfg)
	if err != nil {
		return nil, noRegion(err)
	}

	reg := region.New(seed, s.Len())
	reg.Dimension = dim.Dimension
	reg.PeriodicAxes = dim.ConnectedAxes
	for _, i := range idx {
		reg.Basis = append(reg.Basis, in[i].Vector)
		reg.Metrics = append(reg.Metrics, in[i].Metric)
	}
	for _, sp := range out {
		reg.OutOfPlane = append(reg.OutOfPlane, sp.Vector)
	}
	if m := reg.Measure(); m > math.Pow(f.cfg.MaxCellSize, float64(dim.Dimension)) {
		return nil, noRegion(fmt.Errorf("basis measure %.3g exceeds the cell size limit", m))
	}

	full := reg.CompletedBasis()
	inv, err := matrix.Inverse(full)
	if err != nil {
		return nil, noRegion(err)
	}
	red := reducer{basis: full, inv: inv, dim: dim.Dimension}

	bonds, err := geometry.BondGraph(s, f.cfg.BondThreshold)
	if err != nil {
		return nil, finderErrorf(opFindRegion, err)
	}
	comp := bonds.ComponentOf(seed)
	maxLen := 0.0
	for _, b := range reg.Basis {
		maxLen = math.Max(maxLen, b.Norm())
	}
	tol := f.cfg.Tolerance(maxLen)
	reg.Sites = voteMotif(p, seed, comp, red, tol, f.cfg)

	solid, err := geometry.NewDecomposition(s, comp, geometry.DecompositionOptions{
		Threshold: f.cfg.DelaunayThreshold,
		MaxEdge:   f.cfg.DelaunayMaxEdge,
		PadAxes:   dim.ConnectedAxes,
	})
	if err != nil {
		// too few or coplanar atoms: empty cells are never accepted
		solid = nil
	}
	newGrower(p, reg, solid, tol, f.cfg).grow()

	return reg, nil
}
