// SPDX-License-Identifier: MIT
// Package config holds the immutable tolerance set passed into every
// classification call, its documented defaults, validation and loading from
// YAML or TOML files.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Documented defaults.
const (
	DefaultMaxAtoms                = 1000
	DefaultClusterThreshold        = 3.0
	DefaultMaxCellSize             = 6.0
	DefaultAngleTol                = 20.0
	DefaultDelaunayThreshold       = 0.8
	DefaultDelaunayMaxEdge         = 8.0
	DefaultBondThreshold           = 1.2
	DefaultPosTol                  = 0.25
	DefaultPosTolScaling           = 0.1
	DefaultCellSizeTol             = 0.1
	DefaultChemSimilarityThreshold = 0.4
	DefaultMaxSpanRepeats          = 3
	DefaultMinSpanMetric           = 2
	DefaultSiteCoverage            = 0.5
	DefaultMaxSeedTrials           = 3
	DefaultMinCellSize             = 2.0
)

// Config is passed by value; nothing in the engine keeps a reference to it.
type Config struct {
	// MaxAtoms is the size limit; larger structures are rejected.
	MaxAtoms int `json:"max_atoms" yaml:"max_atoms" toml:"max_atoms"`
	// ClusterThreshold is the largest surface gap d − (r_i + r_j) merged by the
	// dimensionality clustering (Å).
	ClusterThreshold float64 `json:"cluster_threshold" yaml:"cluster_threshold" toml:"cluster_threshold"`
	// MaxCellSize bounds the span search radius and the basis measure (Å).
	MaxCellSize float64 `json:"max_cell_size" yaml:"max_cell_size" toml:"max_cell_size"`
	// AngleTol is the smallest accepted angle between basis vectors (degrees).
	AngleTol float64 `json:"angle_tol" yaml:"angle_tol" toml:"angle_tol"`
	// DelaunayThreshold inflates the inside-test solid (Å).
	DelaunayThreshold float64 `json:"delaunay_threshold" yaml:"delaunay_threshold" toml:"delaunay_threshold"`
	// DelaunayMaxEdge drops tetrahedra with longer edges (Å).
	DelaunayMaxEdge float64 `json:"delaunay_max_edge" yaml:"delaunay_max_edge" toml:"delaunay_max_edge"`
	// BondThreshold scales covalent radii sums into a bond cutoff.
	BondThreshold float64 `json:"bond_threshold" yaml:"bond_threshold" toml:"bond_threshold"`
	// PosTol is the base positional tolerance (Å).
	PosTol float64 `json:"pos_tol" yaml:"pos_tol" toml:"pos_tol"`
	// PosTolScaling grows the tolerance per Å of vector length.
	PosTolScaling float64 `json:"pos_tol_scaling" yaml:"pos_tol_scaling" toml:"pos_tol_scaling"`
	// CellSizeTol is the relative tolerance under which cell measures tie.
	CellSizeTol float64 `json:"cell_size_tol" yaml:"cell_size_tol" toml:"cell_size_tol"`
	// ChemSimilarityThreshold separates adsorbates from surface motifs.
	ChemSimilarityThreshold float64 `json:"chem_similarity_threshold" yaml:"chem_similarity_threshold" toml:"chem_similarity_threshold"`
	// MaxSpanRepeats is the chain length probed per direction.
	MaxSpanRepeats int `json:"max_span_repeats" yaml:"max_span_repeats" toml:"max_span_repeats"`
	// MinSpanMetric is the minimum periodicity metric of a usable span.
	MinSpanMetric int `json:"min_span_metric" yaml:"min_span_metric" toml:"min_span_metric"`
	// SiteCoverage is the population fraction of the seed site a motif site needs.
	SiteCoverage float64 `json:"site_coverage" yaml:"site_coverage" toml:"site_coverage"`
	// MaxSeedTrials bounds the seeds tried per structure.
	MaxSeedTrials int `json:"max_seed_trials" yaml:"max_seed_trials" toml:"max_seed_trials"`
	// MinCellSize is the floor of minimized cell axes (Å).
	MinCellSize float64 `json:"min_cell_size" yaml:"min_cell_size" toml:"min_cell_size"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		MaxAtoms:                DefaultMaxAtoms,
		ClusterThreshold:        DefaultClusterThreshold,
		MaxCellSize:             DefaultMaxCellSize,
		AngleTol:                DefaultAngleTol,
		DelaunayThreshold:       DefaultDelaunayThreshold,
		DelaunayMaxEdge:         DefaultDelaunayMaxEdge,
		BondThreshold:           DefaultBondThreshold,
		PosTol:                  DefaultPosTol,
		PosTolScaling:           DefaultPosTolScaling,
		CellSizeTol:             DefaultCellSizeTol,
		ChemSimilarityThreshold: DefaultChemSimilarityThreshold,
		MaxSpanRepeats:          DefaultMaxSpanRepeats,
		MinSpanMetric:           DefaultMinSpanMetric,
		SiteCoverage:            DefaultSiteCoverage,
		MaxSeedTrials:           DefaultMaxSeedTrials,
		MinCellSize:             DefaultMinCellSize,
	}
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"cluster_threshold", c.ClusterThreshold},
		{"max_cell_size", c.MaxCellSize},
		{"delaunay_threshold", c.DelaunayThreshold},
		{"delaunay_max_edge", c.DelaunayMaxEdge},
		{"bond_threshold", c.BondThreshold},
		{"pos_tol", c.PosTol},
		{"min_cell_size", c.MinCellSize},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"pos_tol_scaling", c.PosTolScaling},
		{"cell_size_tol", c.CellSizeTol},
		{"chem_similarity_threshold", c.ChemSimilarityThreshold},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}
	switch {
	case c.MaxAtoms < 0:
		return fmt.Errorf("%w: max_atoms must be >= 0, got %d", ErrInvalidConfig, c.MaxAtoms)
	case !(c.AngleTol > 0 && c.AngleTol < 90):
		return fmt.Errorf("%w: angle_tol must be in (0, 90), got %g", ErrInvalidConfig, c.AngleTol)
	case !(c.SiteCoverage >= 0 && c.SiteCoverage <= 1):
		return fmt.Errorf("%w: site_coverage must be in [0, 1], got %g", ErrInvalidConfig, c.SiteCoverage)
	case c.MaxSpanRepeats < 1:
		return fmt.Errorf("%w: max_span_repeats must be >= 1, got %d", ErrInvalidConfig, c.MaxSpanRepeats)
	case c.MinSpanMetric < 1 || c.MinSpanMetric > 2*c.MaxSpanRepeats:
		return fmt.Errorf("%w: min_span_metric must be in [1, 2*max_span_repeats], got %d", ErrInvalidConfig, c.MinSpanMetric)
	case c.MaxSeedTrials < 1:
		return fmt.Errorf("%w: max_seed_trials must be >= 1, got %d", ErrInvalidConfig, c.MaxSeedTrials)
	}

	return nil
}

// Tolerance returns PosTol + PosTolScaling·length.
func (c Config) Tolerance(length float64) float64 {
	return c.PosTol + c.PosTolScaling*length
}
