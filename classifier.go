// SPDX-License-Identifier: MIT

package systax

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/classify"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/periodicfinder"
	"github.com/katalvlaran/systax/region"
)

// ErrNilStructure is returned when Classify receives a nil structure.
var ErrNilStructure = errors.New("systax: nil structure")

const (
	opClassify = "Classify"
	opBatch    = "ClassifyBatch"
)

// Category is the final label of a structure.
type Category string

const (
	Atom       Category = "Atom"
	Molecule   Category = "Molecule"
	Material1D Category = "Material1D"
	Material2D Category = "Material2D"
	Surface    Category = "Surface"
	Crystal    Category = "Crystal"
	Unknown    Category = "Unknown"
)

// Classification is the outcome of Classifier.Classify.
type Classification struct {
	RunID          string   `json:"run_id" yaml:"run_id"`
	Category       Category `json:"category" yaml:"category"`
	Dimensionality int      `json:"dimensionality" yaml:"dimensionality"`
	ConnectedAxes  [3]bool  `json:"connected_axes" yaml:"connected_axes"`
	// Seed is the atom the periodic region grew from, or -1.
	Seed int `json:"seed" yaml:"seed"`
	// SeedsTried counts the region searches made.
	SeedsTried int `json:"seeds_tried" yaml:"seeds_tried"`

	Report   *classify.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Symmetry any              `json:"symmetry,omitempty" yaml:"symmetry,omitempty"`

	// Region is the grown periodic region of periodic categories.
	Region *region.Region `json:"-" yaml:"-"`
	// UnitCell is the region's unit cell, also handed to the symmetry analyzer.
	UnitCell *region.UnitCell `json:"-" yaml:"-"`
	// Minimized is the molecule with every axis shrunk to its extent.
	Minimized *atoms.Structure `json:"-" yaml:"-"`
}

// Classifier runs the full classification of structures with one
// configuration. It is safe for concurrent use when its SymmetryAnalyzer is.
type Classifier struct {
	cfg      config.Config
	finder   *periodicfinder.Finder
	log      *slog.Logger
	symmetry SymmetryAnalyzer
}

// New validates cfg and returns a Classifier.
func New(cfg config.Config, opts ...Option) (*Classifier, error) {
	finder, err := periodicfinder.New(cfg)
	if err != nil {
		return nil, err
	}
	c := &Classifier{
		cfg:    cfg,
		finder: finder,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns the configuration of c.
func (c *Classifier) Config() config.Config { return c.cfg }

// Classify labels s.
//
// Steps:
//  1. reject structures above MaxAtoms;
//  2. estimate the dimensionality;
//  3. 0D: one atom is an Atom, anything else a Molecule;
//  4. otherwise try up to MaxSeedTrials seeds, nearest to the center of mass
//     first, until a periodic region is found, then label every atom
//     against it;
//  5. no region from any seed leaves the category Unknown.
//
// Errors:
//   - ErrNilStructure, atoms.ErrTooManyAtoms.
//   - Any geometry or symmetry error; ErrNoPeriodicRegion is never returned.
func (c *Classifier) Classify(s *atoms.Structure) (*Classification, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", opClassify, ErrNilStructure)
	}
	if err := s.CheckSize(c.cfg.MaxAtoms); err != nil {
		return nil, fmt.Errorf("%s: %w", opClassify, err)
	}
	out := &Classification{RunID: uuid.NewString(), Category: Unknown, Seed: -1}
	log := c.log.With("run", out.RunID, "atoms", s.Len())

	dim, err := geometry.EstimateDimensionality(s, c.cfg.ClusterThreshold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClassify, err)
	}
	out.Dimensionality = dim.Dimension
	out.ConnectedAxes = dim.ConnectedAxes
	log.Debug("dimensionality", "dimension", dim.Dimension, "axes", dim.ConnectedAxes)

	if dim.Dimension == 0 {
		c.finite(s, out)
		log.Debug("finite structure", "category", out.Category)
		return out, nil
	}

	seeds, err := c.seeds(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClassify, err)
	}
	for _, seed := range seeds {
		out.SeedsTried++
		reg, err := c.finder.FindRegionDim(s, seed, dim)
		if errors.Is(err, periodicfinder.ErrNoPeriodicRegion) {
			log.Debug("no periodic region", "seed", seed, "reason", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opClassify, err)
		}
		log.Debug("region found", "seed", seed, "basis", reg.Basis, "metrics", reg.Metrics,
			"sites", len(reg.Sites), "cells", len(reg.Cells))

		rep, err := classify.Classify(s, reg, c.cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opClassify, err)
		}
		out.Seed = seed
		out.Region = reg
		out.Report = rep
		out.Category = periodicCategory(reg)
		uc := reg.UnitCell()
		out.UnitCell = &uc
		if c.symmetry != nil {
			sym, err := c.symmetry.Analyze(uc)
			if err != nil {
				return nil, fmt.Errorf("%s: symmetry: %w", opClassify, err)
			}
			out.Symmetry = sym
		}
		log.Debug("classified", "category", out.Category,
			"vacancies", len(rep.Vacancies), "substitutions", len(rep.Substitutions),
			"interstitials", len(rep.Interstitials), "adsorbates", len(rep.Adsorbates),
			"unknowns", len(rep.Unknowns), "outliers", len(rep.Outliers))

		return out, nil
	}
	log.Debug("no seed produced a region", "tried", out.SeedsTried)

	return out, nil
}

// finite labels a 0-dimensional structure.
func (c *Classifier) finite(s *atoms.Structure, out *Classification) {
	switch s.Len() {
	case 0:
		return
	case 1:
		out.Category = Atom
		return
	}
	out.Category = Molecule
	m := s
	for k := 0; k < 3; k++ {
		// skewed cells cannot be minimized along k; keep that axis
		if next, err := geometry.MinimizedCell(m, k, c.cfg.MinCellSize); err == nil {
			m = next
		}
	}
	out.Minimized = m
}

// seeds returns up to MaxSeedTrials atom indices ordered by their
// minimum-image distance to the center of mass, ties by index.
func (c *Classifier) seeds(s *atoms.Structure) ([]int, error) {
	com, err := geometry.CenterOfMass(s)
	if err != nil {
		return nil, err
	}
	lat, err := geometry.LatticeOf(s)
	if err != nil {
		return nil, err
	}
	dist := make([]float64, s.Len())
	idx := make([]int, s.Len())
	for i, p := range s.Positions {
		d, _ := lat.MinimumImage(p.Sub(com))
		dist[i] = d.Norm()
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })
	if len(idx) > c.cfg.MaxSeedTrials {
		idx = idx[:c.cfg.MaxSeedTrials]
	}

	return idx, nil
}

// periodicCategory maps a region to its category. A 2D region whose atoms
// also repeat out of plane is the surface of a bulk.
func periodicCategory(r *region.Region) Category {
	switch r.Dimension {
	case 1:
		return Material1D
	case 2:
		if len(r.OutOfPlane) > 0 {
			return Surface
		}
		return Material2D
	case 3:
		return Crystal
	default:
		return Unknown
	}
}
