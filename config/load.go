// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// overlay mirrors Config with optional fields so that keys absent from a file
// keep their defaults.
type overlay struct {
	MaxAtoms                *int     `yaml:"max_atoms" toml:"max_atoms"`
	ClusterThreshold        *float64 `yaml:"cluster_threshold" toml:"cluster_threshold"`
	MaxCellSize             *float64 `yaml:"max_cell_size" toml:"max_cell_size"`
	AngleTol                *float64 `yaml:"angle_tol" toml:"angle_tol"`
	DelaunayThreshold       *float64 `yaml:"delaunay_threshold" toml:"delaunay_threshold"`
	DelaunayMaxEdge         *float64 `yaml:"delaunay_max_edge" toml:"delaunay_max_edge"`
	BondThreshold           *float64 `yaml:"bond_threshold" toml:"bond_threshold"`
	PosTol                  *float64 `yaml:"pos_tol" toml:"pos_tol"`
	PosTolScaling           *float64 `yaml:"pos_tol_scaling" toml:"pos_tol_scaling"`
	CellSizeTol             *float64 `yaml:"cell_size_tol" toml:"cell_size_tol"`
	ChemSimilarityThreshold *float64 `yaml:"chem_similarity_threshold" toml:"chem_similarity_threshold"`
	MaxSpanRepeats          *int     `yaml:"max_span_repeats" toml:"max_span_repeats"`
	MinSpanMetric           *int     `yaml:"min_span_metric" toml:"min_span_metric"`
	SiteCoverage            *float64 `yaml:"site_coverage" toml:"site_coverage"`
	MaxSeedTrials           *int     `yaml:"max_seed_trials" toml:"max_seed_trials"`
	MinCellSize             *float64 `yaml:"min_cell_size" toml:"min_cell_size"`
}

func (o overlay) apply(c *Config) {
	setInt(&c.MaxAtoms, o.MaxAtoms)
	setFloat(&c.ClusterThreshold, o.ClusterThreshold)
	setFloat(&c.MaxCellSize, o.MaxCellSize)
	setFloat(&c.AngleTol, o.AngleTol)
	setFloat(&c.DelaunayThreshold, o.DelaunayThreshold)
	setFloat(&c.DelaunayMaxEdge, o.DelaunayMaxEdge)
	setFloat(&c.BondThreshold, o.BondThreshold)
	setFloat(&c.PosTol, o.PosTol)
	setFloat(&c.PosTolScaling, o.PosTolScaling)
	setFloat(&c.CellSizeTol, o.CellSizeTol)
	setFloat(&c.ChemSimilarityThreshold, o.ChemSimilarityThreshold)
	setInt(&c.MaxSpanRepeats, o.MaxSpanRepeats)
	setInt(&c.MinSpanMetric, o.MinSpanMetric)
	setFloat(&c.SiteCoverage, o.SiteCoverage)
	setInt(&c.MaxSeedTrials, o.MaxSeedTrials)
	setFloat(&c.MinCellSize, o.MinCellSize)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// FormatOf picks the syntax from a file extension (.yaml, .yml, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, filepath.Ext(path))
	}
}

// Load reads path on top of Default() and validates the result.
func Load(path string) (Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data), f)
}

// Decode reads one document in the given format on top of Default().
// Unknown keys are rejected.
func Decode(r io.Reader, f Format) (Config, error) {
	var o overlay
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil && err != io.EOF {
			return Config{}, fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r).Strict(true)
		if err := dec.Decode(&o); err != nil {
			return Config{}, fmt.Errorf("%w: toml: %v", ErrInvalidConfig, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, f)
	}
	c := Default()
	o.apply(&c)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Encode writes c in the given format.
func Encode(w io.Writer, c Config, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}

		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Order(toml.OrderPreserve).Encode(c)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, f)
	}
}
