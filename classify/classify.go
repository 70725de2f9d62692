// SPDX-License-Identifier: MIT

package classify

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/systax/atoms"
	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/connectivity"
	"github.com/katalvlaran/systax/geometry"
	"github.com/katalvlaran/systax/region"
)

// ErrRegionMismatch is returned when the region was grown on a structure of
// a different size.
var ErrRegionMismatch = errors.New("classify: region does not match structure")

const opClassify = "Classify"

// Report is the outcome of labelling a structure against a region.
type Report struct {
	// Categories[i] is the label of atom i.
	Categories    []region.Category           `json:"categories" yaml:"categories"`
	BasisIndices  []int                       `json:"basis_indices" yaml:"basis_indices"`
	Vacancies     []region.VacancyRecord      `json:"vacancies" yaml:"vacancies"`
	Substitutions []region.SubstitutionRecord `json:"substitutions" yaml:"substitutions"`
	Interstitials []int                       `json:"interstitials" yaml:"interstitials"`
	Adsorbates    []int                       `json:"adsorbates" yaml:"adsorbates"`
	// AdsorbateGroups holds one bonded component per adsorbate.
	AdsorbateGroups [][]int `json:"adsorbate_groups" yaml:"adsorbate_groups"`
	Unknowns        []int   `json:"unknowns" yaml:"unknowns"`
	Outliers        []int   `json:"outliers" yaml:"outliers"`
	// PeriodicSubstructures lists outside components that repeat in two or
	// more directions on their own, such as a second stacked sheet.
	PeriodicSubstructures [][]int `json:"periodic_substructures" yaml:"periodic_substructures"`
}

// Classify labels every atom of s against r and stores the labels in
// r.Categories as well.
//
// Steps:
//  1. lattice atoms: BasisMember, or Substitution when the species differs
//     from the site's majority species;
//  2. vacancy sites inside the solid of the lattice atoms become records;
//  3. unclaimed atoms inside that solid are Interstitial;
//  4. the rest is split into bonded components: periodic in ≥ 2 directions →
//     Outlier; chemically unlike the lattice and smaller than it → Adsorbate;
//     otherwise Unknown.
//
// Errors:
//   - ErrRegionMismatch when r was not grown on a structure of this size.
func Classify(s *atoms.Structure, r *region.Region, cfg config.Config) (*Report, error) {
	if len(r.Assignments) != s.Len() {
		return nil, fmt.Errorf("%s: %w: %d atoms, %d assignments", opClassify, ErrRegionMismatch, s.Len(), len(r.Assignments))
	}
	bonds, err := geometry.BondGraph(s, cfg.BondThreshold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClassify, err)
	}

	rep := &Report{Categories: make([]region.Category, s.Len())}
	lattice := r.LatticeIndices()
	for _, i := range lattice {
		want := r.ExpectedSpecies(i)
		if s.Numbers[i] != want {
			rep.Categories[i] = region.Substitution
			rep.Substitutions = append(rep.Substitutions, region.SubstitutionRecord{
				Index: i, Expected: want, Found: s.Numbers[i],
			})
			continue
		}
		rep.Categories[i] = region.BasisMember
		rep.BasisIndices = append(rep.BasisIndices, i)
	}

	var solid *geometry.Decomposition
	if len(lattice) > 0 {
		solid, err = geometry.NewDecomposition(s, lattice, geometry.DecompositionOptions{
			Threshold: cfg.DelaunayThreshold,
			MaxEdge:   cfg.DelaunayMaxEdge,
			PadAxes:   r.PeriodicAxes,
		})
		if err != nil {
			solid = nil
		}
	}
	inside := func(i int) bool { return solid != nil && solid.Contains(s.Positions[i]) }

	for _, v := range r.Vacancies {
		if solid != nil && solid.Contains(v.Position) {
			rep.Vacancies = append(rep.Vacancies, region.VacancyRecord{Species: v.Species, Position: v.Position})
		}
	}

	outside := make([]bool, s.Len())
	var rest []int
	for _, i := range r.Unassigned() {
		if inside(i) {
			rep.Categories[i] = region.Interstitial
			rep.Interstitials = append(rep.Interstitials, i)
			continue
		}
		outside[i] = true
		rest = append(rest, i)
	}

	for _, comp := range components(bonds, rest, outside) {
		switch {
		case isPeriodic(s, comp, cfg):
			mark(rep.Categories, comp, region.Outlier)
			rep.Outliers = append(rep.Outliers, comp...)
			rep.PeriodicSubstructures = append(rep.PeriodicSubstructures, comp)
		case len(comp) < len(lattice) &&
			componentSimilarity(bonds, s.Numbers, comp, lattice) < cfg.ChemSimilarityThreshold:
			mark(rep.Categories, comp, region.Adsorbate)
			rep.Adsorbates = append(rep.Adsorbates, comp...)
			rep.AdsorbateGroups = append(rep.AdsorbateGroups, comp)
		default:
			mark(rep.Categories, comp, region.Unknown)
			rep.Unknowns = append(rep.Unknowns, comp...)
		}
	}
	sort.Ints(rep.Adsorbates)
	sort.Ints(rep.Unknowns)
	sort.Ints(rep.Outliers)

	copy(r.Categories, rep.Categories)

	return rep, nil
}

// components returns the bonded components among the atoms flagged in
// allowed, seeded in ascending index order; members keep BFS order.
func components(g *connectivity.Graph, atomsIn []int, allowed []bool) [][]int {
	seen := make([]bool, g.Order())
	var out [][]int
	for _, start := range atomsIn {
		if seen[start] {
			continue
		}
		res, err := g.BFS(start, connectivity.WithFilterNeighbor(func(_, nb int) bool {
			return allowed[nb]
		}))
		if err != nil {
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}

// isPeriodic reports whether comp bonds to its own periodic copies in two or
// more independent directions.
func isPeriodic(s *atoms.Structure, comp []int, cfg config.Config) bool {
	if s.PeriodicCount() < 2 {
		return false
	}
	reach := 0.0
	for _, i := range comp {
		reach = math.Max(reach, atoms.CovalentRadius(s.Numbers[i]))
	}
	res, err := geometry.Periodicity(s, comp, geometry.BondLink(cfg.BondThreshold), 2*reach*cfg.BondThreshold)
	if err != nil {
		return false
	}

	return res.Dimension >= 2
}

func mark(cats []region.Category, idx []int, c region.Category) {
	for _, i := range idx {
		cats[i] = c
	}
}
