// SPDX-License-Identifier: MIT
// Package region defines the output of the periodic finder: the discovered
// basis, the motif sites of one unit cell, every grown cell with its site
// occupation, and the per-atom category assigned by the classifier.
package region

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systax/matrix"
)

// Category is the closed set of labels an atom (or lattice site) can carry.
type Category int

const (
	// Unassigned marks an atom not yet labelled by the classifier.
	Unassigned Category = iota
	BasisMember
	Vacancy
	Substitution
	Interstitial
	Adsorbate
	Unknown
	Outlier
)

var categoryNames = [...]string{
	Unassigned:   "unassigned",
	BasisMember:  "basis_member",
	Vacancy:      "vacancy",
	Substitution: "substitution",
	Interstitial: "interstitial",
	Adsorbate:    "adsorbate",
	Unknown:      "unknown",
	Outlier:      "outlier",
}

// String returns the snake_case name of c.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	for i, n := range categoryNames {
		if n == string(b) {
			*c = Category(i)
			return nil
		}
	}

	return fmt.Errorf("region: unknown category %q", string(b))
}

// Site is one atom position of the motif, relative to the cell anchor.
type Site struct {
	Offset     matrix.Vec3 `json:"offset" yaml:"offset"`
	Species    int         `json:"species" yaml:"species"`
	Population int         `json:"population" yaml:"population"`
}

// Cell is one grown unit cell.
type Cell struct {
	// Index is the integer lattice coordinate relative to the seed cell.
	Index [3]int `json:"index" yaml:"index"`
	// Anchor is the position of the seed-equivalent point of this cell.
	Anchor matrix.Vec3 `json:"anchor" yaml:"anchor"`
	// Atoms[s] is the atom occupying site s, or -1 when vacant.
	Atoms []int `json:"atoms" yaml:"atoms"`
}

// SiteMatch locates an atom in the grown region.
type SiteMatch struct {
	Cell int `json:"cell" yaml:"cell"`
	Site int `json:"site" yaml:"site"`
}

// VacancySite is a lattice site with no atom.
type VacancySite struct {
	Cell     int         `json:"cell" yaml:"cell"`
	Site     int         `json:"site" yaml:"site"`
	Species  int         `json:"species" yaml:"species"`
	Position matrix.Vec3 `json:"position" yaml:"position"`
}

// VacancyRecord reports a missing lattice atom.
type VacancyRecord struct {
	Species  int         `json:"species" yaml:"species"`
	Position matrix.Vec3 `json:"position" yaml:"position"`
}

// SubstitutionRecord reports a lattice site occupied by the wrong species.
type SubstitutionRecord struct {
	Index    int `json:"index" yaml:"index"`
	Expected int `json:"expected" yaml:"expected"`
	Found    int `json:"found" yaml:"found"`
}

// Region is a discovered periodic unit plus the atom assignment of a structure.
type Region struct {
	// Seed is the atom the search started from; it always occupies site 0 of cell 0.
	Seed int
	// Dimension is the number of basis vectors (1..3).
	Dimension int
	// Basis holds the chosen lattice vectors.
	Basis []matrix.Vec3
	// Metrics holds the periodicity metric of each basis vector.
	Metrics []int
	// OutOfPlane lists repeat vectors found outside the basis subspace.
	OutOfPlane []matrix.Vec3
	// PeriodicAxes are the cell axes along which the structure wraps onto itself.
	PeriodicAxes [3]bool

	Sites     []Site
	Cells     []Cell
	Vacancies []VacancySite

	// Assignments[i] locates atom i, or has Cell == -1 when unclaimed.
	Assignments []SiteMatch
	// Categories[i] is filled by the classifier.
	Categories []Category
}

// New returns an empty region for n atoms.
func New(seed, n int) *Region {
	r := &Region{
		Seed:        seed,
		Assignments: make([]SiteMatch, n),
		Categories:  make([]Category, n),
	}
	for i := range r.Assignments {
		r.Assignments[i] = SiteMatch{Cell: -1, Site: -1}
	}

	return r
}

// Assigned reports whether atom i occupies a lattice site.
func (r *Region) Assigned(i int) bool { return r.Assignments[i].Cell >= 0 }

// LatticeIndices returns the atoms occupying lattice sites, ascending.
func (r *Region) LatticeIndices() []int {
	var out []int
	for i := range r.Assignments {
		if r.Assigned(i) {
			out = append(out, i)
		}
	}

	return out
}

// Unassigned returns the atoms left unclaimed, ascending.
func (r *Region) Unassigned() []int {
	var out []int
	for i := range r.Assignments {
		if !r.Assigned(i) {
			out = append(out, i)
		}
	}

	return out
}

// ExpectedSpecies returns the majority species of the site atom i occupies
// (-1 when unassigned).
func (r *Region) ExpectedSpecies(i int) int {
	m := r.Assignments[i]
	if m.Cell < 0 {
		return -1
	}

	return r.Sites[m.Site].Species
}

// Measure returns the length, area or volume spanned by the basis.
func (r *Region) Measure() float64 {
	return Measure(r.Basis)
}

// Measure returns |v|, |v×w| or |u·(v×w)| for 1, 2 or 3 vectors (0 otherwise).
func Measure(vs []matrix.Vec3) float64 {
	switch len(vs) {
	case 1:
		return vs[0].Norm()
	case 2:
		return vs[0].Cross(vs[1]).Norm()
	case 3:
		return math.Abs(vs[0].Dot(vs[1].Cross(vs[2])))
	default:
		return 0
	}
}

// Count returns how many atoms carry category c.
func (r *Region) Count(c Category) int {
	n := 0
	for _, x := range r.Categories {
		if x == c {
			n++
		}
	}

	return n
}
