// SPDX-License-Identifier: MIT

package systax

import (
	"github.com/katalvlaran/systax/region"
)

// SymmetryAnalyzer turns the unit cell of a periodic region into symmetry
// labels (space group, Wyckoff sets, ...). The result is stored as-is in
// Classification.Symmetry.
type SymmetryAnalyzer interface {
	Analyze(uc region.UnitCell) (any, error)
}

// SymmetryFunc adapts a function to SymmetryAnalyzer.
type SymmetryFunc func(uc region.UnitCell) (any, error)

// Analyze calls f.
func (f SymmetryFunc) Analyze(uc region.UnitCell) (any, error) { return f(uc) }
