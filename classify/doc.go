// SPDX-License-Identifier: MIT
// Package classify labels every atom of a structure relative to a grown
// periodic region: lattice atoms become basis members or substitutions,
// unclaimed atoms inside the lattice solid become interstitials, and the
// remaining atoms are grouped into bonded components that are reported as
// adsorbates, periodic substructures (outliers) or unknowns.
//
// All index lists of a Report are ascending, except AdsorbateGroups and
// PeriodicSubstructures whose members keep breadth-first discovery order.
package classify
