// SPDX-License-Identifier: MIT

package periodicfinder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/systax/config"
	"github.com/katalvlaran/systax/matrix"
	"github.com/katalvlaran/systax/region"
)

// orthoTieEps is the tolerance (degrees²) under which orthogonality scores tie.
const orthoTieEps = 1e-6

type candidate struct {
	idx     []int
	sum     int
	measure float64
	ortho   float64
}

// FindBestBasis picks dim of the given spans as the lattice basis and returns
// their indices in ascending order.
//
// Combinations are enumerated lexicographically. A combination is degenerate
// when two vectors are closer than cfg.AngleTol to (anti)parallel, when the
// third vector lies within cfg.AngleTol of the plane of the first two, or when
// its measure vanishes. Among the rest the winner has
//
//  1. the largest metric sum;
//  2. then a measure within cfg.CellSizeTol (relative) of the smallest measure;
//  3. then the smallest Σ(angle − 90°)² over vector pairs;
//  4. then comes first lexicographically.
//
// Errors:
//   - ErrDegenerateBasis when dim is outside 1..3, the inputs differ in length,
//     or every combination is degenerate.
func FindBestBasis(spans []matrix.Vec3, metrics []int, dim int, cfg config.Config) ([]int, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("%s: %w: dimension %d", opBestBasis, ErrDegenerateBasis, dim)
	}
	if len(spans) != len(metrics) {
		return nil, fmt.Errorf("%s: %w: %d spans, %d metrics", opBestBasis, ErrDegenerateBasis, len(spans), len(metrics))
	}

	var cands []candidate
	combinations(len(spans), dim, func(idx []int) {
		vs := make([]matrix.Vec3, dim)
		for i, j := range idx {
			vs[i] = spans[j]
		}
		if degenerate(vs, cfg.AngleTol) {
			return
		}
		c := candidate{idx: append([]int(nil), idx...), measure: region.Measure(vs)}
		for _, j := range idx {
			c.sum += metrics[j]
		}
		for a := 0; a < dim; a++ {
			for b := a + 1; b < dim; b++ {
				dev := matrix.Angle(vs[a], vs[b]) - 90
				c.ortho += dev * dev
			}
		}
		cands = append(cands, c)
	})
	if len(cands) == 0 {
		return nil, finderErrorf(opBestBasis, ErrDegenerateBasis)
	}

	best := cands[0].sum
	for _, c := range cands {
		if c.sum > best {
			best = c.sum
		}
	}
	minMeasure := math.Inf(1)
	for _, c := range cands {
		if c.sum == best && c.measure < minMeasure {
			minMeasure = c.measure
		}
	}
	limit := minMeasure * (1 + cfg.CellSizeTol)

	var win *candidate
	for i := range cands {
		c := &cands[i]
		if c.sum != best || c.measure > limit {
			continue
		}
		if win == nil || c.ortho < win.ortho-orthoTieEps {
			win = c
		}
	}

	return win.idx, nil
}

// combinations calls fn with every k-subset of 0..n-1 in lexicographic order.
// The slice passed to fn is reused.
func combinations(n, k int, fn func([]int)) {
	if k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func degenerate(vs []matrix.Vec3, angleTol float64) bool {
	for _, v := range vs {
		if v.Norm() < 1e-9 {
			return true
		}
	}
	for a := 0; a < len(vs); a++ {
		for b := a + 1; b < len(vs); b++ {
			ang := matrix.Angle(vs[a], vs[b])
			if ang < angleTol || ang > 180-angleTol {
				return true
			}
		}
	}
	if len(vs) == 3 {
		n := vs[0].Cross(vs[1]).Unit()
		elev := math.Asin(math.Min(1, math.Abs(vs[2].Dot(n))/vs[2].Norm())) * 180 / math.Pi
		if elev < angleTol {
			return true
		}
	}

	return region.Measure(vs) < 1e-9
}
