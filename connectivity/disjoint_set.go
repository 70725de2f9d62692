// SPDX-License-Identifier: MIT

package connectivity

// DisjointSet is a union-find forest over 0..N-1 with path compression and
// union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		// path halving
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were distinct.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// attach the shallower tree under the deeper one
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Same reports whether x and y are in one set.
func (d *DisjointSet) Same(x, y int) bool { return d.Find(x) == d.Find(y) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.sets }

// Labels returns a dense label per element; labels are numbered in order of
// the first element of each set.
func (d *DisjointSet) Labels() []int {
	labels := make([]int, len(d.parent))
	next := 0
	byRoot := make(map[int]int, d.sets)
	for i := range d.parent {
		r := d.Find(i)
		l, ok := byRoot[r]
		if !ok {
			l = next
			byRoot[r] = l
			next++
		}
		labels[i] = l
	}

	return labels
}

// Groups returns the members of every set, in order of their smallest member,
// each group ascending.
func (d *DisjointSet) Groups() [][]int {
	labels := d.Labels()
	groups := make([][]int, d.sets)
	for i, l := range labels {
		groups[l] = append(groups[l], i)
	}

	return groups
}

// SingleLinkage clusters 0..n-1: i and j share a cluster when a chain of
// linked pairs connects them. It returns the dense cluster label of each element.
func SingleLinkage(n int, linked func(i, j int) bool) []int {
	d := NewDisjointSet(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.Same(i, j) {
				continue
			}
			if linked(i, j) {
				d.Union(i, j)
			}
		}
	}

	return d.Labels()
}
