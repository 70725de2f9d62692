// SPDX-License-Identifier: MIT

package connectivity

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrVertexOutOfRange is returned when an index is outside [0, N).
	ErrVertexOutOfRange = errors.New("connectivity: vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connectivity: invalid option supplied")
)

// Graph is an undirected simple graph over vertices 0..N-1.
type Graph struct {
	adj    [][]int
	sorted []bool
	edges  int
}

// NewGraph returns an edgeless graph with n vertices.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]int, n), sorted: make([]bool, n)}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return g.edges }

// AddEdge connects u and v. Self-loops and duplicate edges are ignored.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v || g.HasEdge(u, v) {
		return nil
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.sorted[u], g.sorted[v] = false, false
	g.edges++

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Neighbors returns the sorted neighbours of u. The slice must not be modified.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	if !g.sorted[u] {
		sort.Ints(g.adj[u])
		g.sorted[u] = true
	}

	return g.adj[u]
}

// Degree returns the number of neighbours of u.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= len(g.adj) {
		return 0
	}

	return len(g.adj[u])
}

// Build returns a graph over n vertices with an edge for every pair i<j for
// which linked(i, j) holds. Pairs are probed in lexicographic order.
func Build(n int, linked func(i, j int) bool) *Graph {
	g := NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if linked(i, j) {
				_ = g.AddEdge(i, j)
			}
		}
	}

	return g
}
