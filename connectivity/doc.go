// SPDX-License-Identifier: MIT
// Package connectivity provides the integer-indexed graph machinery used to
// group atoms: an undirected adjacency graph, breadth-first traversal,
// connected components and a disjoint-set forest for single-linkage clustering.
//
// What
//
//   - Graph: vertices are 0..N-1 (atom or atom-image indices); edges are
//     undirected and de-duplicated; neighbours are kept sorted.
//   - BFS: visit order and depth from a start vertex, with functional options
//     (WithMaxDepth, WithFilterNeighbor, WithOnVisit).
//   - Components: connected components in first-encountered order; each
//     component lists its vertices in BFS order.
//   - DisjointSet: union-find with path compression and union by rank.
//   - SingleLinkage: clusters 0..N-1 under an arbitrary "linked" predicate.
//
// Determinism
//
//	Neighbour lists are sorted ascending and components are discovered by
//	scanning vertices in ascending order, so every traversal is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - BFS / Components: O(V + E) time, O(V) memory.
//   - SingleLinkage:    O(V²·α(V)) predicate calls bounded by V(V−1)/2.
package connectivity
