// SPDX-License-Identifier: MIT

package connectivity

import "fmt"

// Option configures BFS behaviour via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the parameters of a traversal.
type BFSOptions struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	// OnVisit is called when a vertex is dequeued. A non-nil error aborts BFS.
	OnVisit func(v, depth int) error

	err error
}

// DefaultOptions returns options with no depth limit, no filter and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		FilterNeighbor: func(_, _ int) bool { return true },
		OnVisit:        func(int, int) error { return nil },
	}
}

// WithMaxDepth limits the traversal depth; d must be ≥ 0 (0 = unlimited).
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter; nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit installs a visit hook; nil is ignored.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the visit order and depth of every reached vertex.
// Depth[v] is -1 for unreached vertices.
type BFSResult struct {
	Order []int
	Depth []int
}

// BFS explores g from start in non-decreasing depth.
//
// Errors:
//   - ErrVertexOutOfRange if start is invalid.
//   - ErrOptionViolation for invalid options.
//   - any error returned by OnVisit.
func (g *Graph) BFS(start int, opts ...Option) (*BFSResult, error) {
	if start < 0 || start >= g.Order() {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrVertexOutOfRange)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &BFSResult{Depth: make([]int, g.Order())}
	for i := range res.Depth {
		res.Depth[i] = -1
	}
	res.Depth[start] = 0
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		res.Order = append(res.Order, u)
		if err := o.OnVisit(u, res.Depth[u]); err != nil {
			return res, err
		}
		if o.MaxDepth > 0 && res.Depth[u] >= o.MaxDepth {
			continue
		}
		for _, v := range g.Neighbors(u) {
			if res.Depth[v] >= 0 || !o.FilterNeighbor(u, v) {
				continue
			}
			res.Depth[v] = res.Depth[u] + 1
			queue = append(queue, v)
		}
	}

	return res, nil
}

// Components returns the connected components of g. Components appear in
// order of their smallest vertex; vertices within a component are in BFS order.
func (g *Graph) Components() [][]int {
	seen := make([]bool, g.Order())
	var comps [][]int
	for s := 0; s < g.Order(); s++ {
		if seen[s] {
			continue
		}
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentOf returns the component containing v in BFS order.
func (g *Graph) ComponentOf(v int) []int {
	res, err := g.BFS(v)
	if err != nil {
		return nil
	}

	return res.Order
}
