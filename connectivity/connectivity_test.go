// SPDX-License-Identifier: MIT
package connectivity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/systax/connectivity"
)

// path 0-1-2, triangle 3-4-5, isolated 6
func sample(t *testing.T) *connectivity.Graph {
	t.Helper()
	g := connectivity.NewGraph(7)
	for _, e := range [][2]int{{1, 2}, {0, 1}, {3, 5}, {5, 4}, {4, 3}, {0, 1}, {2, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestGraph_AddEdge(t *testing.T) {
	g := sample(t)
	assert.Equal(t, 7, g.Order())
	assert.Equal(t, 5, g.Size(), "duplicates and loops are ignored")
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, []int{3, 5}, g.Neighbors(4))

	err := g.AddEdge(0, 7)
	require.ErrorIs(t, err, connectivity.ErrVertexOutOfRange)
}

func TestGraph_Components(t *testing.T) {
	g := sample(t)
	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []int{0, 1, 2}, comps[0])
	assert.Equal(t, []int{3, 4, 5}, comps[1])
	assert.Equal(t, []int{6}, comps[2])
	assert.Equal(t, []int{5, 3, 4}, g.ComponentOf(5))
}

func TestGraph_BFS(t *testing.T) {
	g := sample(t)
	res, err := g.BFS(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, res.Order)
	assert.Equal(t, []int{2, 1, 0, -1, -1, -1, -1}, res.Depth)

	res, err = g.BFS(2, connectivity.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Order)

	res, err = g.BFS(3, connectivity.WithFilterNeighbor(func(_, n int) bool { return n != 5 }))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, res.Order)

	_, err = g.BFS(0, connectivity.WithMaxDepth(-1))
	require.ErrorIs(t, err, connectivity.ErrOptionViolation)

	_, err = g.BFS(9)
	require.ErrorIs(t, err, connectivity.ErrVertexOutOfRange)

	stop := errors.New("stop")
	_, err = g.BFS(0, connectivity.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestDisjointSet(t *testing.T) {
	d := connectivity.NewDisjointSet(6)
	assert.True(t, d.Union(4, 1))
	assert.True(t, d.Union(1, 5))
	assert.False(t, d.Union(5, 4))
	assert.True(t, d.Union(2, 3))
	assert.Equal(t, 3, d.Count())
	assert.True(t, d.Same(4, 5))
	assert.False(t, d.Same(0, 1))

	assert.Equal(t, []int{0, 1, 2, 2, 1, 1}, d.Labels())
	assert.Equal(t, [][]int{{0}, {1, 4, 5}, {2, 3}}, d.Groups())
}

func TestSingleLinkage_Chain(t *testing.T) {
	xs := []float64{0, 1, 2, 10, 11, 30}
	labels := connectivity.SingleLinkage(len(xs), func(i, j int) bool {
		d := xs[i] - xs[j]
		return d*d <= 1.5*1.5
	})
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, labels)
}

func TestBuild(t *testing.T) {
	g := connectivity.Build(4, func(i, j int) bool { return j == i+1 })
	assert.Equal(t, 3, g.Size())
	assert.Len(t, g.Components(), 1)
}
