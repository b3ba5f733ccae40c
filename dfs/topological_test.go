package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/graph"
)

// position returns index of v in order or -1 if not found.
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func TestTopologicalSort(t *testing.T) {
	g := directed(t, 6,
		graph.Edge{5, 2}, graph.Edge{5, 0}, graph.Edge{4, 0},
		graph.Edge{4, 1}, graph.Edge{2, 3}, graph.Edge{3, 1})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 0, 2, 3, 1}, order)
}

func TestTopologicalSort_NoEdges(t *testing.T) {
	order, err := dfs.TopologicalSort(directed(t, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)

	order, err = dfs.TopologicalSort(nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(directed(t, 3, graph.Edge{0, 1}, graph.Edge{1, 2}, graph.Edge{2, 1}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(undirected(t, 2, graph.Edge{0, 1}))
	assert.ErrorIs(t, err, dfs.ErrUndirected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(directed(t, 2, graph.Edge{0, 1}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTopologicalSort_RespectsEdges verifies the ordering invariant on a
// layered DAG.
func TestTopologicalSort_RespectsEdges(t *testing.T) {
	var edges []graph.Edge
	const layers, width = 5, 4
	for l := 0; l < layers-1; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				if (i+j)%2 == 0 {
					edges = append(edges, graph.Edge{l*width + i, (l+1)*width + j})
				}
			}
		}
	}
	order, err := dfs.TopologicalSort(directed(t, layers*width, edges...))
	require.NoError(t, err)
	require.Len(t, order, layers*width)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "edge %v", e)
	}
}
