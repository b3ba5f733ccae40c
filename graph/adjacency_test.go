package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/graph"
)

func TestNewDirected(t *testing.T) {
	g, err := graph.NewDirected(4, []graph.Edge{{0, 1}, {0, 2}, {2, 1}, {3, 3}})
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(1))
	assert.Equal(t, []int{3}, g.Neighbors(3), "self-loop kept")
	assert.Equal(t, []int{0, 2, 1, 1}, g.InDegrees())
}

func TestNewUndirected(t *testing.T) {
	g, err := graph.NewUndirected(3, []graph.Edge{{0, 1}, {1, 2}, {2, 2}})
	require.NoError(t, err)

	assert.False(t, g.Directed())
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int{1, 2}, g.Neighbors(2), "self-loop stored once")
	assert.Equal(t, []int{1, 2, 2}, g.InDegrees())
}

func TestBuild_Errors(t *testing.T) {
	_, err := graph.NewDirected(-1, nil)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)

	_, err = graph.NewUndirected(2, []graph.Edge{{0, 2}})
	assert.ErrorIs(t, err, graph.ErrNodeOutOfRange)

	_, err = graph.NewDirected(2, []graph.Edge{{-1, 0}})
	assert.ErrorIs(t, err, graph.ErrNodeOutOfRange)

	g, err := graph.NewDirected(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Empty(t, g.InDegrees())
}
