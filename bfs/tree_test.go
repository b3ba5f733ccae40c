package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/graph"
)

func TestValidTree(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"star with branch", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}}, true},
		{"extra edge", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 3}, {1, 4}}, false},
		{"cycle plus isolated node", 4, [][2]int{{0, 1}, {1, 2}, {2, 0}}, false},
		{"single node", 1, nil, true},
		{"no nodes", 0, nil, false},
		{"disconnected", 4, [][2]int{{0, 1}, {2, 3}}, false},
		{"duplicate edge", 3, [][2]int{{0, 1}, {1, 0}}, false},
		{"path", 4, [][2]int{{3, 2}, {2, 1}, {1, 0}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.ValidTree(tc.n, tc.edges)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidTree_BadInput(t *testing.T) {
	_, err := bfs.ValidTree(-1, nil)
	assert.ErrorIs(t, err, graph.ErrNegativeOrder)

	_, err = bfs.ValidTree(2, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, graph.ErrNodeOutOfRange)
}
