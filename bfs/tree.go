package bfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/graph"
)

// ValidTree reports whether the undirected graph on n nodes with the given
// edges is a tree: exactly n-1 edges, no edge joining two already-connected
// nodes, and every node reachable from node 0. A graph with no nodes is not a
// tree. Negative n or out-of-range endpoints are returned as graph errors.
func ValidTree(n int, edges [][2]int) (bool, error) {
	// 1) Build and validate the adjacency
	g, err := graph.NewUndirected(n, edges)
	if err != nil {
		return false, fmt.Errorf("bfs: ValidTree: %w", err)
	}
	if n == 0 || len(edges) != n-1 {
		return false, nil
	}

	// 2) Union-find rejects any edge that would close a cycle
	uf := graph.NewUnionFind(n)
	for _, e := range edges {
		if !uf.Union(e[0], e[1]) {
			return false, nil
		}
	}

	// 3) BFS from node 0 must reach everything
	reached, err := Distances(0, g.Neighbors)
	if err != nil {
		return false, err
	}

	return len(reached) == n, nil
}
