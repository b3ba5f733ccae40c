package dfs

import "github.com/katalvlaran/algokit/graph"

// frame is one activation of the iterative DFS: the node, the node it was
// entered from, and the index of the next neighbour to examine.
type frame struct {
	node, parent int
	next         int
	skipped      bool // undirected only: the edge back to parent was consumed
}

// HasCycle reports whether g contains a cycle. A nil graph has none.
//
// Directed graphs: a cycle exists iff DFS meets an edge into a Gray node.
// Undirected graphs: the first edge back to the DFS parent is the tree edge
// itself and is skipped once; any other edge into a Gray node closes a ring.
func HasCycle(g *graph.Adjacency) bool {
	if g == nil {
		return false
	}

	// 1) Every node starts White
	state := make([]int, g.Order())
	stack := make([]frame, 0, 16)

	// 2) Launch DFS from every still-White node to cover all components
	for root := range state {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack, frame{node: root, parent: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.Neighbors(top.node)

			// 2a) All neighbours examined: finish the node
			if top.next == len(nbrs) {
				state[top.node] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			v := nbrs[top.next]
			top.next++

			// 2b) Tree edge back to the parent in an undirected graph
			if !g.Directed() && v == top.parent && !top.skipped {
				top.skipped = true
				continue
			}

			switch state[v] {
			case Gray:
				return true // back edge
			case White:
				state[v] = Gray
				stack = append(stack, frame{node: v, parent: top.node})
			}
		}
	}

	return false
}
