package dfs

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/graph"
)

// minQueue is a min-heap of node labels; it releases the smallest ready node.
type minQueue []int

func (q minQueue) Len() int           { return len(q) }
func (q minQueue) Less(i, j int) bool { return q[i] < q[j] }
func (q minQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *minQueue) Push(x any)        { *q = append(*q, x.(int)) }
func (q *minQueue) Pop() any {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]

	return x
}

// TopologicalSort returns an ordering of all nodes of the directed graph g in
// which every edge u→v has u before v. Among nodes that are ready at the
// same time the smallest label comes first, so the result is unique for a
// given graph.
//
// Returns ErrUndirected for an undirected graph and ErrCycleDetected when
// some nodes can never be released. A nil graph yields an empty order.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *graph.Adjacency, options ...TopoOption) ([]int, error) {
	// 1. Validate graph
	if g == nil {
		return []int{}, nil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", ErrUndirected)
	}

	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Seed the ready queue with every zero in-degree node
	indeg := g.InDegrees()
	ready := make(minQueue, 0, len(indeg))
	for v, d := range indeg {
		if d == 0 {
			ready = append(ready, v)
		}
	}
	heap.Init(&ready)

	// 4. Eliminate ready nodes, releasing their successors
	order := make([]int, 0, len(indeg))
	for ready.Len() > 0 {
		if err := opts.ctx.Err(); err != nil {
			return nil, err
		}
		u := heap.Pop(&ready).(int)
		order = append(order, u)
		for _, v := range g.Neighbors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(&ready, v)
			}
		}
	}

	// 5. Anything left behind still has an incoming edge from a cycle
	if len(order) < len(indeg) {
		return nil, fmt.Errorf("%w: %d of %d nodes on or behind a cycle",
			ErrCycleDetected, len(indeg)-len(order), len(indeg))
	}

	return order, nil
}
