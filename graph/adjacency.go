package graph

import "fmt"

// Adjacency is an immutable adjacency-list graph over the labels 0..n-1.
type Adjacency struct {
	out      [][]int // out[u] lists the heads of edges leaving u, in edge order
	size     int     // number of input edges
	directed bool
}

// NewDirected builds a directed graph with n nodes; each edge {u, v} is the
// arc u→v. Parallel arcs and self-loops are kept as given.
//
// Returns ErrNegativeOrder for n < 0 and ErrNodeOutOfRange for an endpoint
// outside [0, n).
func NewDirected(n int, edges []Edge) (*Adjacency, error) {
	return build(n, edges, true)
}

// NewUndirected builds an undirected graph with n nodes; each edge {u, v} is
// stored as both u→v and v→u. A self-loop {u, u} is stored once.
//
// Returns ErrNegativeOrder for n < 0 and ErrNodeOutOfRange for an endpoint
// outside [0, n).
func NewUndirected(n int, edges []Edge) (*Adjacency, error) {
	return build(n, edges, false)
}

// build validates the edge list and fills the adjacency lists in one pass.
func build(n int, edges []Edge, directed bool) (*Adjacency, error) {
	// 1) Validate order and endpoints before allocating lists
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("%w: edge %d = %v with n = %d", ErrNodeOutOfRange, i, e, n)
		}
	}

	// 2) Populate neighbour lists, mirroring for undirected graphs
	g := &Adjacency{
		out:      make([][]int, n),
		size:     len(edges),
		directed: directed,
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		g.out[u] = append(g.out[u], v)
		if !directed && u != v {
			g.out[v] = append(g.out[v], u)
		}
	}

	return g, nil
}

// Order returns the number of nodes.
func (g *Adjacency) Order() int { return len(g.out) }

// Size returns the number of edges the graph was built from.
func (g *Adjacency) Size() int { return g.size }

// Directed reports whether edges are one-way.
func (g *Adjacency) Directed() bool { return g.directed }

// Neighbors returns the heads of the edges leaving u. The returned slice is
// shared with the graph and must not be modified. It panics if u is out of range.
func (g *Adjacency) Neighbors(u int) []int { return g.out[u] }

// InDegrees returns, for every node, the number of edges entering it.
// For undirected graphs this equals the degree.
func (g *Adjacency) InDegrees() []int {
	in := make([]int, len(g.out))
	for _, nbrs := range g.out {
		for _, v := range nbrs {
			in[v]++
		}
	}

	return in
}
