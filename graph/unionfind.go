package graph

// UnionFind is a disjoint-set forest over the elements 0..n-1.
// It is not safe for concurrent use.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of disjoint sets
}

// NewUnionFind returns n singleton sets. A negative n is treated as 0.
func NewUnionFind(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Find returns the representative of x's set, halving the path as it climbs.
// It panics if x is outside [0, n).
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets of a and b and reports true, or reports false when
// they already share a set (the edge a-b would close a cycle).
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// attach the smaller tree under the larger
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }
