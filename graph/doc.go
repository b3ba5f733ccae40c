// Package graph provides the dense-label graph primitives shared by the dfs
// and bfs packages: an immutable adjacency list built from an edge list, and
// a disjoint-set forest (union-find).
//
// What:
//
//   - Adjacency: n nodes labelled 0..n-1 and their outgoing neighbour lists.
//     NewDirected keeps each edge as an ordered pair; NewUndirected stores
//     every edge in both directions.
//   - UnionFind: near-constant-time Find/Union over 0..n-1 with path halving
//     and union by size; Union reports whether two sets were actually joined.
//
// Invariants:
//
//   - Node labels are dense integers in [0, n). Construction rejects n < 0
//     (ErrNegativeOrder) and any endpoint outside the range (ErrNodeOutOfRange).
//   - An Adjacency is immutable once built and safe for concurrent reads.
//   - Neighbour lists preserve edge-list order, so traversals are deterministic
//     for a given input.
//
// Complexity:
//
//   - NewDirected / NewUndirected: Time O(n + m), Memory O(n + m)
//   - UnionFind Find / Union:      amortised O(α(n))
package graph
