// Package bfs provides breadth-first search over implicit graphs, together
// with the shortest-transformation and tree-validation solvers built on it.
//
// What
//
//   - ShortestPath / Distances: generic BFS over any comparable node type T.
//     The graph is never materialised: an expand function yields the
//     neighbours of a node on demand, so very large or infinite state
//     spaces can be searched lazily.
//   - Functional options tune a search:
//   - WithContext   (cancellation, checked once per dequeue)
//   - WithMaxDepth  (stop expanding beyond depth d; d == 0 means no limit)
//   - WithOnVisit   (called on dequeue with the node's depth; may abort)
//   - LadderLength: word ladder over a dictionary, generating one-character
//     variants per position instead of building a word×word edge matrix.
//   - ValidTree: an undirected graph is a tree iff it has exactly n-1 edges,
//     union-find never joins two already-connected nodes, and BFS from node 0
//     reaches all n nodes.
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - BFS distance does not depend on the order in which edges are listed.
//
// Complexity (V = nodes reached, E = expansions)
//
//   - ShortestPath: Time O(V + E), Memory O(V)
//   - LadderLength: Time O(W·L·Σ), Memory O(W)  (W words, L length, Σ alphabet)
//   - ValidTree:    Time O(n + m·α(n)), Memory O(n + m)
//
// Errors
//
//   - ErrUnreachable      goal not reached (within MaxDepth, if set)
//   - ErrOptionViolation  invalid option, e.g. negative MaxDepth
//   - context errors      search cancelled
//   - hook errors         wrapped from OnVisit
package bfs
