// Package dfs implements cycle detection and topological ordering over a
// graph.Adjacency, plus the course-schedule solvers built on them.
//
// What:
//
//   - HasCycle: depth-first search with three-color marking (White, Gray,
//     Black) driven by an explicit stack; a back edge to a Gray node is a
//     cycle. Undirected graphs ignore the single edge back to the parent, so
//     only self-loops, parallel edges and genuine rings count.
//   - TopologicalSort: topological elimination (Kahn). Nodes whose in-degree
//     drops to zero are released smallest label first, so the order is
//     deterministic. Nodes never released sit on a cycle.
//   - CanFinish / FindOrder: course scheduling over prerequisite pairs
//     [a, b] meaning "take b before a".
//
// Why:
//
//   - Dependency graphs (build steps, course plans, task pipelines) need a
//     safe execution order or proof that none exists.
//   - The explicit stack keeps deep chains from exhausting the goroutine stack.
//
// Complexity:
//
//   - HasCycle:        Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V log V + E), Memory O(V)
//   - CanFinish:       Time O(V log V + E), Memory O(V+E)
//
// Errors:
//
//   - ErrCycleDetected  no topological order exists
//   - ErrUndirected     TopologicalSort called on an undirected graph
//   - graph.ErrNegativeOrder, graph.ErrNodeOutOfRange from course input
//   - context.Canceled  TopologicalSort cancelled via WithCancelContext
package dfs
