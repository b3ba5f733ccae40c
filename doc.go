// Package algokit is a collection of small, self-contained algorithmic
// kernels grouped by technique family.
//
// What:
//
//	arrays/     prefix sums, range sums, in-place marking scans, peak search
//	window/     sliding windows, monotonic deques, Kadane, two pointers
//	interval/   closed integer intervals: merge, insert, rooms, erase
//	graph/      compact adjacency lists and a union-find
//	dfs/        cycle detection, topological sort, course scheduling
//	bfs/        generic shortest paths, word ladder, tree validation
//	gridgraph/  islands, ocean flow, island expansion on 2D grids
//	dp/         tabulation helpers and classic dynamic programs
//	tree/       level-order building, BST queries, a pre-order codec
//	strmatch/   brackets, palindromes, anagrams, string framing
//
// Why:
//
//	Every solver is a pure function with a precise contract: no shared
//	state, no logging, inputs left untouched unless documented. They may be
//	called from many goroutines at once.
//
// The algokit command (cmd/algokit) runs declarative HCL case files through
// these solvers and reports the outcomes; see internal/runner.
package algokit
