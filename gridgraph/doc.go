// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis, multi-source reachability and minimal-cost island
// bridging.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold
//     and Conn4/Conn8 connectivity. FromBytes adapts the '1'/'0' byte grids
//     used by island puzzles.
//   - ConnectedComponents / NumIslands: BFS flood fill, one component per
//     unvisited land cell.
//   - PacificAtlantic: reverse multi-source BFS from each ocean's border,
//     climbing to cells of equal or greater height, then intersection.
//   - ExpandIsland: minimal number of water cells to convert so that two
//     components touch (0-1 BFS).
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Hydrology: which cells drain to which boundary.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbours)
//   - PacificAtlantic:     O(W×H),   Memory: O(W×H)
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H)
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Coordinates: methods speak (x, y) = (column, row); PacificAtlantic returns
// [row, col] pairs to match the matrix layout of its input.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
