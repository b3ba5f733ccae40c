package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are listed in row-major order of their first cell; each holds
// row-major cell indices in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.IsLand(x, y) || seen[i0] {
				continue
			}
			// BFS flood fill; the queue doubles as the component
			seen[i0] = true
			comp := []int{i0}
			for qi := 0; qi < len(comp); qi++ {
				ux, uy := gg.Coordinate(comp[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || !gg.IsLand(vx, vy) {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						comp = append(comp, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// NumIslands counts 4-connected groups of '1' cells in grid.
// An empty or ragged grid has no islands.
func NumIslands(grid [][]byte) int {
	gg, err := FromBytes(grid)
	if err != nil {
		return 0
	}

	return len(gg.ConnectedComponents())
}
