package gridgraph

import "fmt"

// PacificAtlantic returns the [row, col] cells of heights from which water
// can reach both the Pacific (top and left edges) and the Atlantic (bottom
// and right edges), flowing to 4-neighbours of equal or lower height.
// The result is sorted by row, then column. An empty grid yields nil, nil;
// a ragged grid yields ErrNonRectangular.
func PacificAtlantic(heights [][]int) ([][2]int, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, nil
	}
	gg, err := NewGridGraph(heights, GridOptions{Conn: Conn4})
	if err != nil {
		return nil, fmt.Errorf("gridgraph: PacificAtlantic: %w", err)
	}

	// 1) Border sources for each ocean
	var pacific, atlantic []int
	for x := 0; x < gg.Width; x++ {
		pacific = append(pacific, gg.index(x, 0))
		atlantic = append(atlantic, gg.index(x, gg.Height-1))
	}
	for y := 0; y < gg.Height; y++ {
		pacific = append(pacific, gg.index(0, y))
		atlantic = append(atlantic, gg.index(gg.Width-1, y))
	}

	// 2) Reverse flow from each ocean, then intersect in row-major order
	toPacific := gg.climb(pacific)
	toAtlantic := gg.climb(atlantic)
	var out [][2]int
	for i := range toPacific {
		if toPacific[i] && toAtlantic[i] {
			x, y := gg.Coordinate(i)
			out = append(out, [2]int{y, x})
		}
	}

	return out, nil
}

// climb runs a multi-source BFS from sources, moving only to neighbours at
// least as high as the current cell. It returns the reached set by index.
func (gg *GridGraph) climb(sources []int) []bool {
	reached := make([]bool, gg.Width*gg.Height)
	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		if !reached[s] {
			reached[s] = true
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] < gg.CellValues[uy][ux] {
				continue
			}
			if vi := gg.index(vx, vy); !reached[vi] {
				reached[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return reached
}
