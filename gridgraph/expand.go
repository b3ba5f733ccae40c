package gridgraph

// ExpandIsland finds a minimum-conversion path of water cells connecting
// component srcComp to component dstComp, as numbered by
// ConnectedComponents. Each water cell on the path costs 1; land is free.
// Returns the row-major cell indices of the path, from a srcComp cell to the
// first dstComp cell reached, and the number of water cells converted.
//
// Behavior:
//  1. Validate component indices.
//  2. 0-1 BFS in cost layers: land moves stay in the current layer, water
//     moves go to the next one.
//  3. Stop when any dstComp cell is settled.
//  4. Reconstruct the path from predecessor links.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	n := gg.Width * gg.Height
	isDst := make([]bool, n)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}

	// current holds cells at cost `cost`; next collects cost+1 candidates
	current := append([]int(nil), comps[srcComp]...)
	for _, i := range current {
		dist[i] = 0
	}
	for cost = 0; len(current) > 0; cost++ {
		var next []int
		for qi := 0; qi < len(current); qi++ {
			u := current[qi]
			if dist[u] != cost {
				continue // settled earlier at a lower cost
			}
			if isDst[u] {
				for at := u; at >= 0; at = prev[at] {
					path = append(path, at)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}

				return path, cost, nil
			}
			ux, uy := gg.Coordinate(u)
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				v := gg.index(vx, vy)
				nd := cost
				if !gg.IsLand(vx, vy) {
					nd++
				}
				if dist[v] >= 0 && dist[v] <= nd {
					continue
				}
				dist[v], prev[v] = nd, u
				if nd == cost {
					current = append(current, v)
				} else {
					next = append(next, v)
				}
			}
		}
		current = next
	}

	return nil, 0, ErrNoPath
}
