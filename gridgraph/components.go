package gridgraph

// ConnectedComponents finds all contiguous regions of foreground cells
// (CellValues[r][c] ≥ Threshold) by breadth-first search over the full
// neighborhood of gg.Conn (ConnForward searches the 8-neighborhood).
// Returns a slice of components; each component is a slice of row-major
// cell indices (r*Cols + c) in BFS order.
//
// It is a verification aid: tests and benchmarks compare the partition from
// Labels against it. It does not use a disjoint-set and no labeling path calls it.
// To convert an index back to (row, col), use Coordinate(idx).
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Rows*gg.Cols)
	var comps [][]int

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if !gg.Above(r, c) {
				continue // background
			}
			i0 := r*gg.Cols + c
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ur, uc := gg.Coordinate(u)
				for _, d := range gg.NeighborOffsets() {
					vr, vc := ur+d[0], uc+d[1]
					if !gg.InBounds(vr, vc) || !gg.Above(vr, vc) {
						continue
					}
					vi := vr*gg.Cols + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
