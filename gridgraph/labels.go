package gridgraph

import "github.com/katalvlaran/cellseg/disjointset"

// Labels merges adjacent foreground cells in a fresh disjoint-set of variant v
// and returns, for every cell, the representative of its class.
//
// Behavior:
//  1. Allocate a disjoint-set of Universe() elements.
//  2. Sweep origins column by column (outer loop over columns). Under
//     ConnForward the last row and last column are never origins; under
//     Conn4/Conn8 every cell is.
//  3. For a foreground origin, Union it with each in-bounds foreground cell at
//     the forward offsets of gg.Conn.
//  4. Read back SetLabel(Index(r, c)) for every cell.
//
// Background cells still get a label, normally their own singleton root.
// The result has shape Rows×Cols and values in [0, Universe()). Universe()
// equals Rows*Cols except under IndexRowStride on a tall grid (Rows > Cols),
// where it is (Rows-1)*Rows + Cols and labels can reach past Rows*Cols: a 3×2
// background grid labels as [[0 1] [3 4] [6 7]]. Use IndexRowMajor to keep
// every label below Rows*Cols.
//
// Complexity: O(R×C×depth) time, O(Universe) memory.
func (gg *GridGraph) Labels(v disjointset.Variant) [][]int {
	set := disjointset.New(v, gg.Universe())

	rowLimit, colLimit := gg.Rows, gg.Cols
	if gg.Conn == ConnForward {
		rowLimit, colLimit = gg.Rows-1, gg.Cols-1
	}
	for c := 0; c < colLimit; c++ {
		for r := 0; r < rowLimit; r++ {
			if !gg.Above(r, c) {
				continue
			}
			i := gg.Index(r, c)
			for _, d := range gg.forward {
				nr, nc := r+d[0], c+d[1]
				if !gg.InBounds(nr, nc) || !gg.Above(nr, nc) {
					continue
				}
				set.Union(i, gg.Index(nr, nc))
			}
		}
	}

	labels := make([][]int, gg.Rows)
	for r := range labels {
		labels[r] = make([]int, gg.Cols)
	}
	for c := 0; c < gg.Cols; c++ {
		for r := 0; r < gg.Rows; r++ {
			labels[r][c] = set.SetLabel(gg.Index(r, c))
		}
	}

	return labels
}

// CellLabels labels values with the default options at the given threshold.
// It is shorthand for NewGridGraph followed by Labels.
func CellLabels(values [][]float64, threshold float64, v disjointset.Variant) ([][]int, error) {
	opts := DefaultGridOptions()
	opts.Threshold = threshold
	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	return gg.Labels(v), nil
}
