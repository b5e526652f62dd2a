package gridgraph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	forwardOffsets = [][2]int{{1, 0}, {1, 1}, {0, 1}}
	conn4Forward   = [][2]int{{0, 1}, {1, 0}}
	conn8Forward   = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}}
	conn4Offsets   = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8Offsets   = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrNaNValue on a NaN cell.
// Complexity: O(R×C) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]float64, cols)
		for c, v := range values[r] {
			if math.IsNaN(v) {
				return nil, ErrNaNValue
			}
			cells[r][c] = v
		}
	}

	return newGridGraph(cells, opts), nil
}

// FromMatrix builds a GridGraph from any gonum matrix; row i of m becomes grid row i.
// Returns ErrEmptyGrid for a zero-sized matrix and ErrNaNValue on a NaN element.
func FromMatrix(m mat.Matrix, opts GridOptions) (*GridGraph, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		cells[r] = mat.Row(nil, r, m)
		for _, v := range cells[r] {
			if math.IsNaN(v) {
				return nil, ErrNaNValue
			}
		}
	}

	return newGridGraph(cells, opts), nil
}

func newGridGraph(cells [][]float64, opts GridOptions) *GridGraph {
	gg := &GridGraph{
		Rows:       len(cells),
		Cols:       len(cells[0]),
		CellValues: cells,
		Threshold:  opts.Threshold,
		Conn:       opts.Conn,
		Indexing:   opts.Indexing,
	}
	switch opts.Conn {
	case Conn4:
		gg.forward, gg.neighbors = conn4Forward, conn4Offsets
	case Conn8:
		gg.forward, gg.neighbors = conn8Forward, conn8Offsets
	default:
		gg.forward, gg.neighbors = forwardOffsets, conn8Offsets
	}

	return gg
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// Above reports whether cell (row, col) is foreground. The cell must be in bounds.
func (gg *GridGraph) Above(row, col int) bool {
	return gg.CellValues[row][col] >= gg.Threshold
}

// Index maps (row, col) to its disjoint-set element under gg.Indexing.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	if gg.Indexing == IndexRowMajor {
		return row*gg.Cols + col
	}
	return row*gg.Rows + col
}

// Universe is the disjoint-set size needed to hold every Index of the grid:
// Rows*Cols, or more when IndexRowStride runs past it on a tall grid.
func (gg *GridGraph) Universe() int {
	n := gg.Rows * gg.Cols
	if last := gg.Index(gg.Rows-1, gg.Cols-1) + 1; last > n {
		n = last
	}
	return n
}

// Coordinate converts a row-major index (row*Cols + col), as produced by
// ConnectedComponents, back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}

// NeighborOffsets returns the (dRow, dCol) offsets ConnectedComponents
// follows: the 4-neighborhood for Conn4, the 8-neighborhood otherwise.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighbors
}
