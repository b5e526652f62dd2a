package gridgraph

// DefaultThreshold is the foreground cut-off for intensities normalized to [0,1].
const DefaultThreshold = 0.7

// Connectivity selects which neighbors a cell is merged with during labeling.
type Connectivity int

const (
	// ConnForward is the forward three-neighbor sweep: every cell except those in
	// the last row and last column is an origin and is merged with its down,
	// down-right and right neighbors.
	ConnForward Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Indexing selects the (row, col) → element index linearization.
type Indexing int

const (
	// IndexRowStride computes row*Rows + col: the row count is the stride even
	// on non-square grids. Wide grids alias cells; tall grids need a universe
	// larger than Rows*Cols (see Universe).
	IndexRowStride Indexing = iota
	// IndexRowMajor computes row*Cols + col.
	IndexRowMajor
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	Row, Col int
	Value    float64
}

// GridOptions contains tunable parameters for grid labeling.
type GridOptions struct {
	// Threshold is the minimum cell value considered foreground (value >= Threshold).
	Threshold float64
	// Conn chooses the merge neighborhood.
	Conn Connectivity
	// Indexing chooses the element linearization.
	Indexing Indexing
}

// DefaultGridOptions returns GridOptions with Threshold=DefaultThreshold,
// Conn=ConnForward and Indexing=IndexRowStride.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Threshold: DefaultThreshold,
		Conn:      ConnForward,
		Indexing:  IndexRowStride,
	}
}

// GridGraph treats a 2D float grid as a graph of foreground cells. It is
// immutable once built, so Labels may run concurrently on one GridGraph.
// CellValues[row][col] holds the original input value.
type GridGraph struct {
	Rows, Cols int
	CellValues [][]float64
	Threshold  float64
	Conn       Connectivity
	Indexing   Indexing

	// forward holds the (dRow, dCol) offsets merged from each scan origin.
	forward [][2]int
	// neighbors holds the full symmetric neighborhood used by BFS.
	neighbors [][2]int
}
