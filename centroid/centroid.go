package centroid

import "gonum.org/v1/gonum/stat"

// MinMembers is the smallest class size that yields a centroid.
const MinMembers = 2

// Point is a centroid in image coordinates: X is the column, Y is the row.
type Point struct {
	X, Y float64
}

// Placeholder is the fixed first entry of every ClusterCenters result.
var Placeholder = Point{}

// Cell is one grid coordinate.
type Cell struct {
	Row, Col int
}

// Groups collects the cells of every label. order lists labels in the order
// they are first met in a row-major scan; members are in scan order too.
// Rows of labels may differ in length.
func Groups(labels [][]int) (order []int, members map[int][]Cell) {
	members = make(map[int][]Cell)
	for r, row := range labels {
		for c, l := range row {
			if _, ok := members[l]; !ok {
				order = append(order, l)
			}
			members[l] = append(members[l], Cell{Row: r, Col: c})
		}
	}
	return order, members
}

// ClusterCenters returns Placeholder followed by the centroid of every label
// class with at least MinMembers cells. The result length is
// 1 + (number of such classes); an empty grid yields just Placeholder.
func ClusterCenters(labels [][]int) []Point {
	order, members := Groups(labels)
	out := make([]Point, 1, len(order)+1)
	out[0] = Placeholder

	for _, l := range order {
		cells := members[l]
		if len(cells) < MinMembers {
			continue
		}
		rows := make([]float64, len(cells))
		cols := make([]float64, len(cells))
		for i, cell := range cells {
			rows[i] = float64(cell.Row)
			cols[i] = float64(cell.Col)
		}
		out = append(out, Point{X: stat.Mean(cols, nil), Y: stat.Mean(rows, nil)})
	}
	return out
}

// Sizes returns the number of cells carrying each label.
func Sizes(labels [][]int) map[int]int {
	sizes := make(map[int]int)
	for _, row := range labels {
		for _, l := range row {
			sizes[l]++
		}
	}
	return sizes
}
