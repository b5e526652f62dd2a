package centroid_test

import (
	"fmt"

	"github.com/katalvlaran/cellseg/centroid"
)

func ExampleClusterCenters() {
	labels := [][]int{
		{5, 5, 0},
		{1, 5, 2},
		{3, 4, 5},
	}
	for _, p := range centroid.ClusterCenters(labels) {
		fmt.Printf("x=%.2f y=%.2f\n", p.X, p.Y)
	}
	// Output:
	// x=0.00 y=0.00
	// x=1.00 y=0.75
}
