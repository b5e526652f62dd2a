package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellseg/disjointset"
	"github.com/katalvlaran/cellseg/gridgraph"
)

// benchLabels measures Labels on a deterministic random 300×300 grid.
// Complexity: O(R×C×depth)
func benchLabels(b *testing.B, v disjointset.Variant) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for r := range grid {
		grid[r] = make([]float64, n)
		for c := range grid[r] {
			grid[r][c] = rng.Float64()
		}
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Threshold = 0.4
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Labels(v)
	}
}

func BenchmarkLabels_Naive(b *testing.B) { benchLabels(b, disjointset.Naive) }
func BenchmarkLabels_Fast(b *testing.B)  { benchLabels(b, disjointset.Fast) }

// BenchmarkConnectedComponents measures the BFS reference on the same kind of grid.
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for r := range grid {
		grid[r] = make([]float64, n)
		for c := range grid[r] {
			grid[r][c] = rng.Float64()
		}
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Threshold: 0.4, Conn: gridgraph.Conn8})
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
