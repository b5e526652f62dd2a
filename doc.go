// Package cellseg finds and locates cells in grayscale microscope images by
// labeling connected foreground pixels with a disjoint-set forest.
//
// 🚀 What is cellseg?
//
//	A small toolkit plus CLI that brings together:
//		• Disjoint sets: naive and rank-by-priority union-find (disjointset/)
//		• Grid labeling: threshold a 2D grid and merge neighboring cells (gridgraph/)
//		• Centroids: one center per multi-cell region (centroid/)
//		• Image I/O: grayscale, smoothing, resize, normalization (cellimage/)
//		• Timing sweeps and charts for comparing the two variants (timing/, render/)
//
// A typical pipeline:
//
//	m, _ := cellimage.Load("cells.png", cellimage.WithPixels(10000))
//	gg, _ := gridgraph.FromMatrix(m, gridgraph.DefaultGridOptions())
//	labels := gg.Labels(disjointset.Fast)
//	centers := centroid.ClusterCenters(labels)
//
// The cellseg command (cmd/cellseg) wraps the same steps: label, centers and
// timing, configurable through a TOML file (config/).
package cellseg
