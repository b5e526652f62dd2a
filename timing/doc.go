// Package timing measures how labeling cost grows with image size for each
// disjoint-set variant.
//
// Run sweeps pixel counts n = Start, Start+Step, ... (< Stop). For each n it
// asks a Loader for a grid of about n cells, times gridgraph Labels once per
// variant (Repeats times, averaged) and records the elapsed time divided by n.
// The sweep is sequential; ctx is checked between measurements.
package timing
