// Package cellimage turns image files into intensity grids for labeling and
// label grids back into images.
//
// Load runs the preparation pipeline:
//
//  1. decode (any format imaging supports: JPEG, PNG, GIF, TIFF, BMP),
//  2. convert to grayscale,
//  3. smooth with a blur whose spread matches a Smoothing×Smoothing box window,
//  4. optionally resize to ⌊√Pixels⌋ × ⌊√Pixels⌋,
//  5. rescale so the darkest pixel is 0 and the brightest is 1.
//
// The result is a *mat.Dense with one row per image row, ready for
// gridgraph.FromMatrix.
//
// LabelImage colors a label grid after gridgraph.PermuteLabels so adjacent
// regions are easy to tell apart.
package cellimage
