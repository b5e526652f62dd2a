// Package centroid reduces a label grid to the mean position of each label class.
//
// ClusterCenters groups cell coordinates by label, drops classes with fewer
// than MinMembers cells (isolated noise or background pixels) and returns one
// Point per remaining class, in the order each label is first met in a
// row-major scan.
//
// Points are (X, Y) = (mean column, mean row), the order plotting libraries
// expect. The list always starts with Placeholder, a fixed {0, 0} entry kept
// for output compatibility with existing consumers; it carries no data.
package centroid
