// Package disjointset provides a fixed-size disjoint-set (union-find) over the
// element indices 0..N-1, in two interchangeable variants.
//
// What:
//
//   - Set is the capability every variant implements: Union, Find, SetLabel, Len.
//   - Naive chases parent pointers and always hangs root(j) under root(i).
//   - Fast compresses one step on SetLabel and picks the merge direction from a
//     per-element priority (initialized to the element index).
//   - Variant selects an implementation at call time: New(Fast, n).
//
// Why:
//
//   - Label connected regions of a thresholded image (see package gridgraph).
//   - Compare a naive union-find against a heuristic one on identical input.
//
// Merge policy of Fast:
//
//	Union(i, j) compares priority[i] and priority[j] (the arguments, not their
//	roots). The larger side keeps its root and its priority grows by one; on a
//	tie j's root wins and priority[j] grows. Partitions are identical to Naive;
//	tree shapes and representatives are not.
//
// Complexity:
//
//   - New:      O(N) time and memory.
//   - Find:     O(depth) for both variants.
//   - Union:    O(depth).
//   - SetLabel: O(depth); Fast shortens the path of the queried element to 1.
//
// Errors:
//
//   - Index outside [0, N): panics with *IndexError (errors.Is ErrIndexOutOfRange).
//   - Negative size: panics with ErrNegativeSize.
//   - ParseVariant on unknown input: returns ErrUnknownVariant.
package disjointset
