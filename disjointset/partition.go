package disjointset

// Classes reads back the partition held by s: one slice per class, members
// ascending, classes ordered by their smallest member.
// Grouping goes through SetLabel, so a Fast set may come back with shorter
// paths; the partition itself is unchanged.
// Complexity: O(N · depth).
func Classes(s Set) [][]int {
	n := s.Len()
	byRoot := make(map[int][]int)
	heads := make([]int, 0)
	for i := 0; i < n; i++ {
		r := s.SetLabel(i)
		if _, ok := byRoot[r]; !ok {
			heads = append(heads, r)
		}
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(heads))
	// heads are recorded in order of each class's smallest member
	for _, r := range heads {
		out = append(out, byRoot[r])
	}
	return out
}

// Count returns the number of classes in s.
func Count(s Set) int {
	n := s.Len()
	roots := 0
	for i := 0; i < n; i++ {
		if s.SetLabel(i) == i {
			roots++
		}
	}
	return roots
}
