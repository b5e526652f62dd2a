package disjointset

// FastSet is a union-find with single-step path compression on SetLabel and a
// priority-guided merge direction.
//
// priority[i] starts at i. Union(i, j) compares the priorities of the two
// arguments (not of their roots) and bumps only the winning argument's
// priority. This is not textbook union-by-rank, but it yields the same
// partition as any other correct union.
type FastSet struct {
	parent   []int
	priority []int
}

var _ Set = (*FastSet)(nil)

// NewFast returns a FastSet of n singletons with priority[i] = i.
// Complexity: O(n).
func NewFast(n int) *FastSet {
	return &FastSet{parent: identity(n), priority: identity(n)}
}

// Len returns the universe size.
func (s *FastSet) Len() int { return len(s.parent) }

func (s *FastSet) root(i int) int {
	for s.parent[i] != i {
		i = s.parent[i]
	}
	return i
}

// Find reports whether i and j share a root. Find does not compress.
func (s *FastSet) Find(i, j int) bool {
	checkIndex("Find", i, len(s.parent))
	checkIndex("Find", j, len(s.parent))
	return s.root(i) == s.root(j)
}

// SetLabel returns the root of i and re-points parent[i] straight at it.
// Intermediate nodes on the path are left untouched.
func (s *FastSet) SetLabel(i int) int {
	checkIndex("SetLabel", i, len(s.parent))
	r := s.root(i)
	s.parent[i] = r
	return r
}

// Union merges the classes of i and j.
// If priority[i] > priority[j], root(j) goes under root(i) and priority[i]++;
// otherwise root(i) goes under root(j) and priority[j]++.
func (s *FastSet) Union(i, j int) {
	checkIndex("Union", i, len(s.parent))
	checkIndex("Union", j, len(s.parent))
	ri, rj := s.root(i), s.root(j)
	if ri == rj {
		return
	}
	if s.priority[i] > s.priority[j] {
		s.parent[rj] = ri
		s.priority[i]++
		return
	}
	s.parent[ri] = rj
	s.priority[j]++
}
