package disjointset

// NaiveSet is a union-find without balancing or compression. Union always hangs
// root(j) under root(i), so adversarial merge orders build long chains.
type NaiveSet struct {
	parent []int
}

var _ Set = (*NaiveSet)(nil)

// NewNaive returns a NaiveSet of n singletons.
// Complexity: O(n).
func NewNaive(n int) *NaiveSet {
	return &NaiveSet{parent: identity(n)}
}

// Len returns the universe size.
func (s *NaiveSet) Len() int { return len(s.parent) }

// root follows parent pointers from i until a self-referencing index.
func (s *NaiveSet) root(i int) int {
	for s.parent[i] != i {
		i = s.parent[i]
	}
	return i
}

// Find reports whether i and j share a root. It never mutates the set.
func (s *NaiveSet) Find(i, j int) bool {
	checkIndex("Find", i, len(s.parent))
	checkIndex("Find", j, len(s.parent))
	return s.root(i) == s.root(j)
}

// SetLabel returns the root of i. It never mutates the set.
func (s *NaiveSet) SetLabel(i int) int {
	checkIndex("SetLabel", i, len(s.parent))
	return s.root(i)
}

// Union attaches root(j) under root(i) unless they are already equal.
func (s *NaiveSet) Union(i, j int) {
	checkIndex("Union", i, len(s.parent))
	checkIndex("Union", j, len(s.parent))
	ri, rj := s.root(i), s.root(j)
	if ri != rj {
		s.parent[rj] = ri
	}
}
