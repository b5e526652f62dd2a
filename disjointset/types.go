package disjointset

import (
	"fmt"
	"strings"
)

// Set is the union-find capability shared by every variant.
// Indices are in [0, Len()); anything else panics with *IndexError.
type Set interface {
	// Union merges the classes containing i and j. No-op if they already share a root.
	Union(i, j int)
	// Find reports whether i and j currently resolve to the same root.
	Find(i, j int) bool
	// SetLabel returns the canonical representative of i's class.
	SetLabel(i int) int
	// Len returns the universe size N.
	Len() int
}

// Variant selects a Set implementation.
type Variant int

const (
	// Naive is the plain parent-chasing union-find.
	Naive Variant = iota
	// Fast is the one-step-compressing, priority-guided union-find.
	Fast
)

// Variants lists every known variant in declaration order.
var Variants = []Variant{Naive, Fast}

// String returns the lower-case name used by ParseVariant.
func (v Variant) String() string {
	switch v {
	case Naive:
		return "naive"
	case Fast:
		return "fast"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant maps "naive" or "fast" (any case, surrounding space ignored) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive":
		return Naive, nil
	case "fast":
		return Fast, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// New constructs a Set of n singleton classes using variant v.
// Panics with ErrNegativeSize if n < 0 and on an unknown variant.
func New(v Variant, n int) Set {
	switch v {
	case Naive:
		return NewNaive(n)
	case Fast:
		return NewFast(n)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownVariant, int(v)))
	}
}

// identity returns [0, 1, ..., n-1]; panics with ErrNegativeSize on n < 0.
func identity(n int) []int {
	if n < 0 {
		panic(ErrNegativeSize)
	}
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
