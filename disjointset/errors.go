package disjointset

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the bounds violation raised (as a panic) when an
	// element index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("disjointset: element index out of range")
	// ErrNegativeSize is raised (as a panic) when a set is constructed with n < 0.
	ErrNegativeSize = errors.New("disjointset: negative universe size")
	// ErrUnknownVariant is returned by ParseVariant for unrecognized names.
	ErrUnknownVariant = errors.New("disjointset: unknown variant")
)

// IndexError is the panic value for an out-of-range element index.
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op    string // method that received the index
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("disjointset: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// checkIndex panics with *IndexError unless 0 <= i < n.
func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Op: op, Index: i, Len: n})
	}
}
