// Package slice implements an iterator that traverses uni-directionally
// over a generic slice of elements.
//
// The iterator knows exactly how many elements it has left and implements
// the streaming.SizeHinter interface.
package slice

import (
	"context"

	"github.com/jake-scott/go-streaming"
)

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
}

// New returns an implementation of StreamingIterator that traverses
// over the provided slice.  Get returns pointers into s.
func New[T any](s []T) Iterator[T] {
	return Iterator[T]{
		s: s,
	}
}

// Advance moves the iterator to the next element of the underlying
// slice.  It returns the context's error if the context is cancelled.
func (r *Iterator[T]) Advance(ctx context.Context) error {
	if r.pos > len(r.s) {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.pos++
	return nil
}

// Get returns a pointer to the element of the underlying slice that the
// iterator refers to, or nil before the first Advance and after the end
// of the slice.
func (r *Iterator[T]) Get() *T {
	if r.pos == 0 || r.pos > len(r.s) {
		return nil
	}

	return &r.s[r.pos-1]
}

// SizeHint returns the exact number of elements left in the slice.
func (r *Iterator[T]) SizeHint() streaming.SizeHint {
	return streaming.Exact(max(len(r.s)-r.pos, 0))
}
