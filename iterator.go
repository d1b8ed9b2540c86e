package streaming

import (
	"context"
)

// StreamingIterator is a generic interface for fallible, one-directional
// traversal where only the current element is observable.
//
// Advance must be called before the first call to Get.  The value returned
// by Get points into storage owned by the iterator and is only valid until
// the next call to Advance;  callers that need to keep it must copy it
// (see Cloned).
type StreamingIterator[T any] interface {
	// Advance moves the iterator to the next element.  It may block, and
	// returns a non-nil error if the element could not be produced.  After
	// an error or after exhaustion the behaviour of further calls depends on
	// the implementation, unless the iterator is wrapped by Fuse.
	Advance(ctx context.Context) error

	// Get returns the current element, or nil if the iterator is exhausted.
	// Get does not change the state of the iterator and returns the same
	// view until Advance is called again.
	Get() *T
}

// Nexter can be implemented by an iterator that provides its own version of
// Next, for example to avoid a second state check in Get.  Next(ctx, it)
// uses it when available.
type Nexter[T any] interface {
	Next(ctx context.Context) (*T, error)
}

// SizeHint is an advisory bound on the number of elements an iterator has
// left.  Upper is only meaningful when Bounded is true.
//
// Size hints are never used for correctness.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Unbounded returns a hint with a lower bound and no known upper bound.
func Unbounded(lower int) SizeHint {
	return SizeHint{Lower: lower}
}

// Exact returns a hint for an iterator that knows it has n elements left.
func Exact(n int) SizeHint {
	return SizeHint{Lower: n, Upper: n, Bounded: true}
}

// SizeHinter is an interface that can be implemented by an iterator that
// can estimate how many elements it has left.
type SizeHinter interface {
	SizeHint() SizeHint
}

// Predicate is a generic function type that receives the current element
// of an iterator and returns true if the element matches.
//
// Example:
//
//	func isEven(i *int) bool {
//	    return *i%2 == 0
//	}
type Predicate[T any] func(*T) bool

func not[T any](p Predicate[T]) Predicate[T] {
	return func(t *T) bool {
		return !p(t)
	}
}

// Next advances it and returns the new current element, nil at exhaustion
// or the error returned by Advance.
func Next[T any](ctx context.Context, it StreamingIterator[T]) (*T, error) {
	if n, ok := it.(Nexter[T]); ok {
		return n.Next(ctx)
	}

	if err := it.Advance(ctx); err != nil {
		return nil, err
	}
	return it.Get(), nil
}

// HintOf returns the size hint of it, or an unbounded hint with a lower
// bound of zero if it does not implement SizeHinter.
func HintOf[T any](it StreamingIterator[T]) SizeHint {
	if sh, ok := it.(SizeHinter); ok {
		return sh.SizeHint()
	}
	return SizeHint{}
}

// Cloned returns a shallow copy of the current element of it, which remains
// valid after the iterator is advanced.  The second return value is false
// if there is no current element.
//
// Elements that reference iterator owned buffers (such as []byte items)
// need a deep copy by the caller.
func Cloned[T any](it StreamingIterator[T]) (T, bool) {
	p := it.Get()
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
