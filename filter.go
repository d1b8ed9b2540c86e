package streaming

import "context"

// FilterIter yields only the elements of its source that match a predicate.
type FilterIter[T any] struct {
	it     StreamingIterator[T]
	p      Predicate[T]
	failed bool
}

// Filter returns an iterator over the elements of it for which p returns
// true, in the same order.
//
// Example:
//
//	evens := streaming.Filter(it, func(i *int) bool {
//	    return *i%2 == 0
//	})
func Filter[T any](it StreamingIterator[T], p Predicate[T]) *FilterIter[T] {
	return &FilterIter[T]{it: it, p: p}
}

// Advance pulls elements from the source until one matches or the source is
// exhausted.
func (f *FilterIter[T]) Advance(ctx context.Context) error {
	if f.failed {
		return nil
	}

	for {
		e, err := Next(ctx, f.it)
		if err != nil {
			f.failed = true
			return err
		}
		if e == nil || f.p(e) {
			return nil
		}
	}
}

// Get returns the current element of the source.
func (f *FilterIter[T]) Get() *T {
	if f.failed {
		return nil
	}
	return f.it.Get()
}

// SizeHint keeps the upper bound of the source;  any number of elements may
// be rejected so the lower bound is zero.
func (f *FilterIter[T]) SizeHint() SizeHint {
	if f.failed {
		return Exact(0)
	}
	h := HintOf(f.it)
	h.Lower = 0
	return h
}
