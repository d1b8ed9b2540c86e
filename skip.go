package streaming

import "context"

// SkipIter discards a fixed number of elements from the start of its source.
type SkipIter[T any] struct {
	it   StreamingIterator[T]
	n    int
	done bool // source ran out while skipping, or failed
}

// Skip returns an iterator that yields the elements of it after the first
// n.  If it has n or fewer elements the result is empty.
func Skip[T any](it StreamingIterator[T], n int) *SkipIter[T] {
	return &SkipIter[T]{it: it, n: max(n, 0)}
}

// Advance discards any elements still to be skipped and then advances the
// source once more.
func (s *SkipIter[T]) Advance(ctx context.Context) error {
	if s.done {
		return nil
	}

	for ; s.n > 0; s.n-- {
		e, err := Next(ctx, s.it)
		if err != nil {
			s.done = true
			return err
		}
		if e == nil {
			s.n, s.done = 0, true
			return nil
		}
	}

	if err := s.it.Advance(ctx); err != nil {
		s.done = true
		return err
	}
	return nil
}

// Get returns the current element of the source.
func (s *SkipIter[T]) Get() *T {
	if s.done {
		return nil
	}
	return s.it.Get()
}

// SizeHint reduces both bounds of the source's hint by the number of
// elements still to be skipped.
func (s *SkipIter[T]) SizeHint() SizeHint {
	if s.done {
		return Exact(0)
	}
	h := HintOf(s.it)
	h.Lower = max(h.Lower-s.n, 0)
	if h.Bounded {
		h.Upper = max(h.Upper-s.n, 0)
	}
	return h
}

// SkipWhileIter discards the longest prefix of its source whose elements
// match a predicate.
type SkipWhileIter[T any] struct {
	it     StreamingIterator[T]
	p      Predicate[T]
	done   bool
	failed bool
}

// SkipWhile returns an iterator that skips the leading elements of it for
// which p returns true and then yields every remaining element, whether or
// not it matches.
func SkipWhile[T any](it StreamingIterator[T], p Predicate[T]) *SkipWhileIter[T] {
	return &SkipWhileIter[T]{it: it, p: p}
}

// Advance skips the matching prefix on the first call, and advances the
// source on every later call.
func (s *SkipWhileIter[T]) Advance(ctx context.Context) error {
	if s.failed {
		return nil
	}

	var err error
	if !s.done {
		s.done = true
		_, err = Find(ctx, s.it, not(s.p))
	} else {
		err = s.it.Advance(ctx)
	}

	if err != nil {
		s.failed = true
	}
	return err
}

// Get returns the current element of the source.
func (s *SkipWhileIter[T]) Get() *T {
	if s.failed {
		return nil
	}
	return s.it.Get()
}

// SizeHint returns the hint of the source, with a lower bound of zero
// until the prefix has been skipped.
func (s *SkipWhileIter[T]) SizeHint() SizeHint {
	if s.failed {
		return Exact(0)
	}
	h := HintOf(s.it)
	if !s.done {
		h.Lower = 0
	}
	return h
}
