package streaming

import "context"

// TakeIter yields at most a fixed number of elements from its source.
type TakeIter[T any] struct {
	it   StreamingIterator[T]
	n    int
	done bool
}

// Take returns an iterator over the first n elements of it.  Once n
// elements have been produced the source is not advanced again, so Take(it,
// 0) never advances it.
func Take[T any](it StreamingIterator[T], n int) *TakeIter[T] {
	return &TakeIter[T]{it: it, n: max(n, 0)}
}

// Advance advances the source while elements remain to be taken.
func (t *TakeIter[T]) Advance(ctx context.Context) error {
	if t.done {
		return nil
	}
	if t.n == 0 {
		t.done = true
		return nil
	}

	if err := t.it.Advance(ctx); err != nil {
		t.done = true
		return err
	}
	t.n--
	return nil
}

// Get returns the current element of the source until n elements have been
// taken, and nil afterwards.
func (t *TakeIter[T]) Get() *T {
	if t.done {
		return nil
	}
	return t.it.Get()
}

// SizeHint clamps both bounds of the source's hint to the number of
// elements left to take.
func (t *TakeIter[T]) SizeHint() SizeHint {
	if t.done {
		return Exact(0)
	}

	h := HintOf(t.it)
	h.Lower = min(h.Lower, t.n)
	if h.Bounded {
		h.Upper = min(h.Upper, t.n)
	} else {
		h.Upper, h.Bounded = t.n, true
	}
	return h
}

// TakeWhileIter yields elements of its source until one fails a predicate.
type TakeWhileIter[T any] struct {
	it   StreamingIterator[T]
	p    Predicate[T]
	done bool
}

// TakeWhile returns an iterator over the leading elements of it for which
// p returns true.  The first element rejected by p is consumed from the
// source but never yielded, and the source is not advanced after it.
func TakeWhile[T any](it StreamingIterator[T], p Predicate[T]) *TakeWhileIter[T] {
	return &TakeWhileIter[T]{it: it, p: p}
}

// Advance advances the source and checks its new element against the
// predicate.
func (t *TakeWhileIter[T]) Advance(ctx context.Context) error {
	if t.done {
		return nil
	}

	e, err := Next(ctx, t.it)
	if err != nil {
		t.done = true
		return err
	}
	if e != nil && !t.p(e) {
		t.done = true
	}
	return nil
}

// Get returns the current element of the source, or nil once an element
// has been rejected.
func (t *TakeWhileIter[T]) Get() *T {
	if t.done {
		return nil
	}
	return t.it.Get()
}

// SizeHint returns the upper bound of the source while taking, and an
// exact hint of zero once done.
func (t *TakeWhileIter[T]) SizeHint() SizeHint {
	if t.done {
		return Exact(0)
	}
	h := HintOf(t.it)
	h.Lower = 0
	return h
}
