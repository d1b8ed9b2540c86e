package streaming

import (
	"context"
	"iter"
)

// All advances it until it is exhausted or an element does not match p.  It
// returns false as soon as an element does not match, or true if every
// element matched.  An error from the iterator is returned immediately.
func All[T any](ctx context.Context, it StreamingIterator[T], p Predicate[T]) (bool, error) {
	for {
		e, err := Next(ctx, it)
		if err != nil {
			return false, err
		}
		if e == nil {
			return true, nil
		}
		if !p(e) {
			return false, nil
		}
	}
}

// Any returns true as soon as an element of it matches p.
func Any[T any](ctx context.Context, it StreamingIterator[T], p Predicate[T]) (bool, error) {
	all, err := All(ctx, it, not(p))
	if err != nil {
		return false, err
	}
	return !all, nil
}

// Count consumes it and returns the number of elements it produced.  If the
// iterator fails, the error is returned without a partial count.
func Count[T any](ctx context.Context, it StreamingIterator[T]) (int, error) {
	count := 0
	for {
		e, err := Next(ctx, it)
		if err != nil {
			return 0, err
		}
		if e == nil {
			return count, nil
		}
		count++
	}
}

// Find advances it until an element matches p and returns that element, or
// nil if the iterator was exhausted first.
//
// The returned element belongs to it and is valid until it is advanced.
func Find[T any](ctx context.Context, it StreamingIterator[T], p Predicate[T]) (*T, error) {
	for {
		if err := it.Advance(ctx); err != nil {
			return nil, err
		}
		e := it.Get()
		if e == nil || p(e) {
			break
		}
	}

	return it.Get(), nil
}

// Position is like Find but returns the zero-based index of the first
// matching element.  The second return value is false if no element matched.
func Position[T any](ctx context.Context, it StreamingIterator[T], p Predicate[T]) (int, bool, error) {
	for pos := 0; ; pos++ {
		e, err := Next(ctx, it)
		if err != nil {
			return 0, false, err
		}
		if e == nil {
			return 0, false, nil
		}
		if p(e) {
			return pos, true, nil
		}
	}
}

// Nth skips n elements of it and returns the one after them, so Nth(ctx,
// it, 0) is equivalent to Next(ctx, it).  Nil is returned if the iterator is
// exhausted before then.
func Nth[T any](ctx context.Context, it StreamingIterator[T], n int) (*T, error) {
	for ; n > 0; n-- {
		if err := it.Advance(ctx); err != nil {
			return nil, err
		}
		if it.Get() == nil {
			return nil, nil
		}
	}

	return Next(ctx, it)
}

// Values returns a single-use sequence that drives it and yields each
// element.  If the iterator fails, the error is yielded with a nil element
// and the sequence ends.
//
// The yielded element is only valid during the loop body iteration.
//
// Example:
//
//	for v, err := range streaming.Values(ctx, it) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(*v)
//	}
func Values[T any](ctx context.Context, it StreamingIterator[T]) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		for {
			e, err := Next(ctx, it)
			if err != nil {
				yield(nil, err)
				return
			}
			if e == nil {
				return
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}
