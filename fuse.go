package streaming

import "context"

type fuseState int

const (
	fuseStart fuseState = iota
	fuseMiddle
	fuseEnd
)

// FuseIter guarantees that once its source is exhausted or fails, every
// further call reports exhaustion without touching the source again.
type FuseIter[T any] struct {
	it    StreamingIterator[T]
	state fuseState
}

// Fuse wraps it so that it is safe to advance after exhaustion or an error.
func Fuse[T any](it StreamingIterator[T]) *FuseIter[T] {
	return &FuseIter[T]{it: it}
}

// Advance advances the source unless it has already been exhausted.  An
// error from the source is returned once and ends the iteration.
func (f *FuseIter[T]) Advance(ctx context.Context) error {
	_, err := f.Next(ctx)
	return err
}

// Next advances the source and returns its new element, or nil once the
// source is exhausted.
func (f *FuseIter[T]) Next(ctx context.Context) (*T, error) {
	if f.state == fuseEnd {
		return nil, nil
	}

	e, err := Next(ctx, f.it)
	switch {
	case err != nil:
		f.state = fuseEnd
		return nil, err
	case e == nil:
		f.state = fuseEnd
	default:
		f.state = fuseMiddle
	}

	return e, nil
}

// Get returns the current element of the source, or nil before the first
// advance and after the end of the iteration.
func (f *FuseIter[T]) Get() *T {
	if f.state != fuseMiddle {
		return nil
	}
	return f.it.Get()
}

// SizeHint returns the size hint of the source.
func (f *FuseIter[T]) SizeHint() SizeHint {
	if f.state == fuseEnd {
		return Exact(0)
	}
	return HintOf(f.it)
}
