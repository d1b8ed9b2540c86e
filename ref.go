package streaming

import "context"

// Ref forwards every operation to an iterator it does not own.  It lets an
// iterator be lent to adaptors or consuming functions while the caller keeps
// using it afterwards.
type Ref[T any] struct {
	it StreamingIterator[T]
}

// ByRef returns a Ref to it.
//
// Example:
//
//	// count the first three elements, then carry on with it
//	n, err := streaming.Count(ctx, streaming.Take(streaming.ByRef(it), 3))
func ByRef[T any](it StreamingIterator[T]) *Ref[T] {
	return &Ref[T]{it: it}
}

// Advance advances the referenced iterator.
func (r *Ref[T]) Advance(ctx context.Context) error {
	return r.it.Advance(ctx)
}

// Get returns the current element of the referenced iterator.
func (r *Ref[T]) Get() *T {
	return r.it.Get()
}

// Next calls Next on the referenced iterator, preserving any override it has.
func (r *Ref[T]) Next(ctx context.Context) (*T, error) {
	return Next(ctx, r.it)
}

// SizeHint returns the size hint of the referenced iterator.
func (r *Ref[T]) SizeHint() SizeHint {
	return HintOf(r.it)
}
