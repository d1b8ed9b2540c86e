// Package channel implements an iterator that reads a data stream from
// the supplied channel.
package channel

import "context"

// Iterator traverses the elements of type T from a channel, until
// the channel is closed.
type Iterator[T any] struct {
	ch   <-chan T
	item T
	ok   bool
}

// New returns an implementation of StreamingIterator that traverses the
// provided channel until the channel is closed.
//
// The channel iterator does not support the SizeHinter interface.
func New[T any](ch <-chan T) Iterator[T] {
	return Iterator[T]{
		ch: ch,
	}
}

// Advance reads an item from the channel and stores the value, which can be
// retrieved using the Get() method.  Advance blocks until an item is read,
// the channel is closed or the context expires, in which case the context's
// error is returned.
func (i *Iterator[T]) Advance(ctx context.Context) error {
	var zero T
	i.item, i.ok = zero, false

	select {
	case item, ok := <-i.ch:
		// if ok is false, the read failed due to empty closed channel
		i.item, i.ok = item, ok
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns the value stored by the last successful Advance call,
// or nil if Advance has not been called or the channel is closed.
func (i *Iterator[T]) Get() *T {
	if !i.ok {
		return nil
	}
	return &i.item
}
