package streaming

import (
	"context"
	"fmt"
)

type emptyIter[T any] struct{}

// Empty returns an iterator that has no elements.
func Empty[T any]() StreamingIterator[T] {
	return emptyIter[T]{}
}

func (emptyIter[T]) Advance(context.Context) error { return nil }
func (emptyIter[T]) Get() *T                       { return nil }
func (emptyIter[T]) SizeHint() SizeHint            { return Exact(0) }

// ErrorIter fails with an error the first time it is advanced and is
// exhausted afterwards.  It can be returned in place of a real source when
// the source could not be opened.
type ErrorIter[T any] struct {
	err error
}

// Error returns an iterator whose first Advance returns err.
func Error[T any](err error) *ErrorIter[T] {
	return &ErrorIter[T]{err: err}
}

// Errorf behaves like fmt.Errorf but returns the error wrapped as an
// iterator.
func Errorf[T any](format string, a ...any) *ErrorIter[T] {
	return Error[T](fmt.Errorf(format, a...))
}

func (i *ErrorIter[T]) Advance(context.Context) error {
	err := i.err
	i.err = nil
	return err
}

func (i *ErrorIter[T]) Get() *T { return nil }
