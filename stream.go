package streaming

import (
	"context"
	"iter"
)

// StreamOption provides a mechanism to customize a Stream and the streams
// derived from it.
type StreamOption func(o *streamOptions)

type streamOptions struct {
	tracing     bool
	tracer      TraceFunc
	description string
}

// WithTracing enables tracing for the stream.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to stderr.
//
// Every adaptor applied to a traced stream reports its own START, MSG and
// END messages, numbered beneath the stream's trace id.
func WithTracing(enable bool) StreamOption {
	return func(o *streamOptions) {
		o.tracing = enable
	}
}

// WithTraceFunc sets the trace function.  Use WithTracing to enable or
// disable tracing of a Stream.
func WithTraceFunc(f TraceFunc) StreamOption {
	return func(o *streamOptions) {
		o.tracer = f
	}
}

// WithDescription sets the description that prefixes the trace messages of
// a Stream.
func WithDescription(description string) StreamOption {
	return func(o *streamOptions) {
		o.description = description
	}
}

func (o *streamOptions) processOptions(opts ...StreamOption) {
	for _, f := range opts {
		f(o)
	}
}

// Stream wraps a StreamingIterator to provide the adaptors and query
// operations as methods, so that they can be chained:
//
//	n, err := streaming.From(it).Filter(isEven).Skip(2).Take(10).Count(ctx)
//
// A Stream is itself a StreamingIterator.  Adaptors that change the element
// type are only available as functions (MapStream, MapRefStream) due to
// limitations of Golang's generic syntax.
type Stream[T any] struct {
	it   StreamingIterator[T]
	opts streamOptions
	t    *traceLog
}

// From instantiates a Stream from an iterator and an optional set of
// options.  Streams derived from it inherit the options.
func From[T any](it StreamingIterator[T], opts ...StreamOption) *Stream[T] {
	s := &Stream[T]{it: it}
	s.opts.processOptions(opts...)

	if s.opts.tracing {
		description := s.opts.description
		if description == "" {
			description = "stream"
		}

		var zero T
		s.t = rootTracer(traceCounter.Add(1), "(%T) %s", s.opts.tracer, zero, description)
		s.it = newTraced(it, func() tracer {
			return s.t.subTracer("source")
		})
	}

	return s
}

func nextStream[T, U any](s *Stream[T], it StreamingIterator[U], name string, v ...any) *Stream[U] {
	n := &Stream[U]{
		it:   it,
		opts: s.opts,
		t:    s.t,
	}

	if s.t != nil {
		n.it = newTraced(it, func() tracer {
			return s.t.subTracer(name, v...)
		})
	}

	return n
}

// Iterator returns the underlying iterator of the stream.
func (s *Stream[T]) Iterator() StreamingIterator[T] {
	return s.it
}

// Advance advances the underlying iterator.
func (s *Stream[T]) Advance(ctx context.Context) error {
	return s.it.Advance(ctx)
}

// Get returns the current element of the underlying iterator.
func (s *Stream[T]) Get() *T {
	return s.it.Get()
}

// Next advances the underlying iterator and returns its new element.
func (s *Stream[T]) Next(ctx context.Context) (*T, error) {
	return Next(ctx, s.it)
}

// SizeHint returns the size hint of the underlying iterator.
func (s *Stream[T]) SizeHint() SizeHint {
	return HintOf(s.it)
}

// Filter is the OO version of Filter().
func (s *Stream[T]) Filter(p Predicate[T]) *Stream[T] {
	return nextStream[T, T](s, Filter(s.it, p), "Filter")
}

// Fuse is the OO version of Fuse().
func (s *Stream[T]) Fuse() *Stream[T] {
	return nextStream[T, T](s, Fuse(s.it), "Fuse")
}

// Map is the OO version of Map().  It can only be used when f returns a
// value of the stream's element type;  use MapStream otherwise.
func (s *Stream[T]) Map(f MapFunc[T, T]) *Stream[T] {
	return MapStream(s, f)
}

// MapRef is the OO version of MapRef().  It can only be used when f returns
// a value of the stream's element type;  use MapRefStream otherwise.
func (s *Stream[T]) MapRef(f MapRefFunc[T, T]) *Stream[T] {
	return MapRefStream(s, f)
}

// Skip is the OO version of Skip().
func (s *Stream[T]) Skip(n int) *Stream[T] {
	return nextStream[T, T](s, Skip(s.it, n), "Skip(%d)", n)
}

// SkipWhile is the OO version of SkipWhile().
func (s *Stream[T]) SkipWhile(p Predicate[T]) *Stream[T] {
	return nextStream[T, T](s, SkipWhile(s.it, p), "SkipWhile")
}

// Take is the OO version of Take().
func (s *Stream[T]) Take(n int) *Stream[T] {
	return nextStream[T, T](s, Take(s.it, n), "Take(%d)", n)
}

// TakeWhile is the OO version of TakeWhile().
func (s *Stream[T]) TakeWhile(p Predicate[T]) *Stream[T] {
	return nextStream[T, T](s, TakeWhile(s.it, p), "TakeWhile")
}

// ByRef returns a stream that borrows s:  adaptors applied to the returned
// stream advance s, and s remains usable once they are dropped.
func (s *Stream[T]) ByRef() *Stream[T] {
	return nextStream[T, T](s, ByRef[T](s), "ByRef")
}

// All is the OO version of All().
func (s *Stream[T]) All(ctx context.Context, p Predicate[T]) (bool, error) {
	return All(ctx, s.it, p)
}

// Any is the OO version of Any().
func (s *Stream[T]) Any(ctx context.Context, p Predicate[T]) (bool, error) {
	return Any(ctx, s.it, p)
}

// Count is the OO version of Count().
func (s *Stream[T]) Count(ctx context.Context) (int, error) {
	return Count(ctx, s.it)
}

// Find is the OO version of Find().
func (s *Stream[T]) Find(ctx context.Context, p Predicate[T]) (*T, error) {
	return Find(ctx, s.it, p)
}

// Position is the OO version of Position().
func (s *Stream[T]) Position(ctx context.Context, p Predicate[T]) (int, bool, error) {
	return Position(ctx, s.it, p)
}

// Nth is the OO version of Nth().
func (s *Stream[T]) Nth(ctx context.Context, n int) (*T, error) {
	return Nth(ctx, s.it, n)
}

// Values is the OO version of Values().
func (s *Stream[T]) Values(ctx context.Context) iter.Seq2[*T, error] {
	return Values(ctx, s.it)
}

// MapStream is the non-OO version of Stream.Map().  It must be used in the
// case where the map function returns values of a different type than the
// stream's elements.
func MapStream[T, M any](s *Stream[T], f MapFunc[T, M]) *Stream[M] {
	return nextStream[T, M](s, Map(s.it, f), "Map")
}

// MapRefStream is the non-OO version of Stream.MapRef().
func MapRefStream[T, M any](s *Stream[T], f MapRefFunc[T, M]) *Stream[M] {
	return nextStream[T, M](s, MapRef(s.it, f), "MapRef")
}
