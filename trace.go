package streaming

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// TraceFunc defines the function prototype of a tracing function.
// Per iterator functions can be configured using WithTraceFunc.
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to
// affect all traced iterators that do not set their own.
var DefaultTracer TraceFunc = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

var traceCounter atomic.Uint32

type tracer interface {
	subTracer(description string, v ...any) tracer
	msg(format string, v ...any)
	end()
}

type traceLog struct {
	begin       time.Time
	description string
	ids         []uint32
	subids      atomic.Uint32
	traceFunc   TraceFunc
}

func newTracer(id uint32, description string, f TraceFunc, v ...any) *traceLog {
	if f == nil {
		f = DefaultTracer
	}

	t := &traceLog{
		description: fmt.Sprintf(description, v...),
		ids:         []uint32{id},
		traceFunc:   f,
	}

	t.start()
	return t
}

// rootTracer returns a tracer that only serves as the parent of sub-tracers
// and does not trace anything itself.
func rootTracer(id uint32, description string, f TraceFunc, v ...any) *traceLog {
	if f == nil {
		f = DefaultTracer
	}

	return &traceLog{
		description: fmt.Sprintf(description, v...),
		ids:         []uint32{id},
		traceFunc:   f,
	}
}

func (t *traceLog) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *traceLog) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [iterator #%s] %s", t.begin.Format(time.RFC3339), t.id(), t.description)
}

func (t *traceLog) subTracer(description string, v ...any) tracer {
	subID := t.subids.Add(1)

	t2 := &traceLog{
		description: t.description + fmt.Sprintf(" / "+description, v...),
		ids:         append(slices.Clone(t.ids), subID),
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *traceLog) msg(format string, v ...any) {
	args := []any{
		time.Now().Format(time.RFC3339), t.id(), t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [iterator #%s] %s: "+format, args...)
}

func (t *traceLog) end() {
	t.traceFunc("%s: END [iterator #%s] %s (%s)", time.Now().Format(time.RFC3339), t.id(), t.description,
		time.Since(t.begin).Round(time.Microsecond))
}

// Traced reports the progress of its source through a TraceFunc without
// changing the elements it yields.
type Traced[T any] struct {
	it       StreamingIterator[T]
	mkTracer func() tracer
	t        tracer
	count    int
	done     bool
}

// Trace wraps it so that a START message is traced on its first advance,
// each error is traced as it occurs, and an END message is traced with the
// number of elements once the iteration finishes.
//
// Only the WithTraceFunc option applies to Trace.
func Trace[T any](it StreamingIterator[T], description string, opts ...StreamOption) *Traced[T] {
	var o streamOptions
	o.processOptions(opts...)

	id := traceCounter.Add(1)
	return newTraced(it, func() tracer {
		var zero T
		return newTracer(id, "(%T) %s", o.tracer, zero, description)
	})
}

func newTraced[T any](it StreamingIterator[T], mkTracer func() tracer) *Traced[T] {
	return &Traced[T]{it: it, mkTracer: mkTracer}
}

// Advance advances the source, tracing the start and end of the iteration.
func (t *Traced[T]) Advance(ctx context.Context) error {
	if t.done {
		return t.it.Advance(ctx)
	}
	if t.t == nil {
		t.t = t.mkTracer()
	}

	if err := t.it.Advance(ctx); err != nil {
		t.t.msg("advance failed after %d elements: %s", t.count, err)
		t.finish()
		return err
	}

	if t.it.Get() == nil {
		t.t.msg("exhausted after %d elements", t.count)
		t.finish()
		return nil
	}

	t.count++
	return nil
}

func (t *Traced[T]) finish() {
	t.done = true
	t.t.end()
}

// Get returns the current element of the source.
func (t *Traced[T]) Get() *T {
	return t.it.Get()
}

// SizeHint returns the size hint of the source.
func (t *Traced[T]) SizeHint() SizeHint {
	return HintOf(t.it)
}
