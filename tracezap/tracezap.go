// Package tracezap sends the trace messages of traced iterators and streams
// to a zap logger.
package tracezap

import (
	"fmt"

	"github.com/jake-scott/go-streaming"
	"go.uber.org/zap"
)

// New returns a streaming.TraceFunc that logs each trace message at debug
// level on l.
//
// Example:
//
//	s := streaming.From(it,
//	    streaming.WithTracing(true),
//	    streaming.WithTraceFunc(tracezap.New(logger)))
func New(l *zap.Logger) streaming.TraceFunc {
	l = l.WithOptions(zap.AddCallerSkip(1))
	return func(format string, v ...any) {
		if !l.Core().Enabled(zap.DebugLevel) {
			return
		}
		l.Debug(fmt.Sprintf(format, v...))
	}
}
