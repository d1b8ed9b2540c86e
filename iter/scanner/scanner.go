// Package scanner implements a stream tokenizer iterator.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
//
// The elements are the scanner's own token bytes, which the scanner
// overwrites on the next call to Scan, so they are only valid until the
// iterator is advanced.  Copy them (eg. with bytes.Clone or
// streaming.Map) to keep them.
package scanner

import (
	"context"
	"fmt"
)

// Iterator wraps a bufio.Scanner to traverse over a stream of tokens
// such as words or lines read from an io.Reader.
//
// Iterator does not support the SizeHinter interface.
type Iterator struct {
	scanner Scanner
	token   []byte
	ok      bool
}

// Scanner is an interface defining a subset of the methods exposed by
// bufio.Scanner, and is here primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Bytes() []byte
	Err() error
}

// ErrTooManyTokens is returned in response to a panic in the
// scanner.Scan() method, the result of too many tokens being returned without
// the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	} else {
		return fmt.Sprintf("too many tokens: %s", e.err)
	}
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// New returns an implementation of StreamingIterator that uses
// bufio.Scanner to traverse through tokens such as words or lines from an
// io.Reader such as a file.
func New(scanner Scanner) Iterator {
	return Iterator{
		scanner: scanner,
	}
}

// Advance advances the iterator to the next token by calling
// Scanner.Scan().  At the end of the input the iterator is exhausted and
// Advance returns the scanner's error, if any.
// If the scanner panics, Advance returns ErrTooManyTokens with the message
// from the scanner.  A cancelled context is reported before scanning.
func (i *Iterator) Advance(ctx context.Context) (err error) {
	i.token, i.ok = nil, false

	defer func() {
		switch perr := recover().(type) {
		default:
			err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", perr)}
		case error:
			err = ErrTooManyTokens{err: perr}
		case nil:
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !i.scanner.Scan() {
		return i.scanner.Err()
	}

	i.token, i.ok = i.scanner.Bytes(), true
	return nil
}

// Get returns the most recent token returned by the scanner during a call
// to Advance().  The bytes belong to the scanner.
func (i *Iterator) Get() *[]byte {
	if !i.ok {
		return nil
	}
	return &i.token
}
