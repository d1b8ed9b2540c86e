// Package bucket implements an iterator over the key/value pairs of a bolt
// bucket, in key order.
//
// Keys and values point into the memory map of the database:  they are only
// valid until the iterator is advanced and, like every bolt slice, only for
// the life of the transaction the iterator was opened in.
package bucket

import (
	"bytes"
	"context"
	"fmt"

	"github.com/boltdb/bolt"
)

// Pair is a key/value pair of a bucket.  Value is nil for nested buckets.
type Pair struct {
	Key   []byte
	Value []byte
}

// ErrBucketNotFound is returned by New if the named bucket does not exist.
type ErrBucketNotFound struct {
	Name string
}

func (e ErrBucketNotFound) Error() string {
	return fmt.Sprintf("bucket %q not found", e.Name)
}

// Option customizes an Iterator.
type Option func(i *Iterator)

// WithPrefix restricts the iterator to keys that start with prefix.
func WithPrefix(prefix []byte) Option {
	return func(i *Iterator) {
		i.prefix = bytes.Clone(prefix)
	}
}

// Iterator walks a bucket with a bolt cursor.
type Iterator struct {
	c       *bolt.Cursor
	prefix  []byte
	started bool
	done    bool
	pair    Pair
}

// New returns an iterator over the bucket called name, using the read or
// write transaction tx.
func New(tx *bolt.Tx, name []byte, opts ...Option) (*Iterator, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, ErrBucketNotFound{Name: string(name)}
	}

	i := &Iterator{c: b.Cursor()}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Advance moves the cursor to the next key.  It returns the context's error
// if the context is cancelled.
func (i *Iterator) Advance(ctx context.Context) error {
	if i.done {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var k, v []byte
	switch {
	case i.started:
		k, v = i.c.Next()
	case i.prefix != nil:
		k, v = i.c.Seek(i.prefix)
	default:
		k, v = i.c.First()
	}
	i.started = true

	if k == nil || !bytes.HasPrefix(k, i.prefix) {
		i.done = true
		i.pair = Pair{}
		return nil
	}

	i.pair = Pair{Key: k, Value: v}
	return nil
}

// Get returns the pair the cursor is positioned on.
func (i *Iterator) Get() *Pair {
	if !i.started || i.done {
		return nil
	}
	return &i.pair
}
