package streaming_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jake-scott/go-streaming"
	"github.com/jake-scott/go-streaming/iter/slice"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

var hundredInts = []int{
	89, 46, 43, 83, 87, 63, 48, 91, 75, 28,
	56, 21, 6, 12, 5, 39, 61, 63, 16, 23,
	81, 26, 25, 14, 9, 36, 67, 87, 30, 7,
	38, 41, 29, 13, 49, 89, 87, 34, 45, 64,
	62, 74, 70, 79, 62, 91, 4, 1, 80, 62,
	89, 17, 29, 33, 66, 3, 1, 50, 35, 86,
	74, 97, 12, 52, 72, 6, 84, 95, 31, 12,
	39, 49, 98, 11, 54, 34, 36, 7, 5, 87,
	22, 15, 20, 34, 50, 63, 43, 85, 74, 25,
	88, 7, 18, 49, 9, 26, 89, 36, 94, 60,
}

var hundredIntsEven = []int{
	46, 48, 28, 56, 6, 12, 16, 26, 14, 36,
	30, 38, 34, 64, 62, 74, 70, 62, 4, 80,
	62, 66, 50, 86, 74, 12, 52, 72, 6, 84,
	12, 98, 54, 34, 36, 22, 20, 34, 50, 74,
	88, 18, 26, 36, 94, 60,
}

const sumHundredInts = 4682

func isEven(i *int) bool {
	return *i%2 == 0
}

func ints(vs ...int) *slice.Iterator[int] {
	it := slice.New(vs)
	return &it
}

// drain advances it to exhaustion and returns copies of its elements.
func drain[T any](t *testing.T, it streaming.StreamingIterator[T]) []T {
	t.Helper()

	out := []T{}
	for v, err := range streaming.Values(context.Background(), it) {
		require.NoError(t, err)
		out = append(out, *v)
	}
	return out
}

// faulty yields vals, except that advance number failAt (counting from 1)
// fails with errBoom.  A failAt of zero never fails.
type faulty struct {
	vals     []int
	failAt   int
	advances int
	pos      int
}

func (f *faulty) Advance(context.Context) error {
	f.advances++
	if f.advances == f.failAt {
		return errBoom
	}
	if f.pos <= len(f.vals) {
		f.pos++
	}
	return nil
}

func (f *faulty) Get() *int {
	if f.pos == 0 || f.pos > len(f.vals) {
		return nil
	}
	return &f.vals[f.pos-1]
}
