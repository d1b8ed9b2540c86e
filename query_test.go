package streaming_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/jake-scott/go-streaming"
	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input []int
		want  bool
		left  []int
	}{
		{name: "all even", input: []int{2, 4, 6}, want: true, left: []int{}},
		{name: "stops at first odd", input: []int{2, 3, 4, 6}, want: false, left: []int{4, 6}},
		{name: "empty", input: nil, want: true, left: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			it := streaming.Fuse[int](ints(tt.input...))
			got, err := streaming.All[int](ctx, it, isEven)
			assert.NoError(err)
			assert.Equal(tt.want, got)
			assert.Equal(tt.left, drain[int](t, it))
		})
	}
}

func TestAny(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	it := ints(1, 3, 4, 5)
	got, err := streaming.Any[int](ctx, it, isEven)
	assert.NoError(err)
	assert.True(got)
	assert.Equal(4, *it.Get())

	got, err = streaming.Any[int](ctx, ints(1, 3, 5), isEven)
	assert.NoError(err)
	assert.False(got)

	got, err = streaming.Any(ctx, streaming.Empty[int](), isEven)
	assert.NoError(err)
	assert.False(got)
}

func TestCount(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	n, err := streaming.Count[int](ctx, ints(hundredInts...))
	assert.NoError(err)
	assert.Equal(100, n)

	n, err = streaming.Count(ctx, streaming.Empty[int]())
	assert.NoError(err)
	assert.Equal(0, n)
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	it := ints(1, 3, 4, 5, 6)
	v, err := streaming.Find[int](ctx, it, isEven)
	assert.NoError(err)
	assert.Equal(4, *v)

	// the element found is the current element
	assert.Same(v, it.Get())

	v, err = streaming.Find[int](ctx, it, isEven)
	assert.NoError(err)
	assert.Equal(6, *v)

	v, err = streaming.Find[int](ctx, it, isEven)
	assert.NoError(err)
	assert.Nil(v)
}

func TestPosition(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	it := ints(1, 3, 4, 5, 6)
	pos, ok, err := streaming.Position[int](ctx, it, isEven)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(2, pos)

	// positions count from where the iterator was left
	pos, ok, err = streaming.Position[int](ctx, it, isEven)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(1, pos)

	_, ok, err = streaming.Position[int](ctx, ints(1, 3), isEven)
	assert.NoError(err)
	assert.False(ok)
}

func TestNth(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		n    int
		want *int
	}{
		{n: 0, want: ptr(10)},
		{n: 2, want: ptr(30)},
		{n: 3, want: nil},
		{n: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			v, err := streaming.Nth[int](ctx, ints(10, 20, 30), tt.n)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

// A source whose third advance fails must stop the query operations at
// exactly that point.
func TestQueriesShortCircuitOnError(t *testing.T) {
	ctx := context.Background()
	never := func(*int) bool { return false }
	always := func(*int) bool { return true }

	tests := []struct {
		name string
		run  func(t *testing.T, it *faulty) error
	}{
		{"Count", func(t *testing.T, it *faulty) error {
			n, err := streaming.Count[int](ctx, it)
			assert.Zero(t, n)
			return err
		}},
		{"All", func(t *testing.T, it *faulty) error {
			ok, err := streaming.All[int](ctx, it, always)
			assert.False(t, ok)
			return err
		}},
		{"Any", func(t *testing.T, it *faulty) error {
			_, err := streaming.Any[int](ctx, it, never)
			return err
		}},
		{"Find", func(t *testing.T, it *faulty) error {
			v, err := streaming.Find[int](ctx, it, never)
			assert.Nil(t, v)
			return err
		}},
		{"Position", func(t *testing.T, it *faulty) error {
			_, ok, err := streaming.Position[int](ctx, it, never)
			assert.False(t, ok)
			return err
		}},
		{"Nth", func(t *testing.T, it *faulty) error {
			_, err := streaming.Nth[int](ctx, it, 5)
			return err
		}},
		{"Reduce", func(t *testing.T, it *faulty) error {
			_, err := streaming.Reduce(ctx, it, 0, func(a int, i *int) (int, error) {
				return a + *i, nil
			})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := &faulty{vals: []int{1, 2, 3, 4, 5}, failAt: 3}
			assert.ErrorIs(t, tt.run(t, it), errBoom)
			assert.Equal(t, 3, it.advances)
		})
	}
}

func TestValues(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var got []int
	var gotErr error
	for v, err := range streaming.Values[int](ctx, &faulty{vals: []int{1, 2, 3}, failAt: 3}) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, *v)
	}
	assert.Equal([]int{1, 2}, got)
	assert.ErrorIs(gotErr, errBoom)

	// breaking out of the loop stops advancing
	it := &faulty{vals: []int{1, 2, 3}}
	for range streaming.Values[int](ctx, it) {
		break
	}
	assert.Equal(1, it.advances)
}

func TestReduce(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	add := func(a int, i *int) (int, error) {
		return a + *i, nil
	}

	// test starting at zero
	result, err := streaming.Reduce[int](ctx, ints(hundredInts...), 0, add)
	assert.NoError(err)
	assert.Equal(sumHundredInts, result)

	// test starting at a non-zero value, with a different result type
	addf := func(a float32, i *int) (float32, error) {
		return a + float32(*i), nil
	}
	result2, err := streaming.Reduce[int](ctx, ints(hundredInts...), 123, addf)
	assert.NoError(err)
	assert.IsType(float32(0), result2)
	assert.Equal(float32(sumHundredInts+123), result2)
}

func TestFailingReduceFunc(t *testing.T) {
	assert := assert.New(t)

	// Reduce func that doesn't like the number 66
	badReduceFunc := func(a int, i *int) (int, error) {
		if *i == 66 {
			return a, errBoom
		}
		return a + *i, nil
	}

	it := ints(hundredInts...)
	result, err := streaming.Reduce[int](context.Background(), it, 0, badReduceFunc)
	assert.ErrorIs(err, errBoom)
	assert.Zero(result)

	// stopped at the 66
	assert.Equal(66, *it.Get())
}
