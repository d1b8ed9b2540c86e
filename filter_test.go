package streaming_test

import (
	"context"
	"testing"

	"github.com/jake-scott/go-streaming"
	"github.com/stretchr/testify/assert"
)

func TestFilterInts(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		f     streaming.Predicate[int]
		want  []int
	}{
		{
			name:  "find even ints from short list",
			input: []int{1, 2, 3, 4, 5, 6},
			f:     isEven,
			want:  []int{2, 4, 6},
		},
		{
			name:  "find even ints from list",
			input: hundredInts,
			f:     isEven,
			want:  hundredIntsEven,
		},
		{
			name:  "find even ints from only odds",
			input: []int{1, 3, 5, 7, 9},
			f:     isEven,
			want:  []int{},
		},
		{
			name:  "empty list",
			input: []int{},
			f:     isEven,
			want:  []int{},
		},
		{
			name:  "null list",
			input: nil,
			f:     isEven,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain[int](t, streaming.Filter[int](ints(tt.input...), tt.f))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterSizeHint(t *testing.T) {
	assert := assert.New(t)

	f := streaming.Filter[int](ints(1, 2, 3), isEven)
	assert.Equal(streaming.SizeHint{Lower: 0, Upper: 3, Bounded: true}, f.SizeHint())

	f = streaming.Filter[int](&faulty{}, isEven)
	assert.Equal(streaming.Unbounded(0), f.SizeHint())
}

func TestFilterError(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &faulty{vals: []int{1, 2, 3, 4, 5, 6}, failAt: 3}
	f := streaming.Filter[int](src, isEven)

	v, err := streaming.Next[int](ctx, f)
	assert.NoError(err)
	assert.Equal(2, *v)

	// the third advance of the source fails while looking for the next even
	v, err = streaming.Next[int](ctx, f)
	assert.ErrorIs(err, errBoom)
	assert.Nil(v)

	// the error is terminal
	v, err = streaming.Next[int](ctx, f)
	assert.NoError(err)
	assert.Nil(v)
	assert.Equal(3, src.advances)
	assert.Equal(streaming.Exact(0), f.SizeHint())
}

func TestFilterGetForwardsSource(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := ints(1, 2, 3)
	f := streaming.Filter[int](src, isEven)
	assert.NoError(f.Advance(ctx))
	assert.Same(src.Get(), f.Get())
}
