package streaming

import "context"

// ReduceFunc is a generic function that folds the current element of an
// iterator into an accumulated value, possibly of a different type.
//
// Example:
//
//	func sum(total int, i *int) (int, error) {
//	    return total + *i, nil
//	}
type ReduceFunc[T, A any] func(A, *T) (A, error)

// Reduce consumes it, calling f for each element with the value returned by
// the previous call, starting with initial.  The first error returned by the
// iterator or by f stops the reduction and is returned with the zero value
// of A.
func Reduce[T, A any](ctx context.Context, it StreamingIterator[T], initial A, f ReduceFunc[T, A]) (A, error) {
	acc := initial
	for {
		e, err := Next(ctx, it)
		if err == nil && e == nil {
			return acc, nil
		}
		if err == nil {
			acc, err = f(acc, e)
		}
		if err != nil {
			var zero A
			return zero, err
		}
	}
}
