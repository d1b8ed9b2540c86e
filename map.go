package streaming

import "context"

// MapFunc is a generic function that takes the current element of an
// iterator and returns a transformed value, possibly of a different type.
//
// Example:
//
//	func domainName(s *string) string {
//	    return strings.SplitN(*s, "@", 2)[1]
//	}
type MapFunc[T, M any] func(*T) M

// MapRefFunc is a generic function that projects the current element of an
// iterator to a value it references, such as one of its fields.
//
// Example:
//
//	func key(p *bucket.Pair) *[]byte {
//	    return &p.Key
//	}
type MapRefFunc[T, M any] func(*T) *M

// MapIter transforms each element of its source and stores the result,
// which it owns until the next advance.
type MapIter[T, M any] struct {
	it     StreamingIterator[T]
	f      MapFunc[T, M]
	value  M
	valid  bool
	failed bool
}

// Map returns an iterator that yields f applied to each element of it.
// f is called exactly once for each element produced by the source.
func Map[T, M any](it StreamingIterator[T], f MapFunc[T, M]) *MapIter[T, M] {
	return &MapIter[T, M]{it: it, f: f}
}

// Advance advances the source and transforms its new element.
func (m *MapIter[T, M]) Advance(ctx context.Context) error {
	if m.failed {
		return nil
	}

	var zero M
	m.value, m.valid = zero, false

	e, err := Next(ctx, m.it)
	if err != nil {
		m.failed = true
		return err
	}
	if e != nil {
		m.value, m.valid = m.f(e), true
	}
	return nil
}

// Get returns the transformed value of the current element.
func (m *MapIter[T, M]) Get() *M {
	if !m.valid {
		return nil
	}
	return &m.value
}

// SizeHint returns the size hint of the source.
func (m *MapIter[T, M]) SizeHint() SizeHint {
	if m.failed {
		return Exact(0)
	}
	return HintOf(m.it)
}

// MapRefIter projects each element of its source without copying it.
type MapRefIter[T, M any] struct {
	it     StreamingIterator[T]
	f      MapRefFunc[T, M]
	failed bool
}

// MapRef returns an iterator whose elements are the values f returns for
// each element of it.  Unlike Map, f is called from Get and must not have
// side effects.
func MapRef[T, M any](it StreamingIterator[T], f MapRefFunc[T, M]) *MapRefIter[T, M] {
	return &MapRefIter[T, M]{it: it, f: f}
}

// Advance advances the source.
func (m *MapRefIter[T, M]) Advance(ctx context.Context) error {
	if m.failed {
		return nil
	}
	if err := m.it.Advance(ctx); err != nil {
		m.failed = true
		return err
	}
	return nil
}

// Get returns f applied to the current element of the source.
func (m *MapRefIter[T, M]) Get() *M {
	if m.failed {
		return nil
	}
	if e := m.it.Get(); e != nil {
		return m.f(e)
	}
	return nil
}

// SizeHint returns the size hint of the source.
func (m *MapRefIter[T, M]) SizeHint() SizeHint {
	if m.failed {
		return Exact(0)
	}
	return HintOf(m.it)
}
