package spliterator

type failingSpliterator[T any] struct {
	elements []T
	err      error
}

// Failing returns a Spliterator that produces elements and then reports err
// from every further call to TryAdvance. If err is nil it behaves like
// FromSlice without the ability to split.
//
// It is useful for testing how consumers handle faults of the underlying
// producer.
func Failing[T any](elements []T, err error) Spliterator[T] {
	return &failingSpliterator[T]{
		elements: elements,
		err:      err,
	}
}

func (s *failingSpliterator[T]) TryAdvance() (T, bool, error) {
	var zero T
	if len(s.elements) == 0 {
		return zero, false, s.err
	}
	element := s.elements[0]
	s.elements = s.elements[1:]
	return element, true, nil
}

func (s *failingSpliterator[T]) EstimateSize() int64 {
	return int64(len(s.elements))
}

func (s *failingSpliterator[T]) TrySplit() (Spliterator[T], error) {
	return nil, nil
}

func (s *failingSpliterator[T]) Characteristics() Characteristics {
	return Ordered
}

func (s *failingSpliterator[T]) Comparator() Comparator[T] {
	return nil
}
