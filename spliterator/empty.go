package spliterator

type emptySpliterator[T any] struct{}

// Empty returns a Spliterator that doesn't produce any elements. It can be
// used as a placeholder or as a mock source.
func Empty[T any]() Spliterator[T] {
	return emptySpliterator[T]{}
}

func (emptySpliterator[T]) TryAdvance() (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (emptySpliterator[T]) EstimateSize() int64 {
	return 0
}

func (emptySpliterator[T]) TrySplit() (Spliterator[T], error) {
	return nil, nil
}

func (emptySpliterator[T]) Characteristics() Characteristics {
	return Sized | Subsized | Immutable
}

func (emptySpliterator[T]) Comparator() Comparator[T] {
	return nil
}
