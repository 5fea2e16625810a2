package spliterator

// FilterFunc decides whether an element should be kept. Return true to keep
// the element, false to drop it.
type FilterFunc[T any] func(T) bool

type filterSpliterator[T any] struct {
	source    Spliterator[T]
	predicate FilterFunc[T]
}

// Filter returns a Spliterator producing only the elements of source for
// which predicate returns true.
//
// The estimate reported by EstimateSize is that of source, which is an upper
// bound. Sized and Subsized are therefore cleared.
func Filter[T any](source Spliterator[T], predicate FilterFunc[T]) Spliterator[T] {
	return &filterSpliterator[T]{
		source:    source,
		predicate: predicate,
	}
}

func (s *filterSpliterator[T]) TryAdvance() (T, bool, error) {
	for {
		element, ok, err := s.source.TryAdvance()
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		if s.predicate(element) {
			return element, true, nil
		}
	}
}

func (s *filterSpliterator[T]) EstimateSize() int64 {
	return s.source.EstimateSize()
}

func (s *filterSpliterator[T]) TrySplit() (Spliterator[T], error) {
	prefix, err := s.source.TrySplit()
	if err != nil || prefix == nil {
		return nil, err
	}
	return &filterSpliterator[T]{
		source:    prefix,
		predicate: s.predicate,
	}, nil
}

func (s *filterSpliterator[T]) Characteristics() Characteristics {
	return s.source.Characteristics().Without(Sized | Subsized)
}

func (s *filterSpliterator[T]) Comparator() Comparator[T] {
	return s.source.Comparator()
}
