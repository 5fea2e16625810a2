package spliterator

// TransformFunc converts a single element.
type TransformFunc[In, Out any] func(In) Out

type mapSpliterator[In, Out any] struct {
	source Spliterator[In]
	fn     TransformFunc[In, Out]
}

// Map returns a Spliterator that applies fn to every element of source.
// Splitting, size and encounter order are those of source. Sorted and
// Distinct are not retained, as fn may change how elements compare.
func Map[In, Out any](source Spliterator[In], fn TransformFunc[In, Out]) Spliterator[Out] {
	return &mapSpliterator[In, Out]{
		source: source,
		fn:     fn,
	}
}

func (s *mapSpliterator[In, Out]) TryAdvance() (Out, bool, error) {
	element, ok, err := s.source.TryAdvance()
	if err != nil || !ok {
		var zero Out
		return zero, false, err
	}
	return s.fn(element), true, nil
}

func (s *mapSpliterator[In, Out]) EstimateSize() int64 {
	return s.source.EstimateSize()
}

func (s *mapSpliterator[In, Out]) TrySplit() (Spliterator[Out], error) {
	prefix, err := s.source.TrySplit()
	if err != nil || prefix == nil {
		return nil, err
	}
	return &mapSpliterator[In, Out]{
		source: prefix,
		fn:     s.fn,
	}, nil
}

func (s *mapSpliterator[In, Out]) Characteristics() Characteristics {
	return s.source.Characteristics().Without(Sorted | Distinct | NonNull)
}

func (s *mapSpliterator[In, Out]) Comparator() Comparator[Out] {
	return nil
}
