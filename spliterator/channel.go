package spliterator

// FromChannel returns a Spliterator that reads elements from ch until it is
// closed. TryAdvance blocks while ch is open and empty. The size is unknown
// and the Spliterator never splits, as elements only become available one
// at a time.
func FromChannel[T any](ch <-chan T) Spliterator[T] {
	return FromPull(func() (T, bool) {
		v, ok := <-ch
		return v, ok
	})
}

type pullSpliterator[T any] struct {
	next func() (T, bool)
	done bool
}

// FromPull returns a Spliterator that obtains elements by calling next until
// it returns false. It is typically combined with iter.Pull. FromPull stops
// calling next after it has reported the end of the sequence once.
func FromPull[T any](next func() (T, bool)) Spliterator[T] {
	return &pullSpliterator[T]{next: next}
}

func (s *pullSpliterator[T]) TryAdvance() (T, bool, error) {
	if !s.done {
		if v, ok := s.next(); ok {
			return v, true, nil
		}
		s.done = true
	}
	var zero T
	return zero, false, nil
}

func (s *pullSpliterator[T]) EstimateSize() int64 {
	if s.done {
		return 0
	}
	return UnknownSize
}

func (s *pullSpliterator[T]) TrySplit() (Spliterator[T], error) {
	return nil, nil
}

func (s *pullSpliterator[T]) Characteristics() Characteristics {
	return Ordered
}

func (s *pullSpliterator[T]) Comparator() Comparator[T] {
	return nil
}
