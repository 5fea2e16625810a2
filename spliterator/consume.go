package spliterator

import "iter"

// ForEachRemaining calls fn for every remaining element of s, in order. It
// stops at the first error returned by either s or fn, and returns that
// error unchanged.
func ForEachRemaining[T any](s Spliterator[T], fn func(T) error) error {
	for {
		element, ok, err := s.TryAdvance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(element); err != nil {
			return err
		}
	}
}

// Collect returns all remaining elements of s.
func Collect[T any](s Spliterator[T]) ([]T, error) {
	var elements []T
	if n := ExactSizeIfKnown(s); n > 0 {
		elements = make([]T, 0, n)
	}
	err := ForEachRemaining(s, func(element T) error {
		elements = append(elements, element)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return elements, nil
}

// All returns an iterator over the remaining elements of s. If s reports an
// error, the iterator yields it once together with the zero value and then
// stops.
func All[T any](s Spliterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			element, ok, err := s.TryAdvance()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(element, nil) {
				return
			}
		}
	}
}
