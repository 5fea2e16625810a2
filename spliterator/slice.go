package spliterator

// sliceCharacteristics are reported by every slice-backed Spliterator.
const sliceCharacteristics = Ordered | Sized | Subsized | Immutable

type sliceSpliterator[T any] struct {
	elements        []T
	characteristics Characteristics
	comparator      Comparator[T]
}

// FromSlice returns a Spliterator over the elements of s, in order. The
// slice is not copied and must not be modified while it is being traversed.
//
// TrySplit hands out the first half of the remaining elements, so that a
// slice of n elements can be split into up to n single-element parts.
func FromSlice[T any](s []T) Spliterator[T] {
	return &sliceSpliterator[T]{
		elements:        s,
		characteristics: sliceCharacteristics,
	}
}

// FromSortedSlice is like FromSlice, but additionally reports that s is
// sorted according to cmp. The caller is responsible for s actually being
// sorted.
func FromSortedSlice[T any](s []T, cmp Comparator[T]) Spliterator[T] {
	return &sliceSpliterator[T]{
		elements:        s,
		characteristics: sliceCharacteristics | Sorted,
		comparator:      cmp,
	}
}

func (s *sliceSpliterator[T]) TryAdvance() (T, bool, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false, nil
	}
	element := s.elements[0]
	s.elements = s.elements[1:]
	return element, true, nil
}

func (s *sliceSpliterator[T]) EstimateSize() int64 {
	return int64(len(s.elements))
}

func (s *sliceSpliterator[T]) TrySplit() (Spliterator[T], error) {
	if len(s.elements) < 2 {
		return nil, nil
	}
	mid := len(s.elements) / 2
	prefix := &sliceSpliterator[T]{
		elements:        s.elements[:mid:mid],
		characteristics: s.characteristics,
		comparator:      s.comparator,
	}
	s.elements = s.elements[mid:]
	return prefix, nil
}

func (s *sliceSpliterator[T]) Characteristics() Characteristics {
	return s.characteristics
}

func (s *sliceSpliterator[T]) Comparator() Comparator[T] {
	return s.comparator
}
