package spliterator

import "math"

// UnknownSize is returned by EstimateSize when the number of remaining
// elements cannot be computed cheaply.
const UnknownSize int64 = math.MaxInt64

// Comparator orders two elements. It returns a negative number when a sorts
// before b, zero when they are equivalent and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Spliterator is a pull-based sequence of elements that can optionally be
// split into disjoint parts.
type Spliterator[T any] interface {
	// TryAdvance returns the next element. ok is false once the sequence is
	// exhausted. A non-nil error reports a fault of the underlying producer;
	// the element and ok must be ignored in that case.
	TryAdvance() (element T, ok bool, err error)

	// EstimateSize returns an estimate of the number of elements that
	// TryAdvance will still produce, or UnknownSize. If Characteristics
	// contains Sized, the estimate is exact.
	EstimateSize() int64

	// TrySplit attempts to partition the remaining elements. On success it
	// returns a Spliterator covering a prefix of the remaining elements and
	// the receiver continues with the rest. It returns nil when the
	// receiver cannot or will not be split.
	TrySplit() (Spliterator[T], error)

	// Characteristics reports structural properties of the sequence.
	Characteristics() Characteristics

	// Comparator returns the ordering the elements are sorted by, or nil
	// if the sequence has no such ordering.
	Comparator() Comparator[T]
}

// ExactSizeIfKnown returns the number of remaining elements of s if s
// reports the Sized characteristic, and -1 otherwise.
func ExactSizeIfKnown[T any](s Spliterator[T]) int64 {
	if !s.Characteristics().Has(Sized) {
		return -1
	}
	return s.EstimateSize()
}

// SpliteratorForTesting is an instantiation of Spliterator for which mocks
// are generated.
type SpliteratorForTesting Spliterator[int]
