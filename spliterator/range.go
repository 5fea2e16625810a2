package spliterator

import (
	"cmp"
	"math"
)

type rangeSpliterator struct {
	next, end int64
}

// Range returns a Spliterator producing the consecutive values start,
// start+1, ..., end-1. It is empty if end <= start.
//
// A range holding more than math.MaxInt64 values, such as
// Range(math.MinInt64, math.MaxInt64), reports UnknownSize and isn't Sized
// until splitting has made it small enough.
func Range(start, end int64) Spliterator[int64] {
	if end < start {
		end = start
	}
	return &rangeSpliterator{next: start, end: end}
}

// remaining returns the number of values left. It cannot overflow, as
// end >= next always holds.
func (s *rangeSpliterator) remaining() uint64 {
	return uint64(s.end) - uint64(s.next)
}

func (s *rangeSpliterator) TryAdvance() (int64, bool, error) {
	if s.next >= s.end {
		return 0, false, nil
	}
	v := s.next
	s.next++
	return v, true, nil
}

func (s *rangeSpliterator) EstimateSize() int64 {
	if remaining := s.remaining(); remaining < math.MaxInt64 {
		return int64(remaining)
	}
	return UnknownSize
}

func (s *rangeSpliterator) TrySplit() (Spliterator[int64], error) {
	remaining := s.remaining()
	if remaining < 2 {
		return nil, nil
	}
	mid := int64(uint64(s.next) + remaining/2)
	prefix := &rangeSpliterator{next: s.next, end: mid}
	s.next = mid
	return prefix, nil
}

func (s *rangeSpliterator) Characteristics() Characteristics {
	if s.remaining() >= math.MaxInt64 {
		return Ordered | Distinct | Sorted | NonNull | Immutable
	}
	return Ordered | Distinct | Sorted | Sized | NonNull | Immutable | Subsized
}

func (s *rangeSpliterator) Comparator() Comparator[int64] {
	return cmp.Compare[int64]
}
