package buffer

import (
	"iter"
	"math"

	"github.com/MasterOfBinary/splitbatch/spliterator"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Splitter groups the elements of a source Spliterator into slices. It
// implements spliterator.Spliterator[[]T], so it can be consumed with the
// helpers in package spliterator or traversed in parallel with package
// stream.
//
// To create a new Splitter, call Buffer or New. Like any Spliterator, a
// Splitter is not safe for concurrent use, but the Splitter returned by
// TrySplit may be used concurrently with its parent.
type Splitter[T any] struct {
	source          spliterator.Spliterator[T]
	minSize         int
	preferredLength int
	logger          Logger
	stats           StatsCollector

	// preBuffer is nil when minSize is 1, as no remainder can be
	// smaller than a single element.
	preBuffer *preBuffer[T]
}

var _ spliterator.Spliterator[[]int] = (*Splitter[int])(nil)

// Buffer returns a Splitter that groups the elements of source into slices
// of preferredLength elements, absorbing a trailing remainder of fewer than
// minSize elements into the preceding group.
//
// An InvalidArgument error is returned if minSize or preferredLength is
// smaller than 1. If source is empty, the Splitter produces no groups.
func Buffer[T any](source spliterator.Spliterator[T], minSize, preferredLength int) (*Splitter[T], error) {
	return New(source, &Options{
		Config: NewConstantConfig(&ConfigValues{
			MinSize:         minSize,
			PreferredLength: preferredLength,
		}),
	})
}

// New creates a Splitter using the provided options. If opts is nil, or
// any of its fields are not set, defaults are used as described in Options.
func New[T any](source spliterator.Spliterator[T], opts *Options) (*Splitter[T], error) {
	if source == nil {
		return nil, status.Error(codes.InvalidArgument, "Source cannot be nil")
	}

	opts = opts.WithDefaults()
	values := opts.Config.Get()
	if err := values.Validate(); err != nil {
		return nil, err
	}
	if fixed := fixConfig(values); fixed != values {
		opts.Logger.Warn("MinSize %d exceeds PreferredLength %d, reducing MinSize to %d", values.MinSize, values.PreferredLength, fixed.MinSize)
		values = fixed
	}

	opts.Logger.Debug("Buffering source with characteristics %s into groups of %d elements, with a minimum of %d", source.Characteristics(), values.PreferredLength, values.MinSize)
	return newSplitter(source, values, opts.Logger, opts.Stats), nil
}

// Seq groups the elements of seq like Buffer does, returning the groups as
// an iterator. The iterator can be ranged over multiple times if seq can,
// producing the same groups each time.
func Seq[T any](seq iter.Seq[T], minSize, preferredLength int) (iter.Seq[[]T], error) {
	values := ConfigValues{
		MinSize:         minSize,
		PreferredLength: preferredLength,
	}
	if err := values.Validate(); err != nil {
		return nil, err
	}
	values = fixConfig(values)

	return func(yield func([]T) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		s := newSplitter(spliterator.FromPull(next), values, &NoOpLogger{}, &NoOpStatsCollector{})
		for {
			// FromPull never reports an error.
			group, ok, _ := s.TryAdvance()
			if !ok || !yield(group) {
				return
			}
		}
	}, nil
}

func newSplitter[T any](source spliterator.Spliterator[T], values ConfigValues, logger Logger, stats StatsCollector) *Splitter[T] {
	s := &Splitter[T]{
		source:          source,
		minSize:         values.MinSize,
		preferredLength: values.PreferredLength,
		logger:          logger,
		stats:           stats,
	}
	if values.MinSize > 1 {
		s.preBuffer = newPreBuffer[T]()
	}
	return s
}

// Config returns the batching parameters in effect, after MinSize has been
// reduced to PreferredLength if necessary.
func (s *Splitter[T]) Config() ConfigValues {
	return ConfigValues{
		MinSize:         s.minSize,
		PreferredLength: s.preferredLength,
	}
}

// TryAdvance returns the next group. ok is false once the source and any
// elements read ahead are exhausted.
//
// If the source returns an error, the group being assembled and all
// elements read ahead are discarded, and the error is returned unchanged.
func (s *Splitter[T]) TryAdvance() ([]T, bool, error) {
	group := make([]T, 0, s.groupCapacity())
	if s.preBuffer != nil {
		group = s.preBuffer.drainTo(group)
	}

	// When the elements read ahead already fill the group, the source
	// hasn't been observed to be exhausted.
	hasElements := true
	for len(group) < s.preferredLength {
		element, ok, err := s.source.TryAdvance()
		if err != nil {
			return s.fail(err)
		}
		if !ok {
			hasElements = false
			break
		}
		group = append(group, element)
	}

	if s.preBuffer != nil && hasElements {
		// Read ahead to determine whether enough elements remain
		// to form another group of at least minSize elements.
		for i := 0; i < s.minSize; i++ {
			element, ok, err := s.source.TryAdvance()
			if err != nil {
				return s.fail(err)
			}
			if !ok {
				hasElements = false
				break
			}
			s.preBuffer.push(element)
		}
		if !hasElements {
			if absorbed := s.preBuffer.len(); absorbed > 0 {
				group = s.preBuffer.drainTo(group)
				s.stats.RecordAbsorption(absorbed)
				s.logger.Debug("Absorbed %d trailing elements into final group of %d elements", absorbed, len(group))
			}
		}
	}

	if len(group) == 0 {
		return nil, false, nil
	}
	s.stats.RecordGroup(len(group))
	return group, true, nil
}

// groupCapacity returns the capacity to allocate for the next group. It
// is bounded by maxGroupCapacity, so that large values of preferredLength
// only cost memory once elements actually arrive.
func (s *Splitter[T]) groupCapacity() int {
	capacity := min(int64(s.preferredLength), maxGroupCapacity)
	if s.preBuffer != nil {
		capacity += min(int64(s.minSize-1), maxGroupCapacity)
	}
	if n := spliterator.ExactSizeIfKnown(s.source); n >= 0 && n < capacity {
		capacity = n
		if s.preBuffer != nil {
			capacity += int64(s.preBuffer.len())
		}
	}
	return int(min(capacity, maxGroupCapacity))
}

func (s *Splitter[T]) fail(err error) ([]T, bool, error) {
	discarded := 0
	if s.preBuffer != nil {
		discarded = s.preBuffer.discard()
	}
	s.logger.Error("Source failed, discarding %d elements read ahead: %v", discarded, err)
	return nil, false, err
}

// EstimateSize returns the estimated number of remaining groups, computed
// from the estimate of the source. It is spliterator.UnknownSize if the
// size of the source is unknown.
func (s *Splitter[T]) EstimateSize() int64 {
	return estimateGroups(s.source.EstimateSize(), s.preferredLength)
}

func estimateGroups(sourceEstimate int64, preferredLength int) int64 {
	if sourceEstimate == spliterator.UnknownSize {
		return spliterator.UnknownSize
	}
	return sourceEstimate / int64(preferredLength)
}

// TrySplit attempts to split the source, returning a new Splitter with the
// same parameters for the split-off part.
//
// Splitting is refused if the source holds at most two groups worth of
// elements, or if elements have been read ahead. The latter precede the
// elements the source would split off, so splitting would cause groups to
// no longer consist of consecutive elements. Errors from the source are
// returned unchanged.
func (s *Splitter[T]) TrySplit() (spliterator.Spliterator[[]T], error) {
	estimate := s.source.EstimateSize()
	if estimate <= s.splitThreshold() {
		s.logger.Debug("Not splitting source with an estimated %d elements, as it holds at most %d groups", estimate, splitFactor)
		s.stats.RecordSplit(false)
		return nil, nil
	}
	if s.preBuffer != nil && s.preBuffer.len() > 0 {
		s.logger.Debug("Not splitting source, as %d elements have already been read ahead", s.preBuffer.len())
		s.stats.RecordSplit(false)
		return nil, nil
	}

	prefix, err := s.source.TrySplit()
	if err != nil {
		return nil, err
	}
	if prefix == nil {
		s.logger.Debug("Source with an estimated %d elements refused to split", estimate)
		s.stats.RecordSplit(false)
		return nil, nil
	}

	s.logger.Debug("Split off partition with an estimated %d elements, retaining %d", prefix.EstimateSize(), s.source.EstimateSize())
	s.stats.RecordSplit(true)
	return newSplitter(prefix, s.Config(), s.logger, s.stats), nil
}

// splitThreshold returns the largest source estimate for which splitting is
// refused, saturating at math.MaxInt64.
func (s *Splitter[T]) splitThreshold() int64 {
	preferredLength := int64(s.preferredLength)
	if preferredLength > math.MaxInt64/splitFactor {
		return math.MaxInt64
	}
	return splitFactor * preferredLength
}

// Characteristics returns the characteristics of the source, except for
// Sized and Subsized, as the number of groups depends on how the remainder
// of each partition is absorbed.
func (s *Splitter[T]) Characteristics() spliterator.Characteristics {
	return s.source.Characteristics().Without(spliterator.Sized | spliterator.Subsized)
}

// Comparator orders groups by their first elements if the source has a
// comparator, and returns nil otherwise. The ordering is only meaningful if
// the source is Sorted.
func (s *Splitter[T]) Comparator() spliterator.Comparator[[]T] {
	cmp := s.source.Comparator()
	if cmp == nil {
		return nil
	}
	return func(a, b []T) int {
		return cmp(a[0], b[0])
	}
}
