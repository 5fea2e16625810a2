package stream

import "runtime"

// leafTargetFactor is the number of parts per goroutine to aim for when
// Options.TargetSize is not set.
const leafTargetFactor = 4

// Options controls how a Spliterator is partitioned and traversed.
type Options struct {
	// Concurrency is the maximum number of parts traversed at once.
	// If zero or negative, runtime.GOMAXPROCS(0) is used.
	Concurrency int

	// TargetSize stops splitting parts whose EstimateSize is at most
	// TargetSize. If zero or negative, it is derived from the estimate of
	// the whole Spliterator, aiming for leafTargetFactor parts per
	// goroutine.
	TargetSize int64
}

// WithDefaults returns a copy of the Options with default values where not
// specified. It may be called on a nil *Options.
func (o *Options) WithDefaults(estimate int64) *Options {
	var result Options
	if o != nil {
		result = *o
	}

	if result.Concurrency <= 0 {
		result.Concurrency = runtime.GOMAXPROCS(0)
	}
	if result.TargetSize <= 0 {
		result.TargetSize = estimate / int64(result.Concurrency*leafTargetFactor)
		if result.TargetSize < 1 {
			result.TargetSize = 1
		}
	}

	return &result
}
