// Package spliterator defines the pull-based, splittable sequence that the
// rest of the module batches. A Spliterator produces one element at a time
// through TryAdvance, estimates how many elements remain, and may split off
// a prefix of its remaining elements into a second Spliterator so that the
// two halves can be traversed concurrently.
//
// A few stock implementations are provided:
//
//   - FromSlice and FromSortedSlice traverse an in-memory slice and split it
//     at the midpoint of the remaining range.
//   - Range produces consecutive int64 values and splits like FromSlice.
//   - Empty produces nothing.
//   - FromChannel and FromPull adapt blocking producers. They never split.
//   - Failing produces a fixed set of elements followed by an error, and is
//     mostly useful in tests.
//
// Map and Filter wrap an existing Spliterator while preserving its ability
// to split. ForEachRemaining, Collect and All consume a Spliterator
// sequentially; see package stream for parallel traversal.
//
// A Spliterator is not safe for concurrent use. After a successful TrySplit
// the receiver and the returned Spliterator share no mutable state, so each
// may then be handed to its own goroutine.
package spliterator
