// Package splitbatch groups the elements of a sequence into size-bounded
// batches, lazily and in a way that cooperates with parallel traversal.
//
// The building blocks live in sub-packages:
//
//   - spliterator defines the Spliterator interface, a pull-based sequence
//     that can split itself into disjoint parts, together with a few stock
//     sources (FromSlice, Range, FromChannel, ...) and helpers to consume
//     them sequentially.
//   - buffer provides Splitter, which turns a Spliterator[T] into a
//     Spliterator[[]T] whose groups hold PreferredLength elements. Any tail
//     of fewer than MinSize elements is merged into the previous group
//     rather than returned as an undersized group.
//   - stream traverses a Spliterator in parallel, splitting it into parts
//     that are processed by a bounded number of goroutines.
//
// A typical use looks like this:
//
//	s, err := buffer.Buffer(spliterator.FromSlice(records), 10, 500)
//	if err != nil {
//		// handle error
//	}
//	err = stream.ForEach(ctx, s, func(group []Record) error {
//		return store.InsertAll(ctx, group)
//	}, nil)
//
// Groups always consist of consecutive elements of the source, and
// concatenating the groups of all parts in encounter order reproduces the
// source exactly.
package splitbatch
