// Package buffer groups the elements of a spliterator.Spliterator into
// size-bounded slices without reading the whole sequence into memory.
//
// The main type is Splitter, which can be created using Buffer or New. A
// Splitter is itself a spliterator.Spliterator whose elements are groups
// ([]T) of the elements of its source. Two parameters control the groups:
//
//   - PreferredLength is the number of elements a group normally contains.
//   - MinSize is the smallest number of elements a group may contain.
//
// After assembling a group of PreferredLength elements, the Splitter looks
// ahead by up to MinSize elements. If the source runs out during the look
// ahead, the few remaining elements are absorbed into the current group
// instead of forming an undersized group of their own. As a result only the
// last group of a traversal can be shorter than PreferredLength, and it is
// never shorter than MinSize unless the whole source is.
//
// A few examples, with elements E1 to E6:
//
//   - MinSize = 1, PreferredLength = 5: [E1 E2 E3 E4 E5] [E6]
//   - MinSize = 2, PreferredLength = 5: [E1 E2 E3 E4 E5 E6]
//   - MinSize = 2, PreferredLength = 4: [E1 E2 E3 E4] [E5 E6]
//
// Splitting a Splitter splits its source and wraps the split-off part in a
// new Splitter with the same parameters. Each partition applies the
// absorption rule at its own tail, so groups never span partitions. A
// Splitter refuses to split when its source holds at most two groups worth
// of elements.
//
// Logging and statistics are optional; see Options.
package buffer
