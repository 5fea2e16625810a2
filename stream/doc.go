// Package stream traverses a spliterator.Spliterator in parallel.
//
// The Spliterator is split recursively until its parts are small or refuse
// to split further, and the parts are traversed concurrently by at most
// Options.Concurrency goroutines. Within a part, elements are visited in
// encounter order. Collect and Partitions additionally return results in
// the encounter order of the whole Spliterator, as every split hands out a
// prefix.
package stream
