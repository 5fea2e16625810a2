package spliterator

import "strings"

// Characteristics is a set of structural properties of a Spliterator.
type Characteristics uint32

const (
	// Ordered means the elements have a defined encounter order, and that
	// TrySplit returns a strict prefix of the remaining elements.
	Ordered Characteristics = 1 << iota
	// Distinct means no two elements are equal.
	Distinct
	// Sorted means the elements follow the order given by Comparator.
	Sorted
	// Sized means EstimateSize is exact.
	Sized
	// NonNull means no element is a nil value.
	NonNull
	// Immutable means the underlying data cannot change during traversal.
	Immutable
	// Concurrent means the underlying data may safely be modified
	// concurrently with traversal.
	Concurrent
	// Subsized means every Spliterator produced by TrySplit is Sized and
	// Subsized as well.
	Subsized
)

var characteristicNames = []struct {
	c    Characteristics
	name string
}{
	{Ordered, "ORDERED"},
	{Distinct, "DISTINCT"},
	{Sorted, "SORTED"},
	{Sized, "SIZED"},
	{NonNull, "NONNULL"},
	{Immutable, "IMMUTABLE"},
	{Concurrent, "CONCURRENT"},
	{Subsized, "SUBSIZED"},
}

// Has returns true if all of the bits in other are set in c.
func (c Characteristics) Has(other Characteristics) bool {
	return c&other == other
}

// With returns c with the bits in other set.
func (c Characteristics) With(other Characteristics) Characteristics {
	return c | other
}

// Without returns c with the bits in other cleared.
func (c Characteristics) Without(other Characteristics) Characteristics {
	return c &^ other
}

// String returns the names of the set characteristics separated by "|".
func (c Characteristics) String() string {
	if c == 0 {
		return "NONE"
	}
	var names []string
	for _, entry := range characteristicNames {
		if c.Has(entry.c) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}
