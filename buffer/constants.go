package buffer

// Default batching parameters, used when Options.Config is nil.
const (
	// DefaultMinSize is the default minimum number of elements per group.
	// Groups are never merged when it is 1.
	DefaultMinSize = 1

	// DefaultPreferredLength is the default number of elements per group.
	DefaultPreferredLength = 100

	// splitFactor is the number of groups worth of elements a source must
	// hold before a Splitter attempts to split it.
	splitFactor = 2

	// maxGroupCapacity is the largest number of elements allocated up
	// front for a group. Larger groups grow as elements are appended.
	maxGroupCapacity = 4096
)
