package buffer

// Options contains optional configuration for creating a new Splitter.
type Options struct {
	// Config provides the batching parameters.
	// If nil, DefaultMinSize and DefaultPreferredLength are used.
	Config Config

	// Logger receives diagnostic messages.
	// If nil, no logging occurs.
	Logger Logger

	// Stats collects statistics about produced groups and splits.
	// If nil, no statistics are collected.
	Stats StatsCollector
}

// WithDefaults returns a copy of the Options with default values where not
// specified. It may be called on a nil *Options.
func (o *Options) WithDefaults() *Options {
	var result Options
	if o != nil {
		result = *o
	}

	if result.Config == nil {
		result.Config = NewConstantConfig(nil)
	}
	if result.Logger == nil {
		result.Logger = &NoOpLogger{}
	}
	if result.Stats == nil {
		result.Stats = &NoOpStatsCollector{}
	}

	return &result
}
