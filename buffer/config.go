package buffer

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// validate is shared by all ConfigValues. validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// Config retrieves the batching parameters used by a Splitter. If these
// values are constant, NewConstantConfig can be used to create an
// implementation of the interface.
//
// Get is called once, when the Splitter is created. The values are then
// fixed for the Splitter and every Splitter split off from it.
type Config interface {
	// Get returns the values for configuration.
	//
	// If MinSize > PreferredLength, MinSize will be set to PreferredLength.
	Get() ConfigValues
}

// ConfigValues contains the batching parameters.
type ConfigValues struct {
	// MinSize is the minimum number of elements of a group. When fewer
	// than MinSize elements remain after a group has been filled, they
	// are added to that group rather than forming a group of their own.
	// The exception is a source that contains fewer than MinSize elements
	// in total, which results in a single, smaller group.
	MinSize int `json:"minSize" validate:"min=1"`

	// PreferredLength is the number of elements a group is filled up to
	// before it is returned. Groups may hold up to PreferredLength +
	// MinSize - 1 elements when a remainder is absorbed.
	PreferredLength int `json:"preferredLength" validate:"min=1"`
}

// Validate returns an InvalidArgument error if one of the values is out of
// range.
func (c ConfigValues) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldError := validationErrors[0]
			return status.Errorf(codes.InvalidArgument, "Invalid batching configuration: %s must be at least %s, got %v", fieldError.Field(), fieldError.Param(), fieldError.Value())
		}
		return status.Errorf(codes.InvalidArgument, "Invalid batching configuration: %s", err)
	}
	return nil
}

// NewConstantConfig returns a Config with constant values. If values is
// nil, DefaultMinSize and DefaultPreferredLength are used.
func NewConstantConfig(values *ConfigValues) *ConstantConfig {
	if values == nil {
		return &ConstantConfig{
			values: ConfigValues{
				MinSize:         DefaultMinSize,
				PreferredLength: DefaultPreferredLength,
			},
		}
	}

	return &ConstantConfig{
		values: *values,
	}
}

// ConstantConfig is a Config with constant values. Create one with
// NewConstantConfig.
type ConstantConfig struct {
	values ConfigValues
}

// Get implements the Config interface.
func (c *ConstantConfig) Get() ConfigValues {
	return c.values
}

// NewDynamicConfig returns a Config whose values can be changed while
// Splitters are being created from it. If values is nil, DefaultMinSize and
// DefaultPreferredLength are used.
//
// Changes only affect Splitters created after the change, as a Splitter
// reads its Config once.
func NewDynamicConfig(values *ConfigValues) *DynamicConfig {
	return &DynamicConfig{
		values: NewConstantConfig(values).Get(),
	}
}

// DynamicConfig is a Config with values that can be updated at runtime. It
// is safe for concurrent use.
type DynamicConfig struct {
	mu     sync.RWMutex
	values ConfigValues
}

// Get implements the Config interface.
func (c *DynamicConfig) Get() ConfigValues {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values
}

// UpdateSizes replaces the batching parameters.
func (c *DynamicConfig) UpdateSizes(minSize, preferredLength int) {
	c.Update(ConfigValues{
		MinSize:         minSize,
		PreferredLength: preferredLength,
	})
}

// Update replaces all configuration values at once.
func (c *DynamicConfig) Update(values ConfigValues) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = values
}

// fixConfig reduces MinSize to PreferredLength if it is larger. Absorbing a
// remainder only makes sense while a remainder can be smaller than a group.
func fixConfig(c ConfigValues) ConfigValues {
	if c.MinSize > c.PreferredLength {
		c.MinSize = c.PreferredLength
	}
	return c
}
