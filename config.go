package govalues

import (
	"fmt"

	"github.com/spf13/cast"
)

// Recognized configuration keys.
const (
	KeyID               = "id"
	KeyDescription      = "description"
	KeyDefault          = "default"
	KeyRequired         = "required"
	KeySkip             = "skip"
	KeyValidateCallback = "validate_callback"
	KeySanitizeCallback = "sanitize_callback"
	KeyFormatCallback   = "format_callback"
)

// ValidateFunc is the validate_callback hook. A non-nil error fails validation.
type ValidateFunc func(raw any) error

// SanitizeFunc is the sanitize_callback hook. It receives the output of the
// kind's own sanitization.
type SanitizeFunc func(raw any) any

// FormatFunc is the format_callback hook. Flags are passed through unchanged.
type FormatFunc func(raw any, flags Flags) any

// Config is the opaque key/value configuration of a schema. Only presence and
// the keys listed above carry meaning for the base pipeline; kinds may read
// their own keys.
type Config map[string]any

// Has reports whether key is present, even when it holds nil.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Get returns the value stored under key, or nil.
func (c Config) Get(key string) any { return c[key] }

// Truthy reports whether key is present and its value is truthy.
func (c Config) Truthy(key string) bool {
	v, ok := c[key]
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// Clone returns a shallow copy.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ValidateConfig checks the keys the base pipeline depends on.
func ValidateConfig(c Config) error {
	if !c.Has(KeyID) {
		return ConfigMissingKey(KeyID)
	}
	if _, ok := c.Get(KeyID).(string); !ok {
		return ConfigInvalidKey(KeyID, "the value must be a string")
	}
	if c.Has(KeyDescription) {
		if _, ok := c.Get(KeyDescription).(string); !ok {
			return ConfigInvalidKey(KeyDescription, "the value must be a string")
		}
	}
	if _, err := validateHook(c); err != nil {
		return err
	}
	if _, err := sanitizeHook(c); err != nil {
		return err
	}
	if _, err := formatHook(c); err != nil {
		return err
	}
	return nil
}

// Hook keys holding nil count as absent.
func validateHook(c Config) (ValidateFunc, error) {
	if c.Get(KeyValidateCallback) == nil {
		return nil, nil
	}
	switch fn := c.Get(KeyValidateCallback).(type) {
	case ValidateFunc:
		return fn, nil
	case func(any) error:
		return fn, nil
	default:
		return nil, ConfigInvalidKey(KeyValidateCallback, fmt.Sprintf("expected func(any) error, got %T", fn))
	}
}

func sanitizeHook(c Config) (SanitizeFunc, error) {
	if c.Get(KeySanitizeCallback) == nil {
		return nil, nil
	}
	switch fn := c.Get(KeySanitizeCallback).(type) {
	case SanitizeFunc:
		return fn, nil
	case func(any) any:
		return fn, nil
	default:
		return nil, ConfigInvalidKey(KeySanitizeCallback, fmt.Sprintf("expected func(any) any, got %T", fn))
	}
}

func formatHook(c Config) (FormatFunc, error) {
	if c.Get(KeyFormatCallback) == nil {
		return nil, nil
	}
	switch fn := c.Get(KeyFormatCallback).(type) {
	case FormatFunc:
		return fn, nil
	case func(any, Flags) any:
		return fn, nil
	default:
		return nil, ConfigInvalidKey(KeyFormatCallback, fmt.Sprintf("expected func(any, Flags) any, got %T", fn))
	}
}
