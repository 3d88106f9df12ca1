package dsl

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/mitchellh/mapstructure"

	govalues "github.com/reoring/govalues"
)

// KindFactory returns a fresh, unconfigured kind. The result must be a
// pointer so options can be decoded into it.
type KindFactory func() govalues.Kind

type preparer interface {
	prepare() error
}

var (
	registryMu sync.RWMutex
	registry   = map[string]KindFactory{
		"string":  func() govalues.Kind { return &StringKind{} },
		"integer": func() govalues.Kind { return &IntegerKind{} },
		"number":  func() govalues.Kind { return &NumberKind{} },
		"bool":    func() govalues.Kind { return &BoolKind{} },
		"boolean": func() govalues.Kind { return &BoolKind{} },
		"list":    func() govalues.Kind { return &ListKind{} },
		"time":    func() govalues.Kind { return &TimeKind{} },
	}
)

// Register adds or replaces a named kind.
func Register(name string, f KindFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// Build creates a schema of the named kind. options are decoded into the kind
// by their mapstructure tags; unknown options are rejected.
func Build(name string, cfg govalues.Config, options map[string]any) (*govalues.BaseSchema, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("dsl: unknown kind %q", name)
	}
	k := f()
	if len(options) > 0 {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           k,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("dsl: kind %q: %w", name, err)
		}
		if err := dec.Decode(options); err != nil {
			return nil, fmt.Errorf("dsl: kind %q options: %w", name, err)
		}
	}
	if p, ok := k.(preparer); ok {
		if err := p.prepare(); err != nil {
			return nil, err
		}
	}
	return govalues.NewSchema(k, cfg)
}
