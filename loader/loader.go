// Package loader reads value definition files and turns them into schemas and
// collections.
//
// A definition file is YAML (JSON is accepted as a YAML subset):
//
//	version: 1
//	values:
//	  - id: name
//	    kind: string
//	    required: true
//	    options:
//	      max_length: 40
//	  - id: tags
//	    kind: list
//	    default: [go]
//
// Hooks cannot be expressed in files; attach them per id with WithConfig.
package loader

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	govalues "github.com/reoring/govalues"
	"github.com/reoring/govalues/dsl"
)

// File is a decoded definition file.
type File struct {
	Version int          `mapstructure:"version"`
	Values  []Definition `mapstructure:"values"`
}

// Definition describes one value.
type Definition struct {
	ID          string         `mapstructure:"id"`
	Kind        string         `mapstructure:"kind"`
	Description string         `mapstructure:"description"`
	Default     any            `mapstructure:"default"`
	Required    bool           `mapstructure:"required"`
	Skip        bool           `mapstructure:"skip"`
	Value       any            `mapstructure:"value"`
	Options     map[string]any `mapstructure:"options"`
}

// Option configures schema construction.
type Option func(*options)

type options struct {
	extra map[string]govalues.Config
	copts []govalues.Option
}

// WithConfig merges cfg into the configuration of the value with the given
// id. It is the way to attach validate/sanitize/format hooks.
func WithConfig(id string, cfg govalues.Config) Option {
	return func(o *options) {
		if o.extra == nil {
			o.extra = map[string]govalues.Config{}
		}
		o.extra[id] = cfg
	}
}

// WithCollectionOptions forwards options to govalues.NewCollection.
func WithCollectionOptions(opts ...govalues.Option) Option {
	return func(o *options) { o.copts = append(o.copts, opts...) }
}

// Read loads a definition file from disk.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read definition file "%s": %w`, path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf(`failed to parse definition file "%s": %w`, path, err)
	}
	return f, nil
}

// Parse decodes definition file contents.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &f,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) check() error {
	seen := make(map[string]struct{}, len(f.Values))
	for i, d := range f.Values {
		if d.ID == "" {
			return fmt.Errorf("values[%d]: missing id", i)
		}
		if d.Kind == "" {
			return fmt.Errorf("values[%d] %q: missing kind", i, d.ID)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("values[%d]: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}

// Config returns the schema configuration of d.
func (d Definition) Config() govalues.Config {
	cfg := govalues.Config{govalues.KeyID: d.ID}
	if d.Description != "" {
		cfg[govalues.KeyDescription] = d.Description
	}
	if d.Default != nil {
		cfg[govalues.KeyDefault] = d.Default
	}
	if d.Required {
		cfg[govalues.KeyRequired] = true
	}
	if d.Skip {
		cfg[govalues.KeySkip] = true
	}
	return cfg
}

// Schemas builds one schema per definition, in file order.
func (f *File) Schemas(opts ...Option) ([]*govalues.BaseSchema, error) {
	o := collect(opts)
	out := make([]*govalues.BaseSchema, 0, len(f.Values))
	for _, d := range f.Values {
		cfg := d.Config()
		for k, v := range o.extra[d.ID] {
			cfg[k] = v
		}
		s, err := dsl.Build(d.Kind, cfg, d.Options)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", d.ID, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Collection builds a collection whose values start from each definition's
// value (nil when absent, which resolves to the default).
func (f *File) Collection(opts ...Option) (*govalues.Collection, error) {
	schemas, err := f.Schemas(opts...)
	if err != nil {
		return nil, err
	}
	vals := make([]*govalues.Value, len(schemas))
	for i, s := range schemas {
		vals[i] = govalues.NewValue(f.Values[i].Value, s)
	}
	return govalues.NewCollection(vals, collect(opts).copts...), nil
}

func collect(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
