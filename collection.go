package govalues

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/reoring/govalues/internal/logging"
	js "github.com/reoring/govalues/jsonschema"
)

// Observer receives one notification per id visited by an update.
type Observer interface {
	ObserveUpdate(id string, status Status)
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used to report update outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collection) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an update observer.
func WithObserver(o Observer) Option {
	return func(c *Collection) { c.observer = o }
}

// Collection is a snapshot of Values keyed by schema id. Updates return new
// snapshots and never modify the receiver.
type Collection struct {
	values   map[string]*Value
	logger   *slog.Logger
	observer Observer
}

// NewCollection keys each value by its schema id. When ids repeat, the last
// value wins.
func NewCollection(vals []*Value, opts ...Option) *Collection {
	c := &Collection{
		values: make(map[string]*Value, len(vals)),
		logger: logging.NewNop(),
	}
	for _, v := range vals {
		if v == nil {
			continue
		}
		c.values[v.ID()] = v
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get returns the value for id or a *NotFoundError.
func (c *Collection) Get(id string) (*Value, error) {
	if v, ok := c.values[id]; ok {
		return v, nil
	}
	return nil, &NotFoundError{ID: id}
}

// Has reports whether id is part of the collection.
func (c *Collection) Has(id string) bool {
	_, ok := c.values[id]
	return ok
}

// Len returns the number of values.
func (c *Collection) Len() int { return len(c.values) }

// IDs returns the ids in sorted order.
func (c *Collection) IDs() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Values returns the values ordered by id.
func (c *Collection) Values() []*Value {
	out := make([]*Value, 0, len(c.values))
	for _, id := range c.IDs() {
		out = append(out, c.values[id])
	}
	return out
}

// Raw returns the raw datum of every value keyed by id.
func (c *Collection) Raw() map[string]any {
	out := make(map[string]any, len(c.values))
	for id, v := range c.values {
		out[id] = v.Raw()
	}
	return out
}

// Formatted returns the formatted form of every value keyed by id.
func (c *Collection) Formatted(flags Flags) map[string]any {
	out := make(map[string]any, len(c.values))
	for id, v := range c.values {
		out[id] = v.Format(flags)
	}
	return out
}

// UpdateValues validates and sets new raw values for every id of the
// collection. Ids missing from data are re-evaluated against nil input; data
// entries for unknown ids are ignored. A value that skips validation keeps its
// current entry. The first invalid value aborts the whole update and its
// Issues are returned.
func (c *Collection) UpdateValues(data map[string]any) (*Collection, error) {
	return c.update(data, c.IDs())
}

// Patch is UpdateValues restricted to the ids present in data. Every other
// value is carried over as is.
func (c *Collection) Patch(data map[string]any) (*Collection, error) {
	ids := make([]string, 0, len(data))
	for _, id := range c.IDs() {
		if _, ok := data[id]; ok {
			ids = append(ids, id)
		}
	}
	return c.update(data, ids)
}

func (c *Collection) update(data map[string]any, ids []string) (*Collection, error) {
	next := c.clone()
	for _, id := range ids {
		value := c.values[id]
		newValue := value.SetRaw(data[id])

		res := newValue.Validate()
		c.observe(id, res.Status())
		switch res.Status() {
		case Skipped:
			c.logger.Debug("value skipped", "id", id)
			continue
		case Invalid:
			c.logger.Warn("update aborted", "id", id, "error", res.Err())
			return nil, res.Err()
		}

		newValue.Sanitize()
		next.values[id] = newValue
		c.logger.Debug("value updated", "id", id)
	}
	return next, nil
}

// Validate validates every current value in id order. Skips are ignored and
// the first failure is returned.
func (c *Collection) Validate() error {
	for _, v := range c.Values() {
		if res := v.Validate(); res.Status() == Invalid {
			return res.Err()
		}
	}
	return nil
}

// JSONSchema exports the collection as an object schema whose properties are
// the member schemas.
func (c *Collection) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(c.values)),
		AdditionalProperties: false,
	}
	for _, v := range c.Values() {
		sch, err := v.Schema().JSONSchema()
		if err != nil {
			return nil, err
		}
		out.Properties[v.ID()] = sch
		if r, ok := v.Schema().(interface{ Required() bool }); ok && r.Required() {
			out.Required = append(out.Required, v.ID())
		}
	}
	return out, nil
}

func (c *Collection) clone() *Collection {
	return &Collection{
		values:   maps.Clone(c.values),
		logger:   c.logger,
		observer: c.observer,
	}
}

func (c *Collection) observe(id string, s Status) {
	if c.observer != nil {
		c.observer.ObserveUpdate(id, s)
	}
}
