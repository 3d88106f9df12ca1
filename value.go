package govalues

import (
	"reflect"

	"github.com/spf13/cast"
)

// Value binds a parsed raw datum to its schema. Apart from Sanitize, every
// operation leaves the Value unchanged; SetRaw returns a new instance.
type Value struct {
	raw    any
	schema Schema
}

// NewValue parses raw with schema and binds the result. A nil raw resolves to
// the parsed schema default.
func NewValue(raw any, schema Schema) *Value {
	if raw == nil {
		raw = schema.Default()
	}
	return &Value{raw: schema.Parse(raw), schema: schema}
}

// Raw returns the raw datum.
func (v *Value) Raw() any { return v.raw }

// Schema returns the bound schema.
func (v *Value) Schema() Schema { return v.schema }

// ID is shorthand for Schema().ID().
func (v *Value) ID() string { return v.schema.ID() }

// SetRaw returns a new Value with the same schema and raw re-parsed.
func (v *Value) SetRaw(raw any) *Value { return NewValue(raw, v.schema) }

// Validate delegates to the schema.
func (v *Value) Validate() Result { return v.schema.Validate(v) }

// Sanitize stores the sanitized raw datum on v and returns it. This is the
// only operation that mutates a Value.
func (v *Value) Sanitize() any {
	v.raw = v.schema.Sanitize(v)
	return v.raw
}

// Sanitized returns a sanitized copy and leaves v untouched.
func (v *Value) Sanitized() *Value {
	return &Value{raw: v.schema.Sanitize(v), schema: v.schema}
}

// Format delegates to the schema. Pass 0 for no special formatting.
func (v *Value) Format(flags Flags) any { return v.schema.Format(v, flags) }

// IsEmpty reports whether the raw datum is empty for its type.
func (v *Value) IsEmpty() bool { return isEmptyRaw(v.raw) }

// IsEqualTo compares raw datums strictly: same dynamic type and deeply equal.
// Schemas are not compared.
func (v *Value) IsEqualTo(other *Value) bool {
	if v == other {
		return true
	}
	if other == nil {
		return false
	}
	return reflect.DeepEqual(v.raw, other.raw)
}

// String joins sequences with "," and stringifies scalars.
func (v *Value) String() string {
	if isSequence(v.raw) {
		return joinSequence(v.raw, ",")
	}
	return cast.ToString(v.raw)
}
