package govalues

import js "github.com/reoring/govalues/jsonschema"

// KindNamer is implemented by kinds that export a JSON Schema type name.
type KindNamer interface {
	Name() string
}

// KindDescriber is implemented by kinds that add their own keywords
// (lengths, ranges, items) to an exported schema.
type KindDescriber interface {
	Describe(out *js.Schema)
}

// KindName calls KindNamer if implemented.
func KindName(k Kind) string {
	if n, ok := k.(KindNamer); ok {
		return n.Name()
	}
	return ""
}

// ApplyDescribe calls KindDescriber if implemented.
func ApplyDescribe(k Kind, out *js.Schema) {
	if d, ok := k.(KindDescriber); ok {
		d.Describe(out)
	}
}
