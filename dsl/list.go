package dsl

import (
	"slices"
	"strings"

	"github.com/spf13/cast"

	govalues "github.com/reoring/govalues"
	js "github.com/reoring/govalues/jsonschema"
)

// ListKind is the kind of string list values. String input is split on
// Separator (default ",").
type ListKind struct {
	MinItems  *int   `mapstructure:"min_items"`
	MaxItems  *int   `mapstructure:"max_items"`
	Unique    bool   `mapstructure:"unique"`
	Separator string `mapstructure:"separator"`
}

// ListOption configures a ListKind.
type ListOption func(*ListKind)

// MinItems sets the minimum number of items.
func MinItems(n int) ListOption { return func(k *ListKind) { k.MinItems = &n } }

// MaxItems sets the maximum number of items.
func MaxItems(n int) ListOption { return func(k *ListKind) { k.MaxItems = &n } }

// UniqueItems rejects duplicate items and drops them during sanitization.
func UniqueItems() ListOption { return func(k *ListKind) { k.Unique = true } }

// Separator sets the separator used to split string input.
func Separator(sep string) ListOption { return func(k *ListKind) { k.Separator = sep } }

// List returns a schema for string lists.
func List(cfg govalues.Config, opts ...ListOption) (*govalues.BaseSchema, error) {
	k := &ListKind{}
	for _, o := range opts {
		o(k)
	}
	return govalues.NewSchema(k, cfg)
}

func (k *ListKind) Name() string { return "array" }

func (k *ListKind) sep() string {
	if k.Separator == "" {
		return ","
	}
	return k.Separator
}

func (k *ListKind) ParseBase(raw any) any {
	switch t := raw.(type) {
	case nil:
		return []string{}
	case string:
		if t == "" {
			return []string{}
		}
		return strings.Split(t, k.sep())
	case []string:
		return slices.Clone(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			out = append(out, cast.ToString(it))
		}
		return out
	}
	out, err := cast.ToStringSliceE(raw)
	if err != nil || out == nil {
		return []string{}
	}
	return out
}

func (k *ListKind) ValidateBase(raw any) error {
	items, ok := raw.([]string)
	if !ok {
		return invalidType("array", raw)
	}
	var iss govalues.Issues
	if k.MinItems != nil && len(items) < *k.MinItems {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooShort, map[string]any{"min": *k.MinItems, "got": len(items)}))
	}
	if k.MaxItems != nil && len(items) > *k.MaxItems {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooLong, map[string]any{"max": *k.MaxItems, "got": len(items)}))
	}
	if k.Unique {
		seen := make(map[string]int, len(items))
		for i, it := range items {
			key := strings.TrimSpace(it)
			if j, dup := seen[key]; dup {
				iss = govalues.AppendIssues(iss, issue(govalues.CodeUniqueness, map[string]any{"first": j, "dup": i, "key": key}))
				continue
			}
			seen[key] = i
		}
	}
	return errOrNil(iss)
}

// SanitizeBase trims items and drops empty ones, and duplicates when Unique.
func (k *ListKind) SanitizeBase(raw any) any {
	items, _ := raw.([]string)
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(stripControl(it))
		if it == "" {
			continue
		}
		if k.Unique && slices.Contains(out, it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (k *ListKind) FormatBase(raw any, flags govalues.Flags) any {
	items, _ := raw.([]string)
	if flags&FormatJoined != 0 {
		return strings.Join(items, ", ")
	}
	return slices.Clone(items)
}

func (k *ListKind) Describe(out *js.Schema) {
	out.Items = &js.Schema{Type: "string"}
	out.MinItems = k.MinItems
	out.MaxItems = k.MaxItems
	out.UniqueItems = k.Unique
}
