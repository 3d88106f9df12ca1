// Package openapi projects value schemas into OpenAPI 3 schemas
// (getkin/kin-openapi), so a collection can be published as a request body
// definition.
package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	govalues "github.com/reoring/govalues"
	js "github.com/reoring/govalues/jsonschema"
)

// FromCollection returns an object schema with one property per value. The
// result is validated before it is returned.
func FromCollection(ctx context.Context, c *govalues.Collection) (*openapi3.Schema, error) {
	sch, err := c.JSONSchema()
	if err != nil {
		return nil, err
	}
	out := Convert(sch)
	if err := out.Validate(ctx, openapi3.DisableSchemaDefaultsValidation()); err != nil {
		return nil, fmt.Errorf("openapi: invalid schema: %w", err)
	}
	return out, nil
}

// FromSchema converts a single value schema.
func FromSchema(s govalues.Schema) (*openapi3.Schema, error) {
	sch, err := s.JSONSchema()
	if err != nil {
		return nil, err
	}
	return Convert(sch), nil
}

// Convert maps the exported JSON Schema subset onto openapi3.Schema.
func Convert(in *js.Schema) *openapi3.Schema {
	if in == nil {
		return nil
	}
	var out *openapi3.Schema
	switch in.Type {
	case "string":
		out = openapi3.NewStringSchema()
	case "integer":
		out = openapi3.NewInt64Schema()
	case "number":
		out = openapi3.NewFloat64Schema()
	case "boolean":
		out = openapi3.NewBoolSchema()
	case "array":
		out = openapi3.NewArraySchema()
		if in.Items != nil {
			out.WithItems(Convert(in.Items))
		}
	case "object":
		out = openapi3.NewObjectSchema()
		for name, p := range in.Properties {
			out.WithProperty(name, Convert(p))
		}
		if b, ok := in.AdditionalProperties.(bool); ok {
			out.AdditionalProperties = openapi3.AdditionalProperties{Has: &b}
		}
	default:
		out = &openapi3.Schema{}
	}

	if in.Format != "" {
		out.Format = in.Format
	}
	out.Description = in.Description
	out.Default = in.Default
	out.Required = append(out.Required, in.Required...)
	if in.MinLength != nil {
		out.WithMinLength(int64(*in.MinLength))
	}
	if in.MaxLength != nil {
		out.WithMaxLength(int64(*in.MaxLength))
	}
	if in.Pattern != "" {
		out.WithPattern(in.Pattern)
	}
	if in.Minimum != nil {
		out.WithMin(*in.Minimum)
	}
	if in.Maximum != nil {
		out.WithMax(*in.Maximum)
	}
	if len(in.Enum) > 0 {
		out.WithEnum(in.Enum...)
	}
	if in.MinItems != nil {
		out.WithMinItems(int64(*in.MinItems))
	}
	if in.MaxItems != nil {
		out.WithMaxItems(int64(*in.MaxItems))
	}
	out.UniqueItems = in.UniqueItems
	if in.Skip {
		out.Extensions = map[string]any{"x-skip": true}
	}
	return out
}
