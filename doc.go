// Package govalues provides schema-driven values:
//
// - A Value binds a raw datum to a Schema that parses, validates, sanitizes and formats it
// - BaseSchema runs the shared pipeline (skip, required, hooks, default) around a Kind
// - A Collection keys Values by schema id and applies copy-on-write bulk updates
// - Validation yields a three-way Result (Valid, Skipped, Invalid) instead of using errors for skips
//
// Design policy:
// - Keep only public APIs in the root package; concrete kinds live in dsl/.
// - Definition files are loaded by loader/, payloads decoded by codec/, the CLI lives in cmd/values.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	name, _ := dsl.String(govalues.Config{govalues.KeyID: "name", govalues.KeyRequired: true})
//	age, _ := dsl.Integer(govalues.Config{govalues.KeyID: "age"}, dsl.AtLeast(0))
//	c := govalues.NewCollection([]*govalues.Value{
//	    govalues.NewValue(nil, name),
//	    govalues.NewValue(nil, age),
//	})
//	next, err := c.UpdateValues(map[string]any{"name": "  alice ", "age": "42"})
//	// next.Get("name") -> "alice"; c is unchanged.
package govalues
