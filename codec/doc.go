// Package codec decodes update payloads into the id -> raw maps consumed by
// govalues.Collection and encodes snapshots back to JSON.
//
// JSON is handled by goccy/go-json. Payload roots must be objects and
// duplicate keys are rejected with a duplicate_key issue. YAML payloads are
// accepted for hand-written fixtures.
package codec
