package govalues

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// isEmptyRaw applies the language-empty rule: nil, zero-length strings,
// slices and maps, numeric zero and false are empty.
func isEmptyRaw(raw any) bool {
	if raw == nil {
		return true
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}

// isSequence reports whether raw is a slice or array.
func isSequence(raw any) bool {
	if raw == nil {
		return false
	}
	k := reflect.TypeOf(raw).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// joinSequence renders each element with cast.ToString and joins them with sep.
func joinSequence(raw any, sep string) string {
	rv := reflect.ValueOf(raw)
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts[i] = cast.ToString(rv.Index(i).Interface())
	}
	return strings.Join(parts, sep)
}
