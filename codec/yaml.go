package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes an object payload written in YAML.
func DecodeYAML(data []byte) (map[string]any, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("codec: yaml: %w", err)
	}
	m, ok := yamlNormalizeValue(root).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like values recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = yamlNormalizeValue(vv)
		}
		return out
	case int:
		return int64(t)
	default:
		return v
	}
}
