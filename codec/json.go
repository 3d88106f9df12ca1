package codec

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	govalues "github.com/reoring/govalues"
)

// ErrNotObject is returned when a payload root is not an object.
var ErrNotObject = errors.New("codec: payload root must be an object")

// DecodeJSON decodes an object payload. Integral numbers become int64, other
// numbers float64.
func DecodeJSON(data []byte) (map[string]any, error) {
	if iss, err := detectDuplicateKeys(data); err != nil {
		return nil, err
	} else if len(iss) > 0 {
		return nil, iss
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, govalues.Issues{{Path: "/", Code: govalues.CodeParseError, Message: err.Error(), Cause: err}}
	}
	m, ok := normalizeNumbers(root).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

// EncodeJSON renders v as indented JSON.
func EncodeJSON(v any) ([]byte, error) {
	return j.MarshalIndent(v, "", "  ")
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeNumbers(vv)
		}
		return t
	case []any:
		for i, vv := range t {
			t[i] = normalizeNumbers(vv)
		}
		return t
	case j.Number:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(string(t), 64); err == nil {
			return f
		}
		return string(t)
	default:
		return v
	}
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	// path is the JSON Pointer of the container; key the last key seen in it.
	path string
	key  string
}

// detectDuplicateKeys walks the token stream and reports every repeated object
// key with the pointer of its container.
func detectDuplicateKeys(data []byte) (govalues.Issues, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var (
		issues govalues.Issues
		stack  []dupFrame
	)

	// valueDone marks the pending member of the enclosing object as consumed.
	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.kind == kindObject && !top.expectingKey {
				top.expectingKey = true
			}
		}
	}
	childPath := func() string {
		n := len(stack)
		if n == 0 {
			return ""
		}
		top := stack[n-1]
		if top.kind == kindObject {
			return top.path + "/" + escapePointer(top.key)
		}
		return top.path + "/-"
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, govalues.Issues{{Path: "/", Code: govalues.CodeParseError, Message: err.Error(), Cause: err}}
		}

		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: childPath()})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, path: childPath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						p := top.path + "/" + escapePointer(v)
						issues = govalues.AppendIssues(issues, govalues.Issue{
							Path:    p,
							Code:    govalues.CodeDuplicateKey,
							Message: "key '" + v + "' duplicated",
						})
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
	return issues, nil
}

// escapePointer applies RFC 6901 escaping to a single reference token.
func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
