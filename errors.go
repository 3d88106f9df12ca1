package govalues

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeInvalidFormat = "invalid_format"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeUniqueness    = "uniqueness"
	CodeDuplicateKey  = "duplicate_key"
	CodeParseError    = "parse_error"
	// CodeCustom marks failures reported by a validate_callback hook.
	CodeCustom = "custom"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer of the value id (for example: /email).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error (hook failures, decoder errors).
	// Params carries structured parameters (e.g., {"min":1, "got":0}) for i18n.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error. It is the
// ValidationError of this package.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /email: value must not be empty
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can reach hook errors.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// rebase rewrites empty or root paths to p.
func (iss Issues) rebase(p string) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = p
		}
		out[i] = it
	}
	return out
}

// ConfigError reports a malformed schema configuration. It is raised when a
// schema is built, never during value validation.
type ConfigError struct {
	Key     string
	Reason  string
	Missing bool
}

func (e *ConfigError) Error() string {
	if e.Missing {
		return fmt.Sprintf("config: missing required key %q", e.Key)
	}
	return fmt.Sprintf("config: invalid key %q: %s", e.Key, e.Reason)
}

// ConfigMissingKey returns a ConfigError for an absent key.
func ConfigMissingKey(key string) *ConfigError {
	return &ConfigError{Key: key, Reason: "missing", Missing: true}
}

// ConfigInvalidKey returns a ConfigError for a key holding an unusable value.
func ConfigInvalidKey(key, reason string) *ConfigError {
	return &ConfigError{Key: key, Reason: reason}
}

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("govalues: value not found")

// NotFoundError is returned by Collection.Get for an unknown id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("govalues: value %q has not been found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
