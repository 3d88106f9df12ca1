package dsl

import (
	"html"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cast"

	govalues "github.com/reoring/govalues"
	js "github.com/reoring/govalues/jsonschema"
)

// StringKind is the kind of plain text values.
type StringKind struct {
	MinLength *int     `mapstructure:"min_length"`
	MaxLength *int     `mapstructure:"max_length"`
	Pattern   string   `mapstructure:"pattern"`
	Enum      []string `mapstructure:"enum"`
	// StripHTML removes markup during sanitization.
	StripHTML bool `mapstructure:"strip_html"`
	// KeepSpace disables trimming of surrounding whitespace.
	KeepSpace bool `mapstructure:"keep_space"`

	re *regexp.Regexp
}

// StringOption configures a StringKind.
type StringOption func(*StringKind)

// MinLen sets the minimum length in runes.
func MinLen(n int) StringOption { return func(k *StringKind) { k.MinLength = &n } }

// MaxLen sets the maximum length in runes.
func MaxLen(n int) StringOption { return func(k *StringKind) { k.MaxLength = &n } }

// Pattern sets a regular expression the value must match.
func Pattern(expr string) StringOption { return func(k *StringKind) { k.Pattern = expr } }

// OneOf restricts the value to the given strings.
func OneOf(values ...string) StringOption { return func(k *StringKind) { k.Enum = values } }

// StripHTML removes markup during sanitization.
func StripHTML() StringOption { return func(k *StringKind) { k.StripHTML = true } }

// KeepSpace disables trimming during sanitization.
func KeepSpace() StringOption { return func(k *StringKind) { k.KeepSpace = true } }

// String returns a schema for text values.
func String(cfg govalues.Config, opts ...StringOption) (*govalues.BaseSchema, error) {
	k := &StringKind{}
	for _, o := range opts {
		o(k)
	}
	if err := k.prepare(); err != nil {
		return nil, err
	}
	return govalues.NewSchema(k, cfg)
}

func (k *StringKind) prepare() error {
	if k.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile(k.Pattern)
	if err != nil {
		return govalues.ConfigInvalidKey("pattern", err.Error())
	}
	k.re = re
	return nil
}

func (k *StringKind) Name() string { return "string" }

func (k *StringKind) ParseBase(raw any) any {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return ""
	}
	return s
}

func (k *StringKind) ValidateBase(raw any) error {
	s, ok := raw.(string)
	if !ok {
		return invalidType("string", raw)
	}
	var iss govalues.Issues
	n := utf8.RuneCountInString(s)
	if k.MinLength != nil && n < *k.MinLength {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooShort, map[string]any{"min": *k.MinLength, "got": n}))
	}
	if k.MaxLength != nil && n > *k.MaxLength {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooLong, map[string]any{"max": *k.MaxLength, "got": n}))
	}
	if k.re != nil && !k.re.MatchString(s) {
		iss = govalues.AppendIssues(iss, issue(govalues.CodePattern, map[string]any{"pattern": k.Pattern}))
	}
	if len(k.Enum) > 0 && !slices.Contains(k.Enum, s) {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeInvalidEnum, map[string]any{"got": s}))
	}
	return errOrNil(iss)
}

func (k *StringKind) SanitizeBase(raw any) any {
	s := stripControl(cast.ToString(raw))
	if k.StripHTML {
		s = html.UnescapeString(markupPolicy().Sanitize(s))
	}
	if !k.KeepSpace {
		s = strings.TrimSpace(s)
	}
	return s
}

func (k *StringKind) FormatBase(raw any, flags govalues.Flags) any {
	s := cast.ToString(raw)
	switch {
	case flags&FormatUpper != 0:
		s = strings.ToUpper(s)
	case flags&FormatLower != 0:
		s = strings.ToLower(s)
	}
	if flags&FormatEscapeHTML != 0 {
		s = html.EscapeString(s)
	}
	return s
}

func (k *StringKind) Describe(out *js.Schema) {
	out.MinLength = k.MinLength
	out.MaxLength = k.MaxLength
	out.Pattern = k.Pattern
	for _, e := range k.Enum {
		out.Enum = append(out.Enum, e)
	}
}

var (
	markupPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func markupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// stripControl drops control characters except newline, tab and carriage return.
func stripControl(s string) string {
	clean := true
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

// BoolKind is the kind of boolean values.
type BoolKind struct{}

// Bool returns a schema for boolean values.
func Bool(cfg govalues.Config) (*govalues.BaseSchema, error) {
	return govalues.NewSchema(&BoolKind{}, cfg)
}

func (*BoolKind) Name() string { return "boolean" }

func (*BoolKind) ParseBase(raw any) any {
	if s, ok := raw.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "y", "on":
			return true
		case "no", "n", "off":
			return false
		}
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return false
	}
	return b
}

func (*BoolKind) ValidateBase(raw any) error {
	if _, ok := raw.(bool); !ok {
		return invalidType("boolean", raw)
	}
	return nil
}

func (*BoolKind) SanitizeBase(raw any) any { return cast.ToBool(raw) }

func (*BoolKind) FormatBase(raw any, flags govalues.Flags) any {
	b := cast.ToBool(raw)
	if flags&FormatYesNo != 0 {
		if b {
			return "yes"
		}
		return "no"
	}
	return b
}
