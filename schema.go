package govalues

import (
	"errors"

	"github.com/reoring/govalues/i18n"
	js "github.com/reoring/govalues/jsonschema"
)

// Schema is the policy object for one value kind. It parses, validates,
// sanitizes and formats the raw datum of the Values bound to it.
type Schema interface {
	// ID returns the identifier of the value. It never changes for the
	// lifetime of the schema.
	ID() string
	// Default returns the default raw value.
	Default() any
	// Parse coerces any input, including nil, into the schema's raw domain.
	// It is pure and never fails.
	Parse(raw any) any
	// Validate inspects a Value bound to this schema.
	Validate(v *Value) Result
	// Sanitize returns the cleaned form of the Value's raw datum.
	Sanitize(v *Value) any
	// Format returns a presentation-oriented transform of the raw datum.
	Format(v *Value, flags Flags) any
	// JSONSchema exports the schema metadata.
	JSONSchema() (*js.Schema, error)
}

// Kind supplies the four primitives that differ per value kind. Each operates
// purely on the raw domain of that kind.
type Kind interface {
	ParseBase(raw any) any
	ValidateBase(raw any) error
	SanitizeBase(raw any) any
	FormatBase(raw any, flags Flags) any
}

// BaseSchema runs the shared pipeline (skip, required, hooks, default) around a
// Kind. It is the Schema implementation every concrete kind reuses.
type BaseSchema struct {
	kind     Kind
	cfg      Config
	id       string
	validate ValidateFunc
	sanitize SanitizeFunc
	format   FormatFunc
}

var _ Schema = (*BaseSchema)(nil)

// NewSchema validates cfg and binds it to kind. A malformed configuration
// yields a *ConfigError.
func NewSchema(kind Kind, cfg Config) (*BaseSchema, error) {
	if kind == nil {
		return nil, errors.New("govalues: nil kind")
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	s := &BaseSchema{kind: kind, cfg: cfg.Clone()}
	s.id = s.cfg.Get(KeyID).(string)
	s.validate, _ = validateHook(s.cfg)
	s.sanitize, _ = sanitizeHook(s.cfg)
	s.format, _ = formatHook(s.cfg)
	return s, nil
}

// MustSchema is like NewSchema but panics on configuration errors.
func MustSchema(kind Kind, cfg Config) *BaseSchema {
	s, err := NewSchema(kind, cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the bound kind.
func (s *BaseSchema) Kind() Kind { return s.kind }

// Config returns a copy of the bound configuration.
func (s *BaseSchema) Config() Config { return s.cfg.Clone() }

func (s *BaseSchema) ID() string { return s.id }

func (s *BaseSchema) Default() any {
	if s.cfg.Has(KeyDefault) {
		return s.cfg.Get(KeyDefault)
	}
	return s.Parse("")
}

func (s *BaseSchema) Parse(raw any) any { return s.kind.ParseBase(raw) }

// Validate runs, first match wins: skip, required-and-empty, the kind's own
// rule, then the validate_callback hook.
func (s *BaseSchema) Validate(v *Value) Result {
	if s.cfg.Truthy(KeySkip) {
		return Skip()
	}
	path := "/" + s.id
	if s.cfg.Truthy(KeyRequired) && v.IsEmpty() {
		return Fail(Issues{{Path: path, Code: CodeRequired, Message: i18n.T(CodeRequired, nil)}})
	}
	if err := s.kind.ValidateBase(v.Raw()); err != nil {
		if iss, ok := AsIssues(err); ok {
			return Fail(iss.rebase(path))
		}
		return Fail(Issues{{Path: path, Code: CodeInvalidFormat, Message: err.Error(), Cause: err}})
	}
	if s.validate != nil {
		if err := s.validate(v.Raw()); err != nil {
			return Fail(Issues{{Path: path, Code: CodeCustom, Message: err.Error(), Cause: err}})
		}
	}
	return Pass()
}

func (s *BaseSchema) Sanitize(v *Value) any {
	out := s.kind.SanitizeBase(v.Raw())
	if s.sanitize != nil {
		out = s.sanitize(out)
	}
	return out
}

func (s *BaseSchema) Format(v *Value, flags Flags) any {
	out := s.kind.FormatBase(v.Raw(), flags)
	if s.format != nil {
		out = s.format(out, flags)
	}
	return out
}

func (s *BaseSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{ID: s.id, Type: KindName(s.kind)}
	if d, ok := s.cfg.Get(KeyDescription).(string); ok {
		out.Description = d
	}
	if s.cfg.Has(KeyDefault) {
		out.Default = s.cfg.Get(KeyDefault)
	}
	out.Skip = s.cfg.Truthy(KeySkip)
	ApplyDescribe(s.kind, out)
	return out, nil
}

// Required reports whether the schema rejects empty values.
func (s *BaseSchema) Required() bool { return s.cfg.Truthy(KeyRequired) }
