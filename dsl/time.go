package dsl

import (
	"time"

	"github.com/spf13/cast"

	govalues "github.com/reoring/govalues"
	js "github.com/reoring/govalues/jsonschema"
)

// TimeKind is the kind of RFC3339 timestamps. Unparseable input becomes the
// zero time, which counts as empty.
type TimeKind struct {
	// Precision truncates timestamps during sanitization (e.g. "1s").
	Precision time.Duration `mapstructure:"precision"`
}

// Time returns a schema for timestamps.
func Time(cfg govalues.Config) (*govalues.BaseSchema, error) {
	return govalues.NewSchema(&TimeKind{}, cfg)
}

func (k *TimeKind) Name() string { return "string" }

func (k *TimeKind) ParseBase(raw any) any {
	switch t := raw.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case string:
		if t == "" {
			return time.Time{}
		}
		if tt, err := parseRFC3339(t); err == nil {
			return tt
		}
		// FormatDate output
		if tt, err := time.Parse(time.DateOnly, t); err == nil {
			return tt
		}
		return time.Time{}
	}
	tt, err := cast.ToTimeE(raw)
	if err != nil {
		return time.Time{}
	}
	return tt
}

func (k *TimeKind) ValidateBase(raw any) error {
	if _, ok := raw.(time.Time); !ok {
		return invalidType("time", raw)
	}
	return nil
}

// SanitizeBase normalizes to UTC and applies Precision.
func (k *TimeKind) SanitizeBase(raw any) any {
	t, _ := raw.(time.Time)
	if t.IsZero() {
		return t
	}
	t = t.UTC()
	if k.Precision > 0 {
		t = t.Truncate(k.Precision)
	}
	return t
}

func (k *TimeKind) FormatBase(raw any, flags govalues.Flags) any {
	t, _ := raw.(time.Time)
	if t.IsZero() {
		return ""
	}
	if flags&FormatDate != 0 {
		return t.Format(time.DateOnly)
	}
	return formatRFC3339Canonical(t)
}

func (k *TimeKind) Describe(out *js.Schema) { out.Format = "date-time" }

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
