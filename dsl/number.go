package dsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	govalues "github.com/reoring/govalues"
	js "github.com/reoring/govalues/jsonschema"
)

// IntegerKind is the kind of int64 values.
type IntegerKind struct {
	Min *int64 `mapstructure:"min"`
	Max *int64 `mapstructure:"max"`
}

// IntegerOption configures an IntegerKind.
type IntegerOption func(*IntegerKind)

// AtLeast sets the inclusive lower bound.
func AtLeast(n int64) IntegerOption { return func(k *IntegerKind) { k.Min = &n } }

// AtMost sets the inclusive upper bound.
func AtMost(n int64) IntegerOption { return func(k *IntegerKind) { k.Max = &n } }

// Integer returns a schema for int64 values.
func Integer(cfg govalues.Config, opts ...IntegerOption) (*govalues.BaseSchema, error) {
	k := &IntegerKind{}
	for _, o := range opts {
		o(k)
	}
	return govalues.NewSchema(k, cfg)
}

func (k *IntegerKind) Name() string { return "integer" }

// ParseBase reads strings as base-10; "010" is 10, not octal. Fractional
// strings are truncated.
func (k *IntegerKind) ParseBase(raw any) any {
	if s, ok := raw.(string); ok {
		return parseDecimalInt(strings.TrimSpace(s))
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return int64(0)
	}
	return n
}

func parseDecimalInt(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

func (k *IntegerKind) ValidateBase(raw any) error {
	n, ok := raw.(int64)
	if !ok {
		return invalidType("integer", raw)
	}
	var iss govalues.Issues
	if k.Min != nil && n < *k.Min {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooSmall, map[string]any{"min": *k.Min, "got": n}))
	}
	if k.Max != nil && n > *k.Max {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooBig, map[string]any{"max": *k.Max, "got": n}))
	}
	return errOrNil(iss)
}

// SanitizeBase clamps into [Min, Max].
func (k *IntegerKind) SanitizeBase(raw any) any {
	n := cast.ToInt64(raw)
	if k.Min != nil && n < *k.Min {
		n = *k.Min
	}
	if k.Max != nil && n > *k.Max {
		n = *k.Max
	}
	return n
}

func (k *IntegerKind) FormatBase(raw any, flags govalues.Flags) any {
	n := cast.ToInt64(raw)
	if flags&FormatThousands != 0 {
		return groupThousands(n)
	}
	return n
}

func (k *IntegerKind) Describe(out *js.Schema) {
	if k.Min != nil {
		out.Minimum = js.Float(float64(*k.Min))
	}
	if k.Max != nil {
		out.Maximum = js.Float(float64(*k.Max))
	}
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// NumberKind is the kind of float64 values.
type NumberKind struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
	// Precision is the number of decimals kept by sanitization and FormatFixed.
	Precision *int `mapstructure:"precision"`
}

// NumberOption configures a NumberKind.
type NumberOption func(*NumberKind)

// Minimum sets the inclusive lower bound.
func Minimum(f float64) NumberOption { return func(k *NumberKind) { k.Min = &f } }

// Maximum sets the inclusive upper bound.
func Maximum(f float64) NumberOption { return func(k *NumberKind) { k.Max = &f } }

// Precision sets the number of decimals kept.
func Precision(n int) NumberOption { return func(k *NumberKind) { k.Precision = &n } }

// Number returns a schema for float64 values.
func Number(cfg govalues.Config, opts ...NumberOption) (*govalues.BaseSchema, error) {
	k := &NumberKind{}
	for _, o := range opts {
		o(k)
	}
	if err := k.prepare(); err != nil {
		return nil, err
	}
	return govalues.NewSchema(k, cfg)
}

// maxPrecision is the largest decimal exponent of a finite float64.
const maxPrecision = 308

func (k *NumberKind) prepare() error {
	if k.Precision == nil {
		return nil
	}
	if *k.Precision < 0 || *k.Precision > maxPrecision {
		return govalues.ConfigInvalidKey("precision", fmt.Sprintf("must be between 0 and %d", maxPrecision))
	}
	return nil
}

func (k *NumberKind) Name() string { return "number" }

func (k *NumberKind) ParseBase(raw any) any {
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return float64(0)
	}
	return f
}

func (k *NumberKind) ValidateBase(raw any) error {
	f, ok := raw.(float64)
	if !ok {
		return invalidType("number", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return govalues.Issues{issue(govalues.CodeInvalidFormat, map[string]any{"got": f})}
	}
	var iss govalues.Issues
	if k.Min != nil && f < *k.Min {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooSmall, map[string]any{"min": *k.Min, "got": f}))
	}
	if k.Max != nil && f > *k.Max {
		iss = govalues.AppendIssues(iss, issue(govalues.CodeTooBig, map[string]any{"max": *k.Max, "got": f}))
	}
	return errOrNil(iss)
}

// SanitizeBase rounds to Precision decimals when set.
func (k *NumberKind) SanitizeBase(raw any) any {
	f := cast.ToFloat64(raw)
	if k.Precision == nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', *k.Precision, 64), 64)
	if err != nil {
		return f
	}
	return r
}

func (k *NumberKind) FormatBase(raw any, flags govalues.Flags) any {
	f := cast.ToFloat64(raw)
	if flags&FormatFixed != 0 {
		prec := -1
		if k.Precision != nil {
			prec = *k.Precision
		}
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	return f
}

func (k *NumberKind) Describe(out *js.Schema) {
	out.Minimum = k.Min
	out.Maximum = k.Max
}
