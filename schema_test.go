package govalues_test

import (
	"errors"
	"strings"
	"testing"

	govalues "github.com/reoring/govalues"
)

func TestNewSchema_ConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		cfg     govalues.Config
		key     string
		missing bool
	}{
		{"missing id", govalues.Config{}, govalues.KeyID, true},
		{"non-string id", govalues.Config{govalues.KeyID: 1}, govalues.KeyID, false},
		{"non-string description", govalues.Config{govalues.KeyID: "a", govalues.KeyDescription: 3}, govalues.KeyDescription, false},
		{"bad validate hook", govalues.Config{govalues.KeyID: "a", govalues.KeyValidateCallback: "nope"}, govalues.KeyValidateCallback, false},
		{"bad sanitize hook", govalues.Config{govalues.KeyID: "a", govalues.KeySanitizeCallback: func() {}}, govalues.KeySanitizeCallback, false},
		{"bad format hook", govalues.Config{govalues.KeyID: "a", govalues.KeyFormatCallback: func(any) any { return nil }}, govalues.KeyFormatCallback, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := govalues.NewSchema(textKind{}, tc.cfg)
			var ce *govalues.ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if ce.Key != tc.key || ce.Missing != tc.missing {
				t.Fatalf("unexpected error: %+v", ce)
			}
		})
	}
}

func TestNewSchema_NilHooksAreAbsent(t *testing.T) {
	var typed govalues.ValidateFunc
	for name, cfg := range map[string]govalues.Config{
		"nil validate": {govalues.KeyID: "a", govalues.KeyValidateCallback: nil},
		"nil sanitize": {govalues.KeyID: "a", govalues.KeySanitizeCallback: nil},
		"nil format":   {govalues.KeyID: "a", govalues.KeyFormatCallback: nil},
		"typed nil":    {govalues.KeyID: "a", govalues.KeyValidateCallback: typed},
	} {
		t.Run(name, func(t *testing.T) {
			s, err := govalues.NewSchema(textKind{}, cfg)
			if err != nil {
				t.Fatalf("nil hook must be accepted: %v", err)
			}
			v := govalues.NewValue(" x ", s)
			if !v.Validate().OK() {
				t.Fatalf("expected valid")
			}
			if got := v.Sanitized().Raw(); got != "x" {
				t.Fatalf("sanitize: %#v", got)
			}
			if got := v.Format(1); got != " X " {
				t.Fatalf("format: %#v", got)
			}
		})
	}
}

func TestNewSchema_CopiesConfig(t *testing.T) {
	cfg := govalues.Config{govalues.KeyID: "a"}
	s := mustText(t, cfg)
	cfg[govalues.KeyID] = "changed"
	cfg[govalues.KeyRequired] = true
	if s.ID() != "a" || s.Required() {
		t.Fatalf("schema must not observe later config changes")
	}
}

func TestMustSchema_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	govalues.MustSchema(textKind{}, govalues.Config{})
}

func TestDefault(t *testing.T) {
	s := mustText(t, govalues.Config{govalues.KeyID: "a"})
	if s.Default() != "" {
		t.Fatalf("default without config must be Parse(\"\"), got %#v", s.Default())
	}
	s = mustText(t, govalues.Config{govalues.KeyID: "a", govalues.KeyDefault: "dflt"})
	if s.Default() != "dflt" {
		t.Fatalf("configured default: %#v", s.Default())
	}
}

func TestValidate_SkipWinsOverEverything(t *testing.T) {
	called := false
	s := mustText(t, govalues.Config{
		govalues.KeyID:       "a",
		govalues.KeySkip:     true,
		govalues.KeyRequired: true,
		govalues.KeyValidateCallback: govalues.ValidateFunc(func(any) error {
			called = true
			return errors.New("boom")
		}),
	})
	res := govalues.NewValue("", s).Validate()
	if res.Status() != govalues.Skipped || !res.Skipped() || res.Err() != nil {
		t.Fatalf("expected skipped, got %v", res.Status())
	}
	if called {
		t.Fatalf("hook must not run for skipped values")
	}
}

func TestValidate_SkipFalsyValues(t *testing.T) {
	for _, v := range []any{false, 0, "", nil, "false"} {
		s := mustText(t, govalues.Config{govalues.KeyID: "a", govalues.KeySkip: v})
		if res := govalues.NewValue("x", s).Validate(); !res.OK() {
			t.Fatalf("skip=%#v: expected valid, got %v", v, res.Status())
		}
	}
}

func TestValidate_Required(t *testing.T) {
	s := mustText(t, govalues.Config{govalues.KeyID: "email", govalues.KeyRequired: true})

	res := govalues.NewValue("", s).Validate()
	if res.Status() != govalues.Invalid {
		t.Fatalf("expected invalid, got %v", res.Status())
	}
	iss := res.Issues()
	if len(iss) != 1 || iss[0].Code != govalues.CodeRequired || iss[0].Path != "/email" {
		t.Fatalf("unexpected issues: %+v", iss)
	}
	if !govalues.NewValue("a@b", s).Validate().OK() {
		t.Fatalf("non-empty required value must pass")
	}
}

func TestValidate_RequiredBeforeHook(t *testing.T) {
	called := false
	s := mustText(t, govalues.Config{
		govalues.KeyID:       "a",
		govalues.KeyRequired: true,
		govalues.KeyValidateCallback: func(any) error {
			called = true
			return nil
		},
	})
	if govalues.NewValue("", s).Validate().OK() {
		t.Fatalf("expected failure")
	}
	if called {
		t.Fatalf("hook must not run when the required check fails")
	}
}

func TestValidate_KindRule(t *testing.T) {
	s, err := govalues.NewSchema(textKind{maxLen: 3}, govalues.Config{govalues.KeyID: "code"})
	if err != nil {
		t.Fatal(err)
	}
	res := govalues.NewValue("abcd", s).Validate()
	iss, ok := govalues.AsIssues(res.Err())
	if !ok || iss[0].Code != govalues.CodeInvalidFormat || iss[0].Path != "/code" {
		t.Fatalf("unexpected: %v", res.Err())
	}
	if !strings.Contains(iss[0].Message, "too long") {
		t.Fatalf("message should carry the kind error: %q", iss[0].Message)
	}
}

func TestValidate_Hook(t *testing.T) {
	errForbidden := errors.New("forbidden")
	s := mustText(t, govalues.Config{
		govalues.KeyID: "name",
		govalues.KeyValidateCallback: govalues.ValidateFunc(func(raw any) error {
			if raw == "root" {
				return errForbidden
			}
			return nil
		}),
	})
	if !govalues.NewValue("alice", s).Validate().OK() {
		t.Fatalf("expected valid")
	}
	res := govalues.NewValue("root", s).Validate()
	if res.Status() != govalues.Invalid {
		t.Fatalf("expected invalid")
	}
	if !errors.Is(res.Err(), errForbidden) {
		t.Fatalf("hook error must be reachable via errors.Is: %v", res.Err())
	}
	if res.Issues()[0].Code != govalues.CodeCustom {
		t.Fatalf("code: %s", res.Issues()[0].Code)
	}
}

func TestSanitize_HookRunsAfterKind(t *testing.T) {
	var seen any
	s := mustText(t, govalues.Config{
		govalues.KeyID: "a",
		govalues.KeySanitizeCallback: govalues.SanitizeFunc(func(raw any) any {
			seen = raw
			return strings.ToLower(raw.(string))
		}),
	})
	v := govalues.NewValue("  MiXeD ", s)
	if got := s.Sanitize(v); got != "mixed" {
		t.Fatalf("sanitize: %#v", got)
	}
	if seen != "MiXeD" {
		t.Fatalf("hook must receive the kind output, got %#v", seen)
	}
	if v.Raw() != "  MiXeD " {
		t.Fatalf("Schema.Sanitize must not mutate the value")
	}
}

func TestFormat_HookReceivesFlags(t *testing.T) {
	var gotFlags govalues.Flags
	s := mustText(t, govalues.Config{
		govalues.KeyID: "a",
		govalues.KeyFormatCallback: func(raw any, flags govalues.Flags) any {
			gotFlags = flags
			return "<" + raw.(string) + ">"
		},
	})
	if got := govalues.NewValue("ab", s).Format(1 | 8); got != "<AB>" {
		t.Fatalf("format: %#v", got)
	}
	if gotFlags != 9 {
		t.Fatalf("flags: %d", gotFlags)
	}
}

func TestSchemaJSONSchema(t *testing.T) {
	s := mustText(t, govalues.Config{
		govalues.KeyID:          "name",
		govalues.KeyDescription: "display name",
		govalues.KeyDefault:     "anon",
		govalues.KeySkip:        1,
	})
	out, err := s.JSONSchema()
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != "name" || out.Type != "string" || out.Description != "display name" || out.Default != "anon" || !out.Skip {
		t.Fatalf("unexpected schema: %+v", out)
	}
}

func TestIssues_Error(t *testing.T) {
	iss := govalues.Issues{
		{Path: "/a", Code: "required", Message: "m1"},
		{Path: "/b", Code: "too_long"},
		{Path: "/c", Code: "pattern"},
		{Path: "/d", Code: "custom"},
	}
	want := "required at /a: m1; too_long at /b; pattern at /c; ... (total 4)"
	if got := iss.Error(); got != want {
		t.Fatalf("got %q", got)
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[govalues.Status]string{
		govalues.Valid:   "valid",
		govalues.Skipped: "skipped",
		govalues.Invalid: "invalid",
	} {
		if s.String() != want {
			t.Fatalf("%d: %s", s, s.String())
		}
	}
}
