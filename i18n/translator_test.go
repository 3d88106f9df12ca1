package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg != "value must not be empty" {
		t.Fatalf("expected english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "value must not be empty" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_LimitsAndUnknownCodes(t *testing.T) {
	if msg := T("too_long", map[string]string{"max": "5"}); msg != "too long (max 5)" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := T("too_long", nil); msg != "too long" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes should echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
