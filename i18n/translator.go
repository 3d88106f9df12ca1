package i18n

import "fmt"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "値を空にすることはできません"
		case "invalid_type":
			return "型が不正です"
		case "invalid_format":
			return "形式が不正です"
		case "too_small":
			return withLimit("小さすぎます", "最小", data["min"])
		case "too_big":
			return withLimit("大きすぎます", "最大", data["max"])
		case "too_short":
			return withLimit("短すぎます", "最小", data["min"])
		case "too_long":
			return withLimit("長すぎます", "最大", data["max"])
		case "pattern":
			return "パターンに一致しません"
		case "invalid_enum":
			return "許可されていない値です"
		case "uniqueness":
			return "値が重複しています"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "required":
			return "value must not be empty"
		case "invalid_type":
			return "invalid type"
		case "invalid_format":
			return "invalid format"
		case "too_small":
			return withLimit("too small", "min", data["min"])
		case "too_big":
			return withLimit("too big", "max", data["max"])
		case "too_short":
			return withLimit("too short", "min", data["min"])
		case "too_long":
			return withLimit("too long", "max", data["max"])
		case "pattern":
			return "does not match pattern"
		case "invalid_enum":
			return "value is not allowed"
		case "uniqueness":
			return "duplicate value"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

func withLimit(msg, label, limit string) string {
	if limit == "" {
		return msg
	}
	return fmt.Sprintf("%s (%s %s)", msg, label, limit)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
