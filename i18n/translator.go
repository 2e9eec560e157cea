package i18n

import "fmt"

// Translator retrieves localized messages for Issue codes. data provides
// optional metadata to embed in the message (for example, "key" or "target").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"invalid_type":    "invalid type",
		"required":        "required field missing",
		"unknown_key":     "unknown field",
		"duplicate_key":   "duplicate key",
		"missing_key":     "key not present",
		"coercion_failed": "coercion failed",
		"config_error":    "invalid declaration",
	},
	"ja": {
		"invalid_type":    "型が不正です",
		"required":        "必須フィールドが不足しています",
		"unknown_key":     "未知のフィールドです",
		"duplicate_key":   "キーが重複しています",
		"missing_key":     "キーが存在しません",
		"coercion_failed": "型変換に失敗しました",
		"config_error":    "宣言が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := messages[t.lang]
	if !ok {
		dict = messages["en"]
	}
	msg, ok := dict[code]
	if !ok {
		return code
	}
	if target, ok := data["target"]; ok {
		msg = fmt.Sprintf("%s (target %s)", msg, target)
	}
	if key, ok := data["key"]; ok {
		msg = fmt.Sprintf("%s: %s", msg, key)
	}
	return msg
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
