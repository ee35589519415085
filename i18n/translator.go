package i18n

// Translator retrieves localized messages for parse error codes.
// data provides optional metadata to embed in the message (for example,
// "text").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "empty_input":
			return "入力が空です"
		case "malformed_type_expression":
			return "型式が不正です"
		case "unterminated_directive_block":
			return "ディレクティブのブロックがありません"
		case "unbalanced_bracket":
			return "角括弧が閉じられていません"
		}
	default: // "en"
		switch code {
		case "empty_input":
			return "empty input"
		case "malformed_type_expression":
			return "malformed type expression"
		case "unterminated_directive_block":
			return "directive without block"
		case "unbalanced_bracket":
			return "unbalanced bracket"
		}
	}
	return code
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
