package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "actual").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return "型が一致しません"
		case "missing_field":
			return "必須フィールドが不足しています"
		case "unexpected_field":
			return "未知のフィールドです"
		case "arity_mismatch":
			return "タプルの要素数が一致しません"
		case "discriminant_missing":
			return "判別フィールドが不足しています"
		case "no_matching_variant":
			return "一致するバリアントがありません"
		case "ambiguous_variant":
			return "バリアントが一意に定まりません"
		case "parse_error":
			return "解析エラー"
		case "duplicate_schema":
			return "スキーマは登録済みです"
		case "inconsistent_union":
			return "ユニオンの定義が不整合です"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			if data != nil && data["expected"] != "" && data["actual"] != "" {
				return "expected " + data["expected"] + ", got " + data["actual"]
			}
			return "type mismatch"
		case "missing_field":
			return "required field missing"
		case "unexpected_field":
			return "unexpected field"
		case "arity_mismatch":
			return "tuple arity mismatch"
		case "discriminant_missing":
			return "discriminant missing"
		case "no_matching_variant":
			return "no matching variant"
		case "ambiguous_variant":
			return "ambiguous variant"
		case "parse_error":
			return "parse error"
		case "duplicate_schema":
			return "schema already registered"
		case "inconsistent_union":
			return "inconsistent union"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// T returns the message for code from the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}

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
