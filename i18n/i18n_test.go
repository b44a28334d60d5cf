package i18n_test

import (
	"testing"

	"github.com/lametta/lametta-go/i18n"
)

type fixedTranslator struct{}

func (fixedTranslator) Message(code string, data map[string]string) string { return "X:" + code }

func TestT_EnglishDefaults(t *testing.T) {
	if got := i18n.T("missing_field", nil); got != "required field missing" {
		t.Fatalf("T(missing_field) = %q", got)
	}
	if got := i18n.T("type_mismatch", map[string]string{"expected": "integer", "actual": "string"}); got != "expected integer, got string" {
		t.Fatalf("T(type_mismatch) = %q", got)
	}
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes echo themselves, got %q", got)
	}
}

func TestSetLanguageAndTranslator(t *testing.T) {
	i18n.SetLanguage("ja")
	if got := i18n.T("missing_field", nil); got == "required field missing" {
		t.Fatalf("expected japanese message, got %q", got)
	}
	i18n.SetLanguage("en")

	i18n.SetTranslator(fixedTranslator{})
	if got := i18n.T("missing_field", nil); got != "X:missing_field" {
		t.Fatalf("custom translator ignored: %q", got)
	}
	i18n.SetTranslator(nil)
	if got := i18n.T("missing_field", nil); got != "required field missing" {
		t.Fatalf("nil translator should restore the default: %q", got)
	}
}
