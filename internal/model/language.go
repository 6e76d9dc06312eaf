package model

import "strings"

// Language is a supported response language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
)

// DefaultLanguage is used whenever a caller supplies an unknown code.
const DefaultLanguage = LanguageEnglish

// SupportedLanguages lists every language in a stable order.
var SupportedLanguages = []Language{
	LanguageEnglish,
	LanguageHindi,
	LanguageSpanish,
	LanguageFrench,
}

// ParseLanguage normalises v into a supported Language, falling back to English.
func ParseLanguage(v string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(v)))
	if lang.IsSupported() {
		return lang
	}
	return DefaultLanguage
}

// IsSupported reports whether l is one of SupportedLanguages.
func (l Language) IsSupported() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageSpanish, LanguageFrench:
		return true
	default:
		return false
	}
}

func (l Language) String() string {
	return string(l)
}
