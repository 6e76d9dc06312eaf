package locale

import (
	"strings"

	"art-historian/internal/model"
)

// For returns the bundle for lang, or the English bundle for unknown codes.
func For(lang model.Language) Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[model.DefaultLanguage]
}

// Closings returns the closing phrase of every supported language.
func Closings() []string {
	out := make([]string, 0, len(model.SupportedLanguages))
	for _, lang := range model.SupportedLanguages {
		out = append(out, bundles[lang].Closing)
	}
	return out
}

// PromptHeadline is the first line of the system prompt, used to prefix error messages.
func PromptHeadline(lang model.Language) string {
	prompt := For(lang).SystemPrompt
	if i := strings.IndexByte(prompt, '\n'); i >= 0 {
		return prompt[:i]
	}
	return prompt
}
