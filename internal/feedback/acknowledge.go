package feedback

import (
	"art-historian/internal/locale"
	"art-historian/internal/model"
)

// Acknowledge returns the thank-you message for lang, English for unknown codes.
func Acknowledge(lang model.Language) string {
	return locale.For(lang).Acknowledgment
}
