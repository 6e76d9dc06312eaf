package http

import (
	"errors"
	"net/http"

	"art-historian/internal/chat"
	"art-historian/internal/locale"
	"art-historian/internal/model"
	pkgErrors "art-historian/pkg/errors"
)

const (
	msgNoResponse = "No response generated"
	msgErrorInfix = " An error occurred: "
)

// mapError translates chat errors into HTTP errors from pkg/errors.
// Every failure is a 500; the text is prefixed with the headline of the
// language's system prompt.
func (h *handler) mapError(err error, lang model.Language) error {
	switch {
	case errors.Is(err, chat.ErrGenerationEmpty):
		return pkgErrors.Wrap(err, http.StatusInternalServerError, msgNoResponse)
	case errors.Is(err, chat.ErrGenerationTimeout):
		return pkgErrors.Wrap(err, http.StatusInternalServerError, locale.PromptHeadline(lang)+msgErrorInfix+chat.ErrGenerationTimeout.Error())
	case errors.Is(err, chat.ErrGenerationFailed):
		return pkgErrors.Wrap(err, http.StatusInternalServerError, locale.PromptHeadline(lang)+msgErrorInfix+chat.ErrGenerationFailed.Error())
	default:
		return pkgErrors.Wrap(err, http.StatusInternalServerError, locale.PromptHeadline(lang)+msgErrorInfix+pkgErrors.ErrInternalServerError.Error())
	}
}
