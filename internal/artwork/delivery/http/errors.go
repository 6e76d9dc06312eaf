package http

import (
	"errors"
	"net/http"

	"art-historian/internal/artwork"
	pkgErrors "art-historian/pkg/errors"
)

// mapError translates artwork errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, artwork.ErrEmptyCatalog):
		return pkgErrors.Wrap(err, http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
