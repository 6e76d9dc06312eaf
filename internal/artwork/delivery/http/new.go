package http

import (
	"art-historian/internal/artwork"
	"art-historian/pkg/log"
)

type handler struct {
	l  log.Logger
	uc artwork.UseCase
}

// New creates a new HTTP handler for the artwork domain.
func New(l log.Logger, uc artwork.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
