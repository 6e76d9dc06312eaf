package http

import (
	"art-historian/internal/feedback"
	"art-historian/pkg/log"
)

type handler struct {
	l  log.Logger
	uc feedback.UseCase
}

// New creates a new HTTP handler for the feedback domain.
func New(l log.Logger, uc feedback.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
