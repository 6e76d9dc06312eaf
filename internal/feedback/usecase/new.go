package usecase

import "art-historian/pkg/log"

// implUseCase is the private implementation of feedback.UseCase.
type implUseCase struct {
	l log.Logger
}

// New creates a new feedback UseCase implementation.
func New(l log.Logger) *implUseCase {
	return &implUseCase{l: l}
}
