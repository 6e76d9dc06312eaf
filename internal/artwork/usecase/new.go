package usecase

import (
	"time"

	"art-historian/internal/artwork"
	"art-historian/pkg/log"
)

// implUseCase is the private implementation of artwork.UseCase.
type implUseCase struct {
	catalog *artwork.Catalog
	l       log.Logger
	now     func() time.Time
}

// New creates a new artwork UseCase implementation.
func New(catalog *artwork.Catalog, l log.Logger) *implUseCase {
	return &implUseCase{
		catalog: catalog,
		l:       l,
		now:     time.Now,
	}
}
