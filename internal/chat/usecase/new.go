package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"art-historian/internal/conversation"
	"art-historian/pkg/llmprovider"
	"art-historian/pkg/log"
)

// Generator is the text generation dependency, satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes generation. Zero values select the defaults in constant.go.
type Config struct {
	Temperature     float64
	MaxOutputTokens int
	HistoryWindow   int
	Timeout         time.Duration
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	store conversation.Store
	llm   Generator
	l     log.Logger
	cfg   Config
	locks *keyedMutex
	newID func() string
}

// New creates a new chat UseCase implementation.
func New(store conversation.Store, llm Generator, l log.Logger, cfg Config) *implUseCase {
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &implUseCase{
		store: store,
		llm:   llm,
		l:     l,
		cfg:   cfg,
		locks: newKeyedMutex(),
		newID: uuid.NewString,
	}
}
