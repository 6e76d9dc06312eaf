package conversation

import (
	"context"

	"art-historian/internal/model"
)

// Store keeps conversation state between chat calls.
//
// Reads return copies; callers never share slices with the store.
//
//go:generate mockery --name Store
type Store interface {
	// GetOrCreate returns the conversation for id, creating an empty one on
	// first reference. The stored language is overwritten with lang.
	GetOrCreate(ctx context.Context, id string, lang model.Language) (Conversation, error)
	// AppendTurns appends turns in order. A conversation evicted since
	// GetOrCreate is re-created in lang.
	AppendTurns(ctx context.Context, id string, lang model.Language, turns ...Turn) error
	// RecentHistory returns at most limit of the latest turns, oldest first.
	RecentHistory(ctx context.Context, id string, limit int) ([]Turn, error)
	Delete(ctx context.Context, id string) error
	Len() int
}
