package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one user turn and records it in the conversation.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// Reset forgets a conversation. Unknown ids are not an error.
	Reset(ctx context.Context, conversationID string) error
}
