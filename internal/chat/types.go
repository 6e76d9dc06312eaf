package chat

import "art-historian/internal/model"

// --- UseCase Inputs ---

type ChatInput struct {
	// ConversationID is caller supplied. Empty means start a new conversation.
	ConversationID string
	Message        string
	// Image is an optional base64 payload or data URL.
	Image    string
	Language model.Language
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response       string
	ConversationID string
	Language       model.Language
}
