package conversation

import (
	"time"

	"art-historian/internal/model"
)

// Role identifies who produced a Turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation history.
type Turn struct {
	Role    Role
	Content string
}

// Conversation is the state kept for one chat session.
type Conversation struct {
	ID        string
	History   []Turn
	Language  model.Language
	CreatedAt time.Time
	UpdatedAt time.Time
}
