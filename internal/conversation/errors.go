package conversation

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
)
