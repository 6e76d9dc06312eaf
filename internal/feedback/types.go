package feedback

import "art-historian/internal/model"

// --- UseCase Inputs ---

// SubmitInput is what the web client reports about one reply.
// Only Language affects the answer; the rest is logged.
type SubmitInput struct {
	Language       model.Language
	ConversationID string
	MessageID      string
	WasHelpful     *bool
	FeedbackText   string
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	Message string
}
