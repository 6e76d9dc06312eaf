package usecase

import (
	"context"

	"art-historian/internal/feedback"
)

// Submit records the feedback in the log and returns the acknowledgement.
func (uc *implUseCase) Submit(ctx context.Context, input feedback.SubmitInput) (feedback.SubmitOutput, error) {
	fields := []any{
		"language", input.Language.String(),
		"conversation_id", input.ConversationID,
		"message_id", input.MessageID,
		"feedback_text", input.FeedbackText,
	}
	if input.WasHelpful != nil {
		fields = append(fields, "was_helpful", *input.WasHelpful)
	}
	uc.l.Info(ctx, append([]any{"feedback received"}, fields...)...)

	return feedback.SubmitOutput{Message: feedback.Acknowledge(input.Language)}, nil
}
