package http

import (
	"art-historian/internal/feedback"
	"art-historian/internal/model"
)

type submitReq struct {
	Language       string `json:"language"`
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
	WasHelpful     *bool  `json:"wasHelpful"`
	FeedbackText   string `json:"feedbackText"`
}

func (r submitReq) toInput() feedback.SubmitInput {
	return feedback.SubmitInput{
		Language:       model.ParseLanguage(r.Language),
		ConversationID: r.ConversationID,
		MessageID:      r.MessageID,
		WasHelpful:     r.WasHelpful,
		FeedbackText:   r.FeedbackText,
	}
}
