package http

import (
	"art-historian/internal/chat"
	"art-historian/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
	Image          string `json:"image"`
	Language       string `json:"language"`
}

func (r chatReq) language() model.Language {
	return model.ParseLanguage(r.Language)
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
		Image:          r.Image,
		Language:       r.language(),
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
	Language       string `json:"language"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:       out.Response,
		ConversationID: out.ConversationID,
		Language:       out.Language.String(),
	}
}
