package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"art-historian/internal/chat"
	"art-historian/internal/conversation"
	"art-historian/internal/locale"
	"art-historian/internal/model"
	"art-historian/pkg/llmprovider"
)

var (
	errImageNotBase64 = errors.New("image is not valid base64")
	errImageNotImage  = errors.New("payload is not an image")
	errImageTooLarge  = errors.New("image exceeds size limit")
)

// buildRequest assembles system prompt, recent history and the current turn.
func (uc *implUseCase) buildRequest(ctx context.Context, lang model.Language, history []conversation.Turn, input chat.ChatInput) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llmprovider.RoleUser
		if turn.Role == conversation.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: turn.Content}},
		})
	}

	current := llmprovider.Message{
		Role:  llmprovider.RoleUser,
		Parts: []llmprovider.Part{{Text: input.Message}},
	}
	if input.Image != "" {
		img, err := decodeImage(input.Image)
		if err != nil {
			uc.l.Warn(ctx, "dropping unusable image", "conversation_id", input.ConversationID, "error", err.Error())
		} else {
			current.Parts = append(current.Parts, llmprovider.Part{InlineData: img})
		}
	}
	messages = append(messages, current)

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Parts: []llmprovider.Part{{Text: locale.For(lang).SystemPrompt}},
		},
		Messages:    messages,
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxOutputTokens,
	}
}

// decodeImage accepts a data URL ("data:image/png;base64,...") or bare base64.
// Without a declared type the MIME type is sniffed from the bytes.
func decodeImage(raw string) (*llmprovider.InlineData, error) {
	payload := strings.TrimSpace(raw)
	mimeType := ""

	if strings.HasPrefix(payload, dataURLPrefix) {
		idx := strings.Index(payload, base64Marker)
		if idx < 0 {
			return nil, errImageNotBase64
		}
		mimeType = payload[len(dataURLPrefix):idx]
		payload = payload[idx+len(base64Marker):]
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes {
		return nil, errImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errImageNotBase64
		}
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, errImageNotImage
	}

	return &llmprovider.InlineData{MimeType: mimeType, Data: data}, nil
}
