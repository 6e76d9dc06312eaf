package llmprovider

import (
	"context"

	"art-historian/pkg/gemini"
)

const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
)

// GeminiAdapter adapts any gemini.IGemini (REST or SDK backed) to Provider.
type GeminiAdapter struct {
	name   string
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter reporting itself as name.
func NewGeminiAdapter(name string, client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return a.name
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	c := convertMessage(*msg)
	c.Role = ""
	return &c
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	out := make([]gemini.Content, len(msgs))
	for i, m := range msgs {
		out[i] = convertMessage(m)
	}
	return out
}

func convertMessage(m Message) gemini.Content {
	role := gemini.RoleUser
	if m.Role == RoleAssistant {
		role = gemini.RoleModel
	}

	parts := make([]gemini.Part, len(m.Parts))
	for i, p := range m.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.InlineData != nil {
			parts[i].InlineData = &gemini.InlineData{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}
		}
	}
	return gemini.Content{Role: role, Parts: parts}
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, 0, len(content.Parts))
	for _, p := range content.Parts {
		part := Part{Text: p.Text}
		if p.InlineData != nil {
			part.InlineData = &InlineData{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}
		}
		parts = append(parts, part)
	}
	return Message{Role: RoleAssistant, Parts: parts}
}
