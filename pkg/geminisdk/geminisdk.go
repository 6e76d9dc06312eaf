// Package geminisdk implements gemini.IGemini on top of the official
// google.golang.org/genai client.
package geminisdk

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"art-historian/pkg/gemini"
)

// Config configures the SDK backed client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type sdkImpl struct {
	client *genai.Client
	model  string
}

// New creates a gemini.IGemini backed by genai.Client.
func New(ctx context.Context, cfg Config) (gemini.IGemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geminisdk: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = gemini.DefaultModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("geminisdk: error creating client: %w", err)
	}

	return &sdkImpl{client: client, model: cfg.Model}, nil
}

func (s *sdkImpl) Model() string {
	return s.model
}

// GenerateContent sends req through Models.GenerateContent.
func (s *sdkImpl) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		contents = append(contents, toSDKContent(msg))
	}

	genCfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != nil {
		genCfg.SystemInstruction = toSDKContent(*req.SystemInstruction)
	}
	if req.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, genCfg)
	if err != nil {
		return nil, fmt.Errorf("geminisdk: generate content: %w", err)
	}

	return fromSDKResponse(resp), nil
}

func toSDKContent(c gemini.Content) *genai.Content {
	parts := make([]*genai.Part, 0, len(c.Parts))
	for _, p := range c.Parts {
		if p.InlineData != nil {
			parts = append(parts, genai.NewPartFromBytes(p.InlineData.Data, p.InlineData.MimeType))
			continue
		}
		parts = append(parts, genai.NewPartFromText(p.Text))
	}
	return &genai.Content{Role: c.Role, Parts: parts}
}

func fromSDKResponse(resp *genai.GenerateContentResponse) *gemini.Response {
	out := &gemini.Response{Usage: &gemini.Usage{}}
	if resp == nil {
		return out
	}

	if u := resp.UsageMetadata; u != nil {
		out.Usage = &gemini.Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}

	if len(resp.Candidates) == 0 {
		return out
	}

	cand := resp.Candidates[0]
	out.FinishReason = string(cand.FinishReason)
	if text := resp.Text(); text != "" {
		out.Content = gemini.Content{
			Role:  gemini.RoleModel,
			Parts: []gemini.Part{{Text: text}},
		}
	}
	return out
}
