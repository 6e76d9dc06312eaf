package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultClientTimeout = 90 * time.Second

// Client talks to the art historian HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatReply, error) {
	var reply ChatReply
	err := c.do(ctx, http.MethodPost, "/api/chat", req, &reply)
	return reply, err
}

func (c *Client) Reset(ctx context.Context, conversationID string) error {
	return c.do(ctx, http.MethodDelete, "/api/chat/"+url.PathEscape(conversationID), nil, nil)
}

func (c *Client) DailyArtwork(ctx context.Context, lang string) (Artwork, error) {
	var a Artwork
	err := c.do(ctx, http.MethodGet, "/api/daily-artwork?language="+url.QueryEscape(lang), nil, &a)
	return a, err
}

// Feedback returns the server's localized acknowledgement.
func (c *Client) Feedback(ctx context.Context, req FeedbackRequest) (string, error) {
	var reply statusReply
	if err := c.do(ctx, http.MethodPost, "/api/feedback", req, &reply); err != nil {
		return "", err
	}
	return reply.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorReply
		_ = json.Unmarshal(raw, &e)
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
