package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"art-historian/internal/chat"
	"art-historian/internal/conversation"
	"art-historian/internal/conversation/memory"
	"art-historian/internal/locale"
	"art-historian/internal/model"
	"art-historian/pkg/llmprovider"
)

// mockGenerator records every request and answers with text or err.
type mockGenerator struct {
	mu       sync.Mutex
	text     string
	err      error
	delay    time.Duration
	requests []*llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: m.text}}},
		Usage:   &llmprovider.Usage{},
	}, nil
}

func (m *mockGenerator) last() *llmprovider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(gen *mockGenerator) (*implUseCase, conversation.Store, *mockLogger) {
	store := memory.New(memory.Config{})
	l := &mockLogger{}
	return New(store, gen, l, Config{}), store, l
}

func TestChat_RoundTrip(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{text: "Monet founded Impressionism."}
	uc, store, _ := newTestUseCase(gen)

	out, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "c1", Message: "Who was Monet?", Language: model.LanguageEnglish})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantResp := "Esteemed art enthusiast, Monet founded Impressionism." + locale.For(model.LanguageEnglish).Closing
	if out.Response != wantResp {
		t.Errorf("expected %q, got %q", wantResp, out.Response)
	}
	if out.ConversationID != "c1" || out.Language != model.LanguageEnglish {
		t.Errorf("unexpected output %+v", out)
	}

	history, _ := store.RecentHistory(ctx, "c1", 100)
	if len(history) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(history))
	}
	if history[0].Role != conversation.RoleUser || history[0].Content != "Who was Monet?" {
		t.Errorf("unexpected user turn %+v", history[0])
	}
	if history[1].Role != conversation.RoleAssistant || history[1].Content != wantResp {
		t.Errorf("unexpected assistant turn %+v", history[1])
	}

	// Second call sees the first exchange.
	if _, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "c1", Message: "And Manet?", Language: model.LanguageEnglish}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := gen.last()
	if len(req.Messages) != 3 {
		t.Fatalf("expected 2 history messages + current, got %d", len(req.Messages))
	}
	if req.Messages[1].Role != llmprovider.RoleAssistant {
		t.Errorf("assistant turn should map to assistant role, got %s", req.Messages[1].Role)
	}
	history, _ = store.RecentHistory(ctx, "c1", 100)
	if len(history) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(history))
	}

	// A different id starts clean.
	if _, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "c2", Message: "Hello", Language: model.LanguageEnglish}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.last().Messages) != 1 {
		t.Errorf("c2 must not see c1 history, got %d messages", len(gen.last().Messages))
	}
}

func TestChat_SystemPromptAndSampling(t *testing.T) {
	tests := []struct {
		name string
		lang model.Language
		want model.Language
	}{
		{name: "french", lang: model.LanguageFrench, want: model.LanguageFrench},
		{name: "hindi", lang: model.LanguageHindi, want: model.LanguageHindi},
		{name: "unknown falls back to english", lang: model.Language("xx"), want: model.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &mockGenerator{text: "ok"}
			uc, _, _ := newTestUseCase(gen)

			out, err := uc.Chat(context.Background(), chat.ChatInput{ConversationID: "c", Message: "hi", Language: tt.lang})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Language != tt.want {
				t.Errorf("expected language %s, got %s", tt.want, out.Language)
			}

			req := gen.last()
			if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != locale.For(tt.want).SystemPrompt {
				t.Errorf("system instruction does not match %s prompt", tt.want)
			}
			if req.Temperature != DefaultTemperature || req.MaxTokens != DefaultMaxOutputTokens {
				t.Errorf("unexpected sampling params %v / %d", req.Temperature, req.MaxTokens)
			}
		})
	}
}

func TestChat_HistoryWindow(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{text: "answer"}
	uc, _, _ := newTestUseCase(gen)

	for i := 0; i < 5; i++ {
		if _, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "c1", Message: fmt.Sprintf("q%d", i), Language: model.LanguageEnglish}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	req := gen.last()
	if len(req.Messages) != DefaultHistoryWindow+1 {
		t.Fatalf("expected %d messages, got %d", DefaultHistoryWindow+1, len(req.Messages))
	}
	if req.Messages[0].Parts[0].Text != "q1" {
		t.Errorf("window should start at q1, got %q", req.Messages[0].Parts[0].Text)
	}
	if got := req.Messages[len(req.Messages)-1].Parts[0].Text; got != "q4" {
		t.Errorf("current message should be last, got %q", got)
	}
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		gen     *mockGenerator
		timeout time.Duration
		wantErr error
	}{
		{name: "empty text", gen: &mockGenerator{text: ""}, wantErr: chat.ErrGenerationEmpty},
		{name: "provider failure", gen: &mockGenerator{err: errors.New("boom")}, wantErr: chat.ErrGenerationFailed},
		{name: "provider timeout", gen: &mockGenerator{err: llmprovider.ErrProviderTimeout}, wantErr: chat.ErrGenerationTimeout},
		{name: "deadline", gen: &mockGenerator{text: "late", delay: time.Second}, timeout: 20 * time.Millisecond, wantErr: chat.ErrGenerationTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New(memory.Config{})
			uc := New(store, tt.gen, &mockLogger{}, Config{Timeout: tt.timeout})

			_, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "c1", Message: "hi", Language: model.LanguageEnglish})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			history, _ := store.RecentHistory(ctx, "c1", 100)
			if len(history) != 0 {
				t.Errorf("failed calls must not append turns, got %d", len(history))
			}
		})
	}
}

func TestChat_MintsConversationID(t *testing.T) {
	gen := &mockGenerator{text: "ok"}
	uc, store, _ := newTestUseCase(gen)
	uc.newID = func() string { return "minted-id" }

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ConversationID != "minted-id" {
		t.Errorf("expected minted id, got %q", out.ConversationID)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored conversation, got %d", store.Len())
	}
}

func TestChat_Image(t *testing.T) {
	// 1x1 transparent PNG.
	const png = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

	t.Run("data url attached", func(t *testing.T) {
		gen := &mockGenerator{text: "A small image."}
		uc, _, l := newTestUseCase(gen)

		_, err := uc.Chat(context.Background(), chat.ChatInput{
			ConversationID: "c1", Message: "What is this?", Image: "data:image/png;base64," + png,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		parts := gen.last().Messages[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil {
			t.Fatalf("expected text + image parts, got %+v", parts)
		}
		if parts[1].InlineData.MimeType != "image/png" {
			t.Errorf("unexpected mime %q", parts[1].InlineData.MimeType)
		}
		if len(l.warnMessages) != 0 {
			t.Errorf("unexpected warnings %v", l.warnMessages)
		}
	})

	t.Run("bare base64 sniffed", func(t *testing.T) {
		gen := &mockGenerator{text: "ok"}
		uc, _, _ := newTestUseCase(gen)

		_, _ = uc.Chat(context.Background(), chat.ChatInput{ConversationID: "c1", Message: "?", Image: png})
		parts := gen.last().Messages[0].Parts
		if len(parts) != 2 || parts[1].InlineData.MimeType != "image/png" {
			t.Fatalf("expected sniffed png, got %+v", parts)
		}
	})

	t.Run("garbage dropped with warning", func(t *testing.T) {
		gen := &mockGenerator{text: "ok"}
		uc, _, l := newTestUseCase(gen)

		_, err := uc.Chat(context.Background(), chat.ChatInput{ConversationID: "c1", Message: "?", Image: "not an image!!"})
		if err != nil {
			t.Fatalf("image problems must not fail the chat: %v", err)
		}
		if len(gen.last().Messages[0].Parts) != 1 {
			t.Errorf("expected image to be dropped")
		}
		if len(l.warnMessages) != 1 {
			t.Errorf("expected one warning, got %v", l.warnMessages)
		}
	})

	t.Run("non image payload dropped", func(t *testing.T) {
		gen := &mockGenerator{text: "ok"}
		uc, _, _ := newTestUseCase(gen)

		_, _ = uc.Chat(context.Background(), chat.ChatInput{
			ConversationID: "c1", Message: "?", Image: "data:text/plain;base64,aGVsbG8=",
		})
		if len(gen.last().Messages[0].Parts) != 1 {
			t.Errorf("expected text payload to be dropped")
		}
	})
}

func TestChat_ConcurrentSameConversation(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{text: "answer", delay: time.Millisecond}
	uc, store, _ := newTestUseCase(gen)

	const calls = 20
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "shared", Message: fmt.Sprintf("q%d", i), Language: model.LanguageEnglish})
			if err != nil {
				t.Errorf("call %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	history, _ := store.RecentHistory(ctx, "shared", 1000)
	if len(history) != 2*calls {
		t.Fatalf("expected %d turns, got %d", 2*calls, len(history))
	}
	for i := 0; i < len(history); i += 2 {
		if history[i].Role != conversation.RoleUser || history[i+1].Role != conversation.RoleAssistant {
			t.Fatalf("turns interleaved at %d", i)
		}
		if !strings.HasPrefix(history[i].Content, "q") {
			t.Fatalf("unexpected user content %q", history[i].Content)
		}
	}
	if uc.locks.Len() != 0 {
		t.Errorf("expected lock table to be empty, got %d", uc.locks.Len())
	}
}

// evictingGenerator starts a chat on another conversation from inside the
// first generation call, pushing the caller's conversation out of a
// single-entry store before its reply is appended.
type evictingGenerator struct {
	inner *mockGenerator
	fired atomic.Bool
	other func()
}

func (g *evictingGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if g.fired.CompareAndSwap(false, true) {
		g.other()
	}
	return g.inner.GenerateContent(ctx, req)
}

func TestChat_ConversationEvictedDuringGeneration(t *testing.T) {
	ctx := context.Background()
	store := memory.New(memory.Config{MaxEntries: 1})
	gen := &evictingGenerator{inner: &mockGenerator{text: "Caravaggio used chiaroscuro."}}
	uc := New(store, gen, &mockLogger{}, Config{})

	var otherErr error
	gen.other = func() {
		_, otherErr = uc.Chat(ctx, chat.ChatInput{ConversationID: "c2", Message: "Hello", Language: model.LanguageEnglish})
	}

	out, err := uc.Chat(ctx, chat.ChatInput{ConversationID: "c1", Message: "Who was Caravaggio?", Language: model.LanguageFrench})
	if err != nil {
		t.Fatalf("expected the generated reply, got %v", err)
	}
	if otherErr != nil {
		t.Fatalf("c2 chat: %v", otherErr)
	}
	if !strings.Contains(out.Response, "Caravaggio used chiaroscuro.") {
		t.Errorf("unexpected response %q", out.Response)
	}

	history, err := store.RecentHistory(ctx, "c1", 100)
	if err != nil {
		t.Fatalf("expected c1 to be stored again, got %v", err)
	}
	if len(history) != 2 || history[0].Content != "Who was Caravaggio?" || history[1].Content != out.Response {
		t.Errorf("unexpected history %+v", history)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	gen := &mockGenerator{text: "ok"}
	uc, store, _ := newTestUseCase(gen)

	_, _ = uc.Chat(ctx, chat.ChatInput{ConversationID: "c1", Message: "hi"})
	if err := uc.Reset(ctx, "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected conversation removed")
	}
	if err := uc.Reset(ctx, "never-seen"); err != nil {
		t.Errorf("reset of unknown id should succeed, got %v", err)
	}
}
