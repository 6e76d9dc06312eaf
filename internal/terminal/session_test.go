package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"art-historian/internal/model"
)

type fakeServer struct {
	mu       sync.Mutex
	chats    []ChatRequest
	feedback []FeedbackRequest
	resets   []string
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/chat":
		var req ChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.chats = append(f.chats, req)
		id := req.ConversationID
		if id == "" {
			id = "minted"
		}
		_ = json.NewEncoder(w).Encode(ChatReply{Response: "Reply to " + req.Message, ConversationID: id, Language: req.Language})
	case r.Method == http.MethodPost && r.URL.Path == "/api/feedback":
		var req FeedbackRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.feedback = append(f.feedback, req)
		_ = json.NewEncoder(w).Encode(statusReply{Message: "thanks", Status: "success"})
	case r.Method == http.MethodDelete:
		f.resets = append(f.resets, strings.TrimPrefix(r.URL.Path, "/api/chat/"))
		_ = json.NewEncoder(w).Encode(statusReply{Status: "success"})
	case r.URL.Path == "/api/daily-artwork":
		_ = json.NewEncoder(w).Encode(Artwork{Title: "Mona Lisa", Artist: "Leonardo da Vinci"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func runSession(t *testing.T, input string) (*Session, *fakeServer, string) {
	t.Helper()
	fs := &fakeServer{}
	ts := httptest.NewServer(fs)
	t.Cleanup(ts.Close)

	var out bytes.Buffer
	s := NewSession(NewClient(ts.URL, nil), NewPlainDisplay(&out), strings.NewReader(input), model.LanguageEnglish)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return s, fs, out.String()
}

func TestSession_ChatKeepsConversationID(t *testing.T) {
	s, fs, out := runSession(t, "Who painted the Mona Lisa?\nAnd when?\n")

	if len(fs.chats) != 2 {
		t.Fatalf("expected 2 chat calls, got %d", len(fs.chats))
	}
	if fs.chats[0].ConversationID != "" || fs.chats[1].ConversationID != "minted" {
		t.Errorf("conversation id not carried: %+v", fs.chats)
	}
	if s.ConversationID() != "minted" {
		t.Errorf("expected minted id, got %q", s.ConversationID())
	}
	if !strings.Contains(out, "Reply to And when?") {
		t.Errorf("reply missing from output: %q", out)
	}
	if !strings.Contains(out, "Hello! I am your Art History AI.") {
		t.Errorf("welcome missing from output: %q", out)
	}
}

func TestSession_Commands(t *testing.T) {
	input := strings.Join([]string{
		"/lang es",
		"/about",
		"hola",
		"/feedback yes very clear",
		"/artwork",
		"/reset",
		"/lang xx",
		"/unknown",
		"/exit",
		"never sent",
	}, "\n")

	s, fs, out := runSession(t, input)

	if s.Language() != model.LanguageSpanish {
		t.Errorf("expected es, got %s", s.Language())
	}
	if len(fs.chats) != 1 || fs.chats[0].Language != "es" {
		t.Fatalf("unexpected chats %+v", fs.chats)
	}

	if len(fs.feedback) != 1 {
		t.Fatalf("expected one feedback call, got %d", len(fs.feedback))
	}
	fb := fs.feedback[0]
	if fb.WasHelpful == nil || !*fb.WasHelpful || fb.FeedbackText != "very clear" || fb.ConversationID != "minted" {
		t.Errorf("unexpected feedback %+v", fb)
	}

	if len(fs.resets) != 1 || fs.resets[0] != "minted" {
		t.Errorf("unexpected resets %v", fs.resets)
	}
	if s.ConversationID() != "" {
		t.Errorf("expected cleared conversation id, got %q", s.ConversationID())
	}

	for _, want := range []string{"Mona Lisa", "thanks", "Fui creado por SHELLY Y HANNA.", `unsupported language "xx"`, "unknown command /unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
