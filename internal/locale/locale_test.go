package locale

import (
	"strings"
	"testing"

	"art-historian/internal/model"
)

func TestFor_EveryLanguageComplete(t *testing.T) {
	for _, lang := range model.SupportedLanguages {
		b := For(lang)
		if b.SystemPrompt == "" || b.Closing == "" || b.Acknowledgment == "" {
			t.Errorf("%s: incomplete bundle", lang)
		}
		if len(b.Openings) == 0 {
			t.Errorf("%s: no openings", lang)
		}
	}
}

func TestFor_UnknownFallsBackToEnglish(t *testing.T) {
	got := For(model.Language("xx"))
	want := For(model.LanguageEnglish)
	if got.SystemPrompt != want.SystemPrompt {
		t.Errorf("expected english bundle for unknown language")
	}
}

func TestClosings(t *testing.T) {
	closings := Closings()
	if len(closings) != len(model.SupportedLanguages) {
		t.Fatalf("expected %d closings, got %d", len(model.SupportedLanguages), len(closings))
	}
	for _, c := range closings {
		if !strings.HasPrefix(c, "\n\n") {
			t.Errorf("closing %q should start with a blank line", c)
		}
	}
}

func TestPromptHeadline(t *testing.T) {
	got := PromptHeadline(model.LanguageEnglish)
	want := "You are Art Historian AI, an expert in art history. Maintain a formal, scholarly tone."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFor_PromptQuotesCreatorResponse(t *testing.T) {
	for _, lang := range model.SupportedLanguages {
		b := For(lang)
		if b.CreatorResponse == "" {
			t.Errorf("%s: empty creator response", lang)
			continue
		}
		if !strings.Contains(b.SystemPrompt, b.CreatorResponse) {
			t.Errorf("%s: system prompt does not quote the creator response", lang)
		}
	}
}
