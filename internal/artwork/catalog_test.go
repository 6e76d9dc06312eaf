package artwork

import (
	"errors"
	"testing"

	"art-historian/internal/model"
)

func TestCatalog_DailyIsPeriodic(t *testing.T) {
	c := DefaultCatalog()
	n := c.Len()
	if n == 0 {
		t.Fatal("default catalog is empty")
	}

	for d := 0; d <= 31; d++ {
		a, err := c.Daily(d)
		if err != nil {
			t.Fatalf("Daily(%d): %v", d, err)
		}
		b, _ := c.Daily(d + n)
		if a.ID != b.ID {
			t.Errorf("Daily(%d)=%d but Daily(%d)=%d", d, a.ID, d+n, b.ID)
		}
	}
}

func TestCatalog_DailyIndex(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		day    int
		wantID int
	}{
		{day: 0, wantID: 1},
		{day: 1, wantID: 2},
		{day: 4, wantID: 1},
		{day: 31, wantID: 4},
		{day: -1, wantID: 4},
	}
	for _, tt := range tests {
		a, err := c.Daily(tt.day)
		if err != nil {
			t.Fatalf("Daily(%d): %v", tt.day, err)
		}
		if a.ID != tt.wantID {
			t.Errorf("Daily(%d): expected id %d, got %d", tt.day, tt.wantID, a.ID)
		}
	}
}

func TestCatalog_DailyEmpty(t *testing.T) {
	c := NewCatalog(nil)
	if _, err := c.Daily(3); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestCatalog_Search(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "artist any case", query: "VAN GOGH", wantIDs: []int{2}},
		{name: "period", query: "surreal", wantIDs: []int{4}},
		{name: "style", query: "woodblock", wantIDs: []int{3}},
		{name: "title substring across records", query: "the", wantIDs: []int{2, 3, 4}},
		{name: "no match", query: "cubism", wantIDs: nil},
		{name: "empty query matches all", query: "", wantIDs: []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.query)
			if got == nil {
				t.Fatal("Search must return an empty slice, not nil")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d results, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestArtwork_Localize(t *testing.T) {
	a := Artwork{
		Description: "plain",
		Descriptions: map[model.Language]string{
			model.LanguageEnglish: "english",
			model.LanguageFrench:  "français",
		},
	}

	if got := a.Localize(model.LanguageFrench); got.Description != "français" || got.Descriptions != nil {
		t.Errorf("fr: unexpected %+v", got)
	}
	if got := a.Localize(model.LanguageHindi); got.Description != "english" {
		t.Errorf("hi: expected english fallback, got %q", got.Description)
	}
	if got := (Artwork{Description: "plain"}).Localize(model.LanguageSpanish); got.Description != "plain" {
		t.Errorf("plain: expected plain description, got %q", got.Description)
	}
	if len(a.Descriptions) != 2 {
		t.Error("Localize must not modify the receiver")
	}
}
