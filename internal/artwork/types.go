package artwork

import "art-historian/internal/model"

// Artwork is an immutable catalog record.
type Artwork struct {
	ID          int
	Title       string
	Artist      string
	Period      string
	Year        string
	Style       string
	ImageURL    string
	Description string
	// Descriptions holds per-language descriptions for records that have them.
	Descriptions map[model.Language]string
}

// Localize returns a copy whose Description is resolved for lang
// (lang, then English, then the plain Description) with Descriptions cleared.
func (a Artwork) Localize(lang model.Language) Artwork {
	if len(a.Descriptions) > 0 {
		if d, ok := a.Descriptions[lang]; ok {
			a.Description = d
		} else if d, ok := a.Descriptions[model.LanguageEnglish]; ok {
			a.Description = d
		}
	}
	a.Descriptions = nil
	return a
}

// --- UseCase Inputs ---

type DailyInput struct {
	Language model.Language
	// Day is the day of month used for rotation. Zero means today.
	Day int
}

type SearchInput struct {
	Query    string
	Language model.Language
}

// --- UseCase Outputs ---

type DailyOutput struct {
	Artwork Artwork
}

type SearchOutput struct {
	Results []Artwork
}
