package http

import (
	"art-historian/internal/artwork"
	"art-historian/internal/model"
)

// --- Request DTOs ---

type dailyReq struct {
	Language string `form:"language"`
}

func (r dailyReq) toInput() artwork.DailyInput {
	return artwork.DailyInput{Language: model.ParseLanguage(r.Language)}
}

type searchReq struct {
	Query    string `form:"q"`
	Language string `form:"language"`
}

func (r searchReq) toInput() artwork.SearchInput {
	return artwork.SearchInput{
		Query:    r.Query,
		Language: model.ParseLanguage(r.Language),
	}
}

// --- Response DTOs ---

type artworkResp struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Period      string `json:"period"`
	Year        string `json:"year"`
	Style       string `json:"style"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

func newArtworkResp(a artwork.Artwork) artworkResp {
	return artworkResp{
		ID:          a.ID,
		Title:       a.Title,
		Artist:      a.Artist,
		Period:      a.Period,
		Year:        a.Year,
		Style:       a.Style,
		ImageURL:    a.ImageURL,
		Description: a.Description,
	}
}

type searchResp struct {
	Results []artworkResp `json:"results"`
	Count   int           `json:"count"`
}

func (h *handler) newSearchResp(out artwork.SearchOutput) searchResp {
	results := make([]artworkResp, len(out.Results))
	for i, a := range out.Results {
		results[i] = newArtworkResp(a)
	}
	return searchResp{Results: results, Count: len(results)}
}
