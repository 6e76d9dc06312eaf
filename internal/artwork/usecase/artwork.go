package usecase

import (
	"context"

	"art-historian/internal/artwork"
)

// Daily returns today's artwork (or the one for input.Day) localized to input.Language.
func (uc *implUseCase) Daily(ctx context.Context, input artwork.DailyInput) (artwork.DailyOutput, error) {
	day := input.Day
	if day == 0 {
		day = uc.now().Day()
	}

	a, err := uc.catalog.Daily(day)
	if err != nil {
		uc.l.Errorf(ctx, "artwork.usecase.Daily: %v", err)
		return artwork.DailyOutput{}, err
	}

	return artwork.DailyOutput{Artwork: a.Localize(input.Language)}, nil
}

// Search matches input.Query against the catalog.
func (uc *implUseCase) Search(ctx context.Context, input artwork.SearchInput) (artwork.SearchOutput, error) {
	found := uc.catalog.Search(input.Query)
	results := make([]artwork.Artwork, len(found))
	for i, a := range found {
		results[i] = a.Localize(input.Language)
	}

	uc.l.Debugf(ctx, "artwork.usecase.Search: query=%q matches=%d", input.Query, len(results))
	return artwork.SearchOutput{Results: results}, nil
}
