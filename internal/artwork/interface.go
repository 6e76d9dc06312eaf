package artwork

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Daily(ctx context.Context, input DailyInput) (DailyOutput, error)
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}
