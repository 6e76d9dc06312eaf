package feedback

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
}
