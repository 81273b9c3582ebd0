package api

import (
	"context"

	"github.com/estrys/fediprofile/internal/domain"
)

type confirmationKey struct{}

// withConfirmation records whether the caller already agreed to a reversing action.
func withConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmationKey{}, confirmed)
}

// RequestConfirmer answers confirmation prompts with the flag sent along the request.
var RequestConfirmer = domain.ConfirmFunc( //nolint:gochecknoglobals
	func(ctx context.Context, _ string) (bool, error) {
		confirmed, _ := ctx.Value(confirmationKey{}).(bool)
		return confirmed, nil
	},
)
