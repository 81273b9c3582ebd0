package domain

import "context"

type ViewState string

const (
	StateIdle    ViewState = "idle"
	StateLoading ViewState = "loading"
	StateReady   ViewState = "ready"
	StateError   ViewState = "error"
)

// Confirmer asks the viewer before a destructive action is sent.
//
//go:generate mockery --name=Confirmer
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Notifier shows short lived messages, toasts in a graphical client.
//
//go:generate mockery --name=Notifier
type Notifier interface {
	Notify(ctx context.Context, message string)
}

type NotifyFunc func(ctx context.Context, message string)

func (f NotifyFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}
