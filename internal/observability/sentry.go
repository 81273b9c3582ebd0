package observability

import (
	"context"

	"github.com/getsentry/sentry-go"
)

func StartTransaction(ctx context.Context, name string, options ...sentry.SpanOption) *sentry.Span {
	tx := sentry.StartTransaction(ctx, name, options...)
	tx.Op = name
	return tx
}

// StartSpan returns nil when ctx carries no transaction, callers must tolerate it.
func StartSpan(ctx context.Context, name string, data map[string]any) *sentry.Span {
	transaction := sentry.TransactionFromContext(ctx)
	if transaction == nil {
		return nil
	}
	return transaction.StartChild(name, func(s *sentry.Span) {
		s.Data = data
	})
}

func FinishSpan(span *sentry.Span) {
	if span != nil {
		span.Finish()
	}
}

// FinishSpanWithError marks the span as failed when err is set.
func FinishSpanWithError(span *sentry.Span, err error) {
	if span == nil {
		return
	}
	span.Status = sentry.SpanStatusOK
	if err != nil {
		span.Status = sentry.SpanStatusInternalError
	}
	span.Finish()
}

// CaptureError reports err on the hub bound to ctx, falling back to the global hub.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}
