package handlers

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/observability"
)

// statusRecorder remembers the status written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ObservabilityHandler runs handler inside a sentry transaction named after the matched route.
// Route variables become transaction data and the view id, when present, a scope tag.
func ObservabilityHandler(router *mux.Router, log logger.Logger, handler http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
		defer func() {
			if err := recover(); err != nil {
				writer.WriteHeader(http.StatusInternalServerError)
				if hub := sentry.GetHubFromContext(ctx); hub != nil {
					hub.RecoverWithContext(ctx, err)
				}
				log.WithField("path", request.URL.Path).Error(err)
			}
		}()

		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			ctx = sentry.SetHubOnContext(ctx, hub)
		}

		transactionName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)
		data := map[string]any{}
		var match mux.RouteMatch
		if router.Match(request, &match) && match.Route != nil {
			if name := match.Route.GetName(); name != "" {
				transactionName = name
			}
			for k, v := range match.Vars {
				data[k] = v
			}
		}
		tx := observability.StartTransaction(ctx, transactionName,
			sentry.OpName("http.server"),
			sentry.ContinueFromRequest(request),
			sentry.TransctionSource(sentry.SourceRoute),
		)
		tx.Data = data

		request = request.WithContext(tx.Context()) //nolint:contextcheck
		hub.Scope().SetRequest(request)
		if viewID, ok := match.Vars["id"]; ok {
			hub.Scope().SetTag("view", viewID)
		}

		handler(recorder, request)

		var err error
		if recorder.status >= http.StatusInternalServerError {
			err = errors.Errorf("%s answered %d", transactionName, recorder.status)
		}
		observability.FinishSpanWithError(tx, err)
	}
}
