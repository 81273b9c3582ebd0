package errors

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/logger"
)

type HandlerError struct {
	Cause       error
	UserMessage string
	HTTPCode    int
}

func New(message string, httpCode int) HandlerError {
	return HandlerError{
		Cause:    errors.New(message),
		HTTPCode: httpCode,
	}
}

func Wrap(err error, httpCode int) HandlerError {
	return HandlerError{
		Cause:    err,
		HTTPCode: httpCode,
	}
}

func (h HandlerError) WithUserMessage(message string) HandlerError {
	h.UserMessage = message
	return h
}

func (h HandlerError) Error() string {
	if h.Cause != nil {
		return h.Cause.Error()
	}
	return h.UserMessage
}

func (h HandlerError) Unwrap() error {
	return h.Cause
}

type ErrorAwareHTTPHandler func(w http.ResponseWriter, req *http.Request) error

func HTTPErrorHandler(handler ErrorAwareHTTPHandler) func(w http.ResponseWriter, req *http.Request) {
	log := dic.GetService[logger.Logger]()
	return func(responseWriter http.ResponseWriter, request *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetRequest(request)
					if err, isErr := recovered.(error); isErr {
						sentry.CaptureException(err)
						return
					}
					sentry.CurrentHub().Recover(recovered)
				})
				log.Errorf("panic: %s %s", recovered, debug.Stack())
				responseWriter.WriteHeader(http.StatusInternalServerError)
			}
		}()
		err := handler(responseWriter, request)
		if err == nil {
			return
		}
		var handlerError HandlerError
		if !errors.As(err, &handlerError) {
			handlerError = Wrap(err, http.StatusInternalServerError)
		}
		// client mistakes are not worth a sentry event
		if handlerError.HTTPCode >= http.StatusInternalServerError {
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetRequest(request)
				if handlerError.Cause != nil {
					sentry.CaptureException(handlerError.Cause)
				} else {
					sentry.CaptureException(handlerError)
				}
			})
		}
		log.WithError(err).WithField("status", handlerError.HTTPCode).Error("Error handling http request")
		var respBody []byte
		if handlerError.UserMessage != "" {
			responseWriter.Header().Add("content-type", "application/json")
			respBody, _ = json.Marshal(map[string]string{
				"error": handlerError.UserMessage,
			})
		}
		responseWriter.WriteHeader(handlerError.HTTPCode)
		_, _ = responseWriter.Write(respBody)
	}
}
