package internal

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/observability/handlers"
)

type Config struct {
	Address string
}

func StartServer(ctx context.Context, cfg Config) error {
	muxRouter := dic.GetService[*mux.Router]()
	log := dic.GetService[logger.Logger]()
	sentryHandler := sentryhttp.New(sentryhttp.Options{})

	handler := sentryHandler.HandleFunc(handlers.ObservabilityHandler(
		muxRouter,
		log,
		func(responseWriter http.ResponseWriter, request *http.Request) {
			fields := logrus.Fields{
				"querystring": request.URL.RawQuery,
			}
			log.WithFields(fields).Debugf("%s %s", request.Method, request.URL.Path)
			muxRouter.ServeHTTP(responseWriter, request)
		},
	))

	srv := &http.Server{
		Handler:      handler,
		Addr:         cfg.Address,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  30 * time.Second,
	}

	log.WithField("address", cfg.Address).Info("Starting http server")

	go func() {
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed")
			return
		}
		log.Info("server stopped")
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx) //nolint:contextcheck
	if err != nil {
		return errors.Wrap(err, "error while sending shutdown signal to http server")
	}

	return nil
}
