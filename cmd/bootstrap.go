package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/cache"
	"github.com/estrys/fediprofile/internal/config"
	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/dic/container"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/state"
)

func Bootstrap() (context.Context, context.CancelFunc, error) {
	err := container.BuildContainer()
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	globalContext, cancelFunc := context.WithCancel(context.Background())

	log := dic.GetService[logger.Logger]()
	conf := dic.GetService[config.Config]()

	log.WithField("pid", os.Getpid()).Debug("app starting")

	if conf.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              conf.SentryDSN,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
			EnableTracing:    true,
		})
		if err != nil {
			cancelFunc()
			return nil, nil, errors.Wrap(err, "unable to init sentry")
		}
		log.Info("sentry initialized, errors will be reported")
	}

	if redisClient, exist := dic.LookupService[*cache.RedisClient](); exist {
		if err := redisClient.Ping(globalContext); err != nil {
			cancelFunc()
			return nil, nil, errors.Wrap(err, "unable to connect to redis")
		}
		log.WithField("addr", conf.RedisAddress).Info("Connected to redis")
	}

	store := dic.GetService[state.Store]()
	if err := startSession(globalContext, conf, store); err != nil {
		cancelFunc()
		return nil, nil, err
	}
	go func() {
		if err := store.Listen(globalContext); err != nil {
			log.WithError(err).Error("reload broadcast listener stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGTERM,
		syscall.SIGINT,
	)

	go func() {
		s := <-sigCh
		log.WithField("signal", s.String()).Info("signal received, stopping")
		cancelFunc()
	}()

	return globalContext, cancelFunc, nil
}

// startSession signs the viewer in when a token is configured, anonymous browsing otherwise.
func startSession(ctx context.Context, conf config.Config, store state.Store) error {
	log := dic.GetService[logger.Logger]()
	session := state.Session{Instance: conf.Instance}
	if conf.Token != "" {
		account, err := dic.GetService[mastodon.Provider]().Viewer().VerifyCredentials(ctx)
		if err != nil {
			return errors.Wrap(err, "unable to verify the viewer credentials")
		}
		session.AccountID = account.ID
		session.Account = account
		log.WithField("account", account.Acct).Info("viewer signed in")
	}
	store.SetSession(session)
	return nil
}
