package container

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/api"
	"github.com/estrys/fediprofile/internal/cache"
	"github.com/estrys/fediprofile/internal/config"
	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/domain"
	"github.com/estrys/fediprofile/internal/headercolor"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/router"
	"github.com/estrys/fediprofile/internal/router/urlgenerator"
	"github.com/estrys/fediprofile/internal/state"
)

const localAccountCacheSize = 10000

func BuildContainer() error {
	loader := config.NewLoader()
	err := loader.Load()
	if err != nil {
		return errors.Wrap(err, "unable to load config")
	}
	conf := loader.Get()
	_ = dic.Register[config.Config](conf)
	_ = dic.Register[logger.Logger](logger.CreateLogger(&conf))
	_ = dic.Register[metrics.Meter](metrics.NewRegistry())
	log := dic.GetService[logger.Logger]()

	_ = dic.Register[*http.Client](&http.Client{
		Timeout: conf.HTTPTimeout,
		Transport: mastodon.NewThrottledTransport(
			logger.GetResponseLogger(log, http.DefaultTransport),
			log,
		),
	})
	_ = dic.Register[mastodon.Provider](mastodon.NewProvider(
		mastodon.ProviderConfig{
			ViewerInstance: conf.Instance,
			Token:          conf.Token,
		},
		dic.GetService[*http.Client](),
		log,
		dic.GetService[metrics.Meter](),
	))

	if err := registerStore(conf, log); err != nil {
		return err
	}

	_ = dic.Register[domain.AccountLoader](domain.NewAccountLoader(
		log,
		dic.GetService[state.Store](),
		dic.GetService[mastodon.Provider](),
	))
	_ = dic.Register[domain.InsightsFetcher](domain.NewInsightsFetcher(
		log,
		dic.GetService[mastodon.Provider](),
	))
	_ = dic.Register[headercolor.Loader](headercolor.NewLoader(
		dic.GetService[*http.Client](),
		conf.Origin,
		log,
	))
	_ = dic.Register[*domain.ViewFactory](domain.NewViewFactory(
		log,
		dic.GetService[state.Store](),
		dic.GetService[mastodon.Provider](),
		dic.GetService[domain.AccountLoader](),
		dic.GetService[domain.InsightsFetcher](),
		dic.GetService[headercolor.Loader](),
		dic.GetService[metrics.Meter](),
	))
	registry, err := api.NewViewRegistry(conf.ViewCacheSize, dic.GetService[metrics.Meter]())
	if err != nil {
		return err //nolint:wrapcheck
	}
	_ = dic.Register[api.ViewRegistry](registry)

	_ = dic.Register[*mux.Router](router.GetRouter())
	_ = dic.Register[urlgenerator.URLGenerator](urlgenerator.NewURLGenerator(
		dic.GetService[*mux.Router](),
	))

	return nil
}

// registerStore keeps accounts and reload bumps in redis when an address is configured,
// in process memory otherwise.
func registerStore(conf config.Config, log logger.Logger) error {
	var broadcaster state.Broadcaster
	if conf.RedisAddress != "" {
		redisClient, err := cache.NewRedisClient(conf.RedisAddress)
		if err != nil {
			return errors.Wrap(err, "unable to create redis client")
		}
		_ = dic.Register[*cache.RedisClient](redisClient)
		_ = dic.Register[cache.Cache[mastodon.Account]](cache.CreateRedisCache[mastodon.Account](
			dic.GetService[*cache.RedisClient](),
			cache.OptionDefaultTTL(conf.AccountCacheTTL),
		))
		redisBroadcaster, err := state.NewRedisBroadcaster(log, dic.GetService[*cache.RedisClient]())
		if err != nil {
			return err //nolint:wrapcheck
		}
		broadcaster = redisBroadcaster
	} else {
		accounts, err := cache.CreateLRUCache[mastodon.Account](
			localAccountCacheSize,
			cache.OptionDefaultTTL(conf.AccountCacheTTL),
		)
		if err != nil {
			return err //nolint:wrapcheck
		}
		_ = dic.Register[cache.Cache[mastodon.Account]](accounts)
	}

	_ = dic.Register[state.Store](state.NewStore(
		log,
		dic.GetService[cache.Cache[mastodon.Account]](),
		broadcaster,
		dic.GetService[metrics.Meter](),
	))
	return nil
}
