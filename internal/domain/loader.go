package domain

import (
	"context"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/state"
)

type AccountFetcher func(ctx context.Context) (*mastodon.Account, error)

// AccountRef points to the profile to display: either the record itself or where to get it.
type AccountRef struct {
	Account  *mastodon.Account
	ID       string
	Instance string
	// URL is offered to open the profile on its own server when loading fails.
	URL string
	// Fetch defaults to GetAccount on Instance.
	Fetch AccountFetcher
}

func (r AccountRef) ErrorLink() string {
	if r.URL != "" {
		return r.URL
	}
	if r.Account != nil {
		return r.Account.URL
	}
	return ""
}

//go:generate mockery --name=AccountLoader
type AccountLoader interface {
	Load(ctx context.Context, ref AccountRef) (*mastodon.Account, error)
}

type accountLoader struct {
	log      logger.Logger
	store    state.Store
	provider mastodon.Provider
}

func NewAccountLoader(log logger.Logger, store state.Store, provider mastodon.Provider) *accountLoader {
	return &accountLoader{
		log:      log,
		store:    store,
		provider: provider,
	}
}

func (l *accountLoader) Load(ctx context.Context, ref AccountRef) (*mastodon.Account, error) {
	if ref.Account != nil {
		return ref.Account, nil
	}

	instance := ref.Instance
	if instance == "" {
		instance = l.store.Session().Instance
	}

	fetch := ref.Fetch
	if fetch == nil {
		if ref.ID == "" {
			return nil, ErrEmptyReference
		}
		cached, err := l.store.Account(ctx, state.AccountKey(ref.ID, instance))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, state.ErrAccountNotCached) {
			l.log.WithError(err).WithField("account", ref.ID).Warn("unable to read cached account")
		}
		client := l.provider.For(ref.Instance)
		fetch = func(ctx context.Context) (*mastodon.Account, error) {
			return client.GetAccount(ctx, ref.ID)
		}
	}

	account, err := fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load account")
	}

	err = l.store.CacheAccount(ctx, instance, account)
	if err != nil {
		l.log.WithError(err).WithField("account", account.ID).Warn("unable to cache account")
	}
	return account, nil
}
