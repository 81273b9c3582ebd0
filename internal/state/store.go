package state

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/cache"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/metrics"
)

type ReloadKind string

const (
	ReloadMute  ReloadKind = "mute"
	ReloadBlock ReloadKind = "block"
)

var ErrAccountNotCached = errors.New("account is not cached")

type ReloadListener func(kind ReloadKind, counter uint64)

// Store is the application state shared by every profile view.
//
//go:generate mockery --name=Store
type Store interface {
	Session() Session
	SetSession(session Session)

	CacheAccount(ctx context.Context, instance string, account *mastodon.Account) error
	Account(ctx context.Context, key string) (*mastodon.Account, error)

	ReloadCounter(kind ReloadKind) uint64
	BumpReload(ctx context.Context, kind ReloadKind)
	OnReload(listener ReloadListener) (unsubscribe func())
	Listen(ctx context.Context) error

	ShowAccount(account *mastodon.Account, instance string)
	ShowAccounts(list AccountsList)
	Selection() Selection
}

type store struct {
	log         logger.Logger
	accounts    cache.Cache[mastodon.Account]
	broadcaster Broadcaster
	meter       metrics.Meter

	mu             sync.RWMutex
	session        Session
	reloadCounters map[ReloadKind]uint64
	listeners      map[int]ReloadListener
	nextListener   int
	selection      Selection
}

// NewStore builds the store, broadcaster may be nil when the process runs alone.
func NewStore(
	log logger.Logger,
	accounts cache.Cache[mastodon.Account],
	broadcaster Broadcaster,
	meter metrics.Meter,
) *store {
	return &store{
		log:            log,
		accounts:       accounts,
		broadcaster:    broadcaster,
		meter:          meter,
		reloadCounters: map[ReloadKind]uint64{},
		listeners:      map[int]ReloadListener{},
	}
}

func (s *store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *store) SetSession(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *store) CacheAccount(ctx context.Context, instance string, account *mastodon.Account) error {
	if account == nil {
		return nil
	}
	key := AccountKey(account.ID, instance)
	err := s.accounts.Set(ctx, key, *account)
	if err != nil {
		return errors.Wrapf(err, "unable to cache account %s", key)
	}
	s.log.WithField("key", key).Trace("account cached")
	return nil
}

func (s *store) Account(ctx context.Context, key string) (*mastodon.Account, error) {
	account, err := s.accounts.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, errors.Wrap(ErrAccountNotCached, key)
		}
		return nil, errors.Wrapf(err, "unable to read account %s", key)
	}
	return account, nil
}

func (s *store) ReloadCounter(kind ReloadKind) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reloadCounters[kind]
}

func (s *store) BumpReload(ctx context.Context, kind ReloadKind) {
	s.bump(kind)
	if s.broadcaster == nil {
		return
	}
	if err := s.broadcaster.Publish(ctx, kind); err != nil {
		s.log.WithError(err).WithField("kind", kind).Warn("unable to broadcast reload")
	}
}

// Listen applies the reloads other processes publish until ctx is done.
func (s *store) Listen(ctx context.Context) error {
	if s.broadcaster == nil {
		<-ctx.Done()
		return nil
	}
	return s.broadcaster.Subscribe(ctx, func(kind ReloadKind) {
		s.log.WithField("kind", kind).Debug("reload received from another process")
		s.bump(kind)
	})
}

func (s *store) bump(kind ReloadKind) {
	s.mu.Lock()
	s.reloadCounters[kind]++
	counter := s.reloadCounters[kind]
	listeners := make([]ReloadListener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	if s.meter != nil {
		s.meter.Inc(metrics.ReloadBumpsCounter, string(kind))
	}
	for _, listener := range listeners {
		listener(kind, counter)
	}
}

func (s *store) OnReload(listener ReloadListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *store) ShowAccount(account *mastodon.Account, instance string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Account: account, Instance: instance}
}

func (s *store) ShowAccounts(list AccountsList) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Selection{Accounts: &list, Instance: list.Instance}
}

func (s *store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}
