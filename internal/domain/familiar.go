package domain

import (
	"context"
	"sync"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/state"
)

// familiarFollowersPaginator puts the familiar followers on top of the first followers page
// and keeps them out of the next ones.
type familiarFollowersPaginator struct {
	log       logger.Logger
	wrapped   Paginator
	client    mastodon.Client
	accountID string

	mu       sync.Mutex
	loaded   bool
	familiar map[string]struct{}
}

func WithFamiliarFollowers(
	log logger.Logger,
	wrapped Paginator,
	client mastodon.Client,
	accountID string,
) *familiarFollowersPaginator {
	return &familiarFollowersPaginator{
		log:       log,
		wrapped:   wrapped,
		client:    client,
		accountID: accountID,
	}
}

func (p *familiarFollowersPaginator) Next(ctx context.Context, firstLoad bool) (*Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	firstLoad = firstLoad || !p.loaded
	page, err := p.wrapped.Next(ctx, firstLoad)
	if err != nil {
		return nil, err
	}
	p.loaded = true

	if !firstLoad {
		return &Page{
			Accounts: p.withoutFamiliar(page.Accounts),
			HasMore:  page.HasMore,
		}, nil
	}

	p.familiar = map[string]struct{}{}
	familiar, err := p.client.FetchFamiliarFollowers(ctx, p.accountID)
	if err != nil {
		p.log.WithError(err).WithField("account", p.accountID).Warn("unable to fetch familiar followers")
		return page, nil
	}
	familiarAccounts := familiarAccounts(familiar, p.accountID)
	for _, account := range familiarAccounts {
		p.familiar[account.ID] = struct{}{}
	}

	accounts := make([]mastodon.Account, 0, len(familiarAccounts)+len(page.Accounts))
	accounts = append(accounts, familiarAccounts...)
	accounts = append(accounts, p.withoutFamiliar(page.Accounts)...)
	return &Page{
		Accounts: accounts,
		HasMore:  page.HasMore,
	}, nil
}

func (p *familiarFollowersPaginator) withoutFamiliar(accounts []mastodon.Account) []mastodon.Account {
	filtered := make([]mastodon.Account, 0, len(accounts))
	for _, account := range accounts {
		if _, known := p.familiar[account.ID]; known {
			continue
		}
		filtered = append(filtered, account)
	}
	return filtered
}

// NewAccountsPaginator builds the followers or following paginator of account as seen from
// instance. Followers get the familiar followers on top when the viewer looks at their own
// profile from their own instance.
func NewAccountsPaginator(
	log logger.Logger,
	client mastodon.Client,
	session state.Session,
	account *mastodon.Account,
	instance string,
	followers bool,
) Paginator {
	if !followers {
		return NewFollowingPaginator(client, account.ID)
	}
	paginator := NewFollowersPaginator(client, account.ID)
	if session.SameInstance(instance) && session.AccountID == account.ID {
		return WithFamiliarFollowers(log, paginator, client, account.ID)
	}
	return paginator
}
