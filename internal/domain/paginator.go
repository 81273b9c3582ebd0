package domain

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/mastodon"
)

const PageSize = 80

type Page struct {
	Accounts []mastodon.Account `json:"accounts"`
	// HasMore stays true after a page emptied by filtering, callers keep asking.
	HasMore bool `json:"has_more"`
}

//go:generate mockery --name=Paginator
type Paginator interface {
	// Next returns the following page, restarting from the top when firstLoad is set.
	Next(ctx context.Context, firstLoad bool) (*Page, error)
}

type listAccountsFunc func(ctx context.Context, id string, cursor mastodon.Cursor) (*mastodon.AccountPage, error)

type accountListPaginator struct {
	list      listAccountsFunc
	name      string
	accountID string
	pageSize  int

	mu      sync.Mutex
	cursor  *mastodon.Cursor
	started bool
}

func NewFollowersPaginator(client mastodon.Client, accountID string) *accountListPaginator {
	return newAccountListPaginator(client.ListFollowers, "followers", accountID)
}

func NewFollowingPaginator(client mastodon.Client, accountID string) *accountListPaginator {
	return newAccountListPaginator(client.ListFollowing, "following", accountID)
}

func newAccountListPaginator(list listAccountsFunc, name, accountID string) *accountListPaginator {
	return &accountListPaginator{
		list:      list,
		name:      name,
		accountID: accountID,
		pageSize:  PageSize,
	}
}

func (p *accountListPaginator) Next(ctx context.Context, firstLoad bool) (*Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if firstLoad || !p.started {
		p.cursor = &mastodon.Cursor{Limit: p.pageSize}
		p.started = true
	}
	if p.cursor == nil {
		return &Page{}, nil
	}

	accountPage, err := p.list(ctx, p.accountID, *p.cursor)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list %s", p.name)
	}
	p.cursor = accountPage.Next
	return &Page{
		Accounts: accountPage.Accounts,
		HasMore:  accountPage.Next != nil,
	}, nil
}
