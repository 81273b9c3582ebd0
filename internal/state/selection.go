package state

import (
	"context"

	"github.com/estrys/fediprofile/internal/mastodon"
)

// PageFetcher loads the next page of a generic accounts list, restarting when firstLoad is set.
type PageFetcher func(ctx context.Context, firstLoad bool) (accounts []mastodon.Account, hasMore bool, err error)

type AccountsList struct {
	Heading string
	Fetch   PageFetcher
	// Instance the listed accounts are fetched from.
	Instance string
}

// Selection is what the navigation layer currently shows on top of the profile.
type Selection struct {
	Account  *mastodon.Account
	Instance string
	Accounts *AccountsList
}
