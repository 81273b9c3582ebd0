package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/cache"
	"github.com/estrys/fediprofile/internal/logger/mocks"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/state"
)

func newStore(t *testing.T, session state.Session) state.Store {
	t.Helper()
	accounts, err := cache.CreateLRUCache[mastodon.Account](10)
	require.NoError(t, err)
	store := state.NewStore(mocks.NewNullLogger(), accounts, nil, nil)
	store.SetSession(session)
	return store
}

var viewerSession = state.Session{AccountID: "1", Instance: "home.social"}
