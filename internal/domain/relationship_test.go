package domain_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/domain"
	domainmocks "github.com/estrys/fediprofile/internal/domain/mocks"
	"github.com/estrys/fediprofile/internal/logger/mocks"
	"github.com/estrys/fediprofile/internal/mastodon"
	mastodonmocks "github.com/estrys/fediprofile/internal/mastodon/mocks"
	"github.com/estrys/fediprofile/internal/state"
)

func newRelationshipClient(
	t *testing.T,
	store state.Store,
	viewer mastodon.Client,
	account *mastodon.Account,
	instance string,
) *domain.RelationshipClient {
	t.Helper()
	return domain.NewRelationshipClient(
		mocks.NewNullLogger(),
		store,
		viewer,
		domainmocks.NewConfirmer(t),
		domainmocks.NewNotifier(t),
		nil,
		account,
		instance,
	)
}

func TestRelationshipClient_Refresh(t *testing.T) {
	alice := &mastodon.Account{ID: "42", Username: "alice", Acct: "alice"}
	remoteBob := &mastodon.Account{ID: "7", Username: "bob", Acct: "bob"}

	tests := []struct {
		name     string
		session  state.Session
		account  *mastodon.Account
		instance string
		mocks    func(*mastodonmocks.Client)
		expected domain.RelationshipSnapshot
		changes  []domain.RelationshipChange
		err      string
	}{
		{
			name:     "same instance uses the profile id without searching",
			session:  viewerSession,
			account:  alice,
			instance: "home.social",
			mocks: func(client *mastodonmocks.Client) {
				client.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
					[]mastodon.Relationship{{ID: "42", FollowedBy: true}}, nil,
				)
			},
			expected: domain.RelationshipSnapshot{
				State:        domain.StateReady,
				ResolvedID:   "42",
				Relationship: &mastodon.Relationship{ID: "42", FollowedBy: true},
			},
			changes: []domain.RelationshipChange{
				{Relationship: mastodon.Relationship{ID: "42", FollowedBy: true}, ResolvedID: "42"},
			},
		},
		{
			name:     "other instance searches once with the full handle",
			session:  viewerSession,
			account:  remoteBob,
			instance: "remote.social",
			mocks: func(client *mastodonmocks.Client) {
				client.On("SearchAccounts", mock.Anything, mastodon.SearchAccountsParams{
					Query:   "bob@remote.social",
					Resolve: true,
					Limit:   1,
				}).Once().Return([]mastodon.Account{{ID: "1007", Username: "bob", Acct: "bob@remote.social"}}, nil)
				client.On("FetchRelationships", mock.Anything, []string{"1007"}).Once().Return(
					[]mastodon.Relationship{{ID: "1007", Following: true}}, nil,
				)
			},
			expected: domain.RelationshipSnapshot{
				State:        domain.StateReady,
				ResolvedID:   "1007",
				Relationship: &mastodon.Relationship{ID: "1007", Following: true},
			},
			changes: []domain.RelationshipChange{
				{Relationship: mastodon.Relationship{ID: "1007", Following: true}, ResolvedID: "1007"},
			},
		},
		{
			name:     "handle already carrying an instance",
			session:  viewerSession,
			account:  &mastodon.Account{ID: "7", Username: "carol", Acct: "carol@third.social"},
			instance: "remote.social",
			mocks: func(client *mastodonmocks.Client) {
				client.On("SearchAccounts", mock.Anything, mock.MatchedBy(func(params mastodon.SearchAccountsParams) bool {
					return params.Query == "carol@third.social"
				})).Once().Return(nil, nil)
			},
			expected: domain.RelationshipSnapshot{State: domain.StateReady},
		},
		{
			name:     "search failure is not an error",
			session:  viewerSession,
			account:  remoteBob,
			instance: "remote.social",
			mocks: func(client *mastodonmocks.Client) {
				client.On("SearchAccounts", mock.Anything, mock.Anything).Once().Return(nil, errors.New("timeout"))
			},
			expected: domain.RelationshipSnapshot{State: domain.StateReady},
		},
		{
			name:     "self",
			session:  state.Session{AccountID: "42", Instance: "home.social"},
			account:  alice,
			instance: "home.social",
			expected: domain.RelationshipSnapshot{State: domain.StateReady, ResolvedID: "42", Self: true},
		},
		{
			name:     "anonymous viewer",
			session:  state.Session{Instance: "home.social"},
			account:  alice,
			instance: "home.social",
			expected: domain.RelationshipSnapshot{State: domain.StateReady},
		},
		{
			name:     "moved account",
			session:  viewerSession,
			account:  &mastodon.Account{ID: "42", Username: "alice", Moved: &mastodon.Account{ID: "43", Username: "alice2"}},
			instance: "home.social",
			expected: domain.RelationshipSnapshot{State: domain.StateReady, ResolvedID: "42"},
		},
		{
			name:     "fetch failure",
			session:  viewerSession,
			account:  alice,
			instance: "home.social",
			mocks: func(client *mastodonmocks.Client) {
				client.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(nil, errors.New("500"))
			},
			expected: domain.RelationshipSnapshot{State: domain.StateError, ResolvedID: "42"},
			err:      "unable to fetch relationship: 500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer := mastodonmocks.NewClient(t)
			if tt.mocks != nil {
				tt.mocks(viewer)
			}
			client := newRelationshipClient(t, newStore(t, tt.session), viewer, tt.account, tt.instance)
			var changes []domain.RelationshipChange
			client.OnChange(func(ctx context.Context, change domain.RelationshipChange) {
				changes = append(changes, change)
			})

			err := client.Refresh(context.Background())
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, client.Snapshot())
			assert.Equal(t, tt.changes, changes)
		})
	}
}

func TestRelationshipClient_Refresh_failure_keeps_previous_record(t *testing.T) {
	alice := &mastodon.Account{ID: "42", Username: "alice"}
	viewer := mastodonmocks.NewClient(t)
	viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
		[]mastodon.Relationship{{ID: "42", Muting: true}}, nil,
	)
	viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(nil, errors.New("500"))

	client := newRelationshipClient(t, newStore(t, viewerSession), viewer, alice, "home.social")
	require.NoError(t, client.Refresh(context.Background()))
	require.Error(t, client.Refresh(context.Background()))

	snapshot := client.Snapshot()
	assert.Equal(t, domain.StateError, snapshot.State)
	assert.Equal(t, &mastodon.Relationship{ID: "42", Muting: true}, snapshot.Relationship)
}

func TestRelationshipClient_Refresh_self_updates_session(t *testing.T) {
	alice := &mastodon.Account{ID: "42", Username: "alice", DisplayName: "Alice"}
	store := newStore(t, state.Session{AccountID: "42", Instance: "home.social"})
	client := newRelationshipClient(t, store, mastodonmocks.NewClient(t), alice, "home.social")

	require.NoError(t, client.Refresh(context.Background()))
	assert.Equal(t, alice, store.Session().Account)
}
