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
	"github.com/estrys/fediprofile/internal/headercolor"
	headermocks "github.com/estrys/fediprofile/internal/headercolor/mocks"
	"github.com/estrys/fediprofile/internal/logger/mocks"
	"github.com/estrys/fediprofile/internal/mastodon"
	mastodonmocks "github.com/estrys/fediprofile/internal/mastodon/mocks"
	"github.com/estrys/fediprofile/internal/state"
)

type viewFixture struct {
	store    state.Store
	viewer   *mastodonmocks.Client
	provider *mastodonmocks.Provider
	loader   *domainmocks.AccountLoader
	insights *domainmocks.InsightsFetcher
	headers  *headermocks.Loader
	notifier *domainmocks.Notifier
	view     *domain.ProfileView
}

func newViewFixture(t *testing.T) *viewFixture {
	t.Helper()
	f := &viewFixture{
		store:    newStore(t, viewerSession),
		viewer:   mastodonmocks.NewClient(t),
		provider: mastodonmocks.NewProvider(t),
		loader:   domainmocks.NewAccountLoader(t),
		insights: domainmocks.NewInsightsFetcher(t),
		headers:  headermocks.NewLoader(t),
		notifier: domainmocks.NewNotifier(t),
	}
	f.viewer.On("Instance").Maybe().Return("home.social")
	f.provider.On("Viewer").Maybe().Return(f.viewer)
	f.provider.On("For", "home.social").Maybe().Return(f.viewer)

	factory := domain.NewViewFactory(
		mocks.NewNullLogger(),
		f.store,
		f.provider,
		f.loader,
		f.insights,
		f.headers,
		nil,
	)
	f.view = factory.NewView(false, domainmocks.NewConfirmer(t), f.notifier)
	return f
}

var alice = &mastodon.Account{
	ID:       "42",
	Username: "alice",
	Acct:     "alice",
	URL:      "https://home.social/@alice",
	Note:     "<p>Hello</p>",
	Header:   "https://files.home.social/header.png",
}

func TestProfileView_Open(t *testing.T) {
	f := newViewFixture(t)
	ref := domain.AccountRef{ID: "42", Instance: "home.social"}
	corners := headercolor.Corners{{R: 1, A: 0.1}, {R: 2, A: 0.1}, {R: 3, A: 0.1}, {R: 4, A: 0.1}}
	stats := &domain.PostingStats{Total: 20, Originals: 10, Replies: 5, Boosts: 5, DaysSinceLastPost: 3}

	f.loader.On("Load", mock.Anything, ref).Once().Return(alice, nil)
	f.headers.On("Load", mock.Anything, alice).Once().Return(&headercolor.Header{URL: alice.Header, Corners: &corners})
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
		[]mastodon.Relationship{{ID: "42", FollowedBy: true}}, nil,
	)
	f.insights.On("Fetch", mock.Anything, domain.RelationshipChange{
		Relationship: mastodon.Relationship{ID: "42", FollowedBy: true},
		ResolvedID:   "42",
	}, false).Once().Return(domain.Insights{
		FamiliarFollowers: accounts("7"),
		PostingStats:      stats,
	})

	require.NoError(t, f.view.Open(context.Background(), ref))

	snapshot := f.view.Snapshot()
	assert.Equal(t, domain.StateReady, snapshot.State)
	assert.Equal(t, alice, snapshot.Account)
	assert.Equal(t, "alice@home.social", snapshot.Handle)
	assert.Equal(t, "Hello", snapshot.Bio)
	assert.Equal(t, "@alice", snapshot.ProfileURL.Path)
	assert.Equal(t, &domain.HeaderSnapshot{
		URL: alice.Header,
		Colors: []string{
			"rgba(1, 0, 0, 0.1)", "rgba(2, 0, 0, 0.1)", "rgba(3, 0, 0, 0.1)", "rgba(4, 0, 0, 0.1)",
		},
	}, snapshot.Header)
	assert.Equal(t, domain.RelationshipSnapshot{
		State:        domain.StateReady,
		ResolvedID:   "42",
		Relationship: &mastodon.Relationship{ID: "42", FollowedBy: true},
	}, snapshot.Relationship)
	assert.Equal(t, []string{"7"}, ids(snapshot.FamiliarFollowers))
	assert.Equal(t, stats, snapshot.PostingStats)
	assert.Equal(t, map[state.ReloadKind]uint64{state.ReloadMute: 0, state.ReloadBlock: 0}, snapshot.Reloads)
}

func TestProfileView_Open_hides_inactive_stats(t *testing.T) {
	f := newViewFixture(t)
	f.headers.On("Load", mock.Anything, alice).Once().Return(nil)
	f.loader.On("Load", mock.Anything, mock.Anything).Once().Return(alice, nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
		[]mastodon.Relationship{{ID: "42"}}, nil,
	)
	f.insights.On("Fetch", mock.Anything, mock.Anything, false).Once().Return(domain.Insights{
		PostingStats: &domain.PostingStats{Total: 2, Originals: 2},
	})

	require.NoError(t, f.view.Open(context.Background(), domain.AccountRef{Account: alice, Instance: "home.social"}))
	snapshot := f.view.Snapshot()
	assert.Nil(t, snapshot.PostingStats)
	assert.Nil(t, snapshot.Header)
}

func TestProfileView_Open_failure(t *testing.T) {
	f := newViewFixture(t)
	ref := domain.AccountRef{ID: "42", Instance: "remote.social", URL: "https://remote.social/@alice"}
	f.loader.On("Load", mock.Anything, ref).Once().Return(nil, errors.New("unable to load account: 500"))

	require.EqualError(t, f.view.Open(context.Background(), ref), "unable to load account: 500")

	snapshot := f.view.Snapshot()
	assert.Equal(t, domain.StateError, snapshot.State)
	assert.Equal(t, "https://remote.social/@alice", snapshot.ErrorLink)
	assert.Nil(t, snapshot.Account)
	assert.Equal(t, domain.StateIdle, snapshot.Relationship.State)

	_, err := f.view.Relationship()
	require.ErrorIs(t, err, domain.ErrNotLoaded)
	_, err = f.view.Followers()
	require.ErrorIs(t, err, domain.ErrNotLoaded)
}

func TestProfileView_Open_superseded(t *testing.T) {
	f := newViewFixture(t)
	bob := &mastodon.Account{ID: "43", Username: "bob", URL: "https://home.social/@bob"}
	refAlice := domain.AccountRef{ID: "42", Instance: "home.social"}
	refBob := domain.AccountRef{Account: bob, Instance: "home.social"}

	var aliceCtx context.Context
	f.loader.On("Load", mock.Anything, refAlice).Once().Return(
		func(ctx context.Context, ref domain.AccountRef) *mastodon.Account {
			aliceCtx = ctx
			// bob is opened while alice is still loading
			require.NoError(t, f.view.Open(context.Background(), refBob))
			return alice
		},
		nil,
	)
	f.loader.On("Load", mock.Anything, refBob).Once().Return(bob, nil)
	f.headers.On("Load", mock.Anything, bob).Once().Return(nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"43"}).Once().Return(
		[]mastodon.Relationship{{ID: "43", Following: true}}, nil,
	)
	f.insights.On("Fetch", mock.Anything, mock.Anything, false).Once().Return(domain.Insights{})

	err := f.view.Open(context.Background(), refAlice)
	require.ErrorIs(t, err, domain.ErrSuperseded)
	require.ErrorIs(t, aliceCtx.Err(), context.Canceled)

	snapshot := f.view.Snapshot()
	assert.Equal(t, bob, snapshot.Account)
	assert.Equal(t, "43", snapshot.Relationship.ResolvedID)
}

func TestProfileView_actions(t *testing.T) {
	f := newViewFixture(t)
	f.loader.On("Load", mock.Anything, mock.Anything).Once().Return(alice, nil)
	f.headers.On("Load", mock.Anything, alice).Once().Return(nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
		[]mastodon.Relationship{{ID: "42"}}, nil,
	)
	f.insights.On("Fetch", mock.Anything, mock.Anything, false).Once().Return(domain.Insights{})
	f.viewer.On("Follow", mock.Anything, "42").Once().Return(&mastodon.Relationship{ID: "42", Following: true}, nil)
	f.viewer.On("Mute", mock.Anything, "42", mastodon.MuteForever).Once().Return(
		&mastodon.Relationship{ID: "42", Following: true, Muting: true}, nil,
	)
	f.viewer.On("ListLists", mock.Anything).Once().Return([]mastodon.List{{ID: "1", Title: "friends"}}, nil)
	f.viewer.On("ListAccountLists", mock.Anything, "42").Once().Return(nil, nil)
	f.notifier.On("Notify", mock.Anything, "Followed @alice").Once()
	f.notifier.On("Notify", mock.Anything, "Muted @alice for Forever").Once()

	ctx := context.Background()
	require.NoError(t, f.view.Open(ctx, domain.AccountRef{Account: alice, Instance: "home.social"}))

	_, err := f.view.Lists(ctx)
	require.ErrorIs(t, err, domain.ErrNotFollowing)

	require.NoError(t, f.view.Apply(ctx, domain.ActionFollow, 0))
	require.NoError(t, f.view.Apply(ctx, domain.ActionMute, mastodon.MuteForever))

	snapshot := f.view.Snapshot()
	assert.Equal(t, []string{"Followed @alice", "Muted @alice for Forever"}, snapshot.Notifications)
	assert.Equal(t, uint64(1), snapshot.Reloads[state.ReloadMute])
	assert.True(t, snapshot.Relationship.Relationship.Muting)

	lists, err := f.view.Lists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.ListEntry{{List: mastodon.List{ID: "1", Title: "friends"}}}, lists.Snapshot().Lists)
}

func TestProfileView_ShowAccounts(t *testing.T) {
	f := newViewFixture(t)
	f.loader.On("Load", mock.Anything, mock.Anything).Once().Return(alice, nil)
	f.headers.On("Load", mock.Anything, alice).Once().Return(nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(nil, nil)
	f.viewer.On("ListFollowing", mock.Anything, "42", mastodon.Cursor{Limit: domain.PageSize}).Once().Return(
		&mastodon.AccountPage{Accounts: accounts("5")}, nil,
	)

	ctx := context.Background()
	require.NoError(t, f.view.Open(ctx, domain.AccountRef{Account: alice, Instance: "home.social"}))
	require.NoError(t, f.view.ShowAccounts(false))

	selection := f.store.Selection()
	require.NotNil(t, selection.Accounts)
	assert.Equal(t, "Following", selection.Accounts.Heading)
	listed, hasMore, err := selection.Accounts.Fetch(ctx, true)
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Equal(t, []string{"5"}, ids(listed))

	f.view.ShowAccount(&accounts("7")[0])
	assert.Equal(t, "7", f.store.Selection().Account.ID)
	assert.Equal(t, "home.social", f.store.Selection().Instance)
}

func TestProfileView_Reload_failure_keeps_relationship(t *testing.T) {
	f := newViewFixture(t)
	f.loader.On("Load", mock.Anything, mock.Anything).Once().Return(alice, nil)
	f.headers.On("Load", mock.Anything, alice).Once().Return(nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
		[]mastodon.Relationship{{ID: "42", Following: true}}, nil,
	)
	f.insights.On("Fetch", mock.Anything, mock.Anything, false).Once().Return(domain.Insights{})
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(nil, errors.New("503"))

	ctx := context.Background()
	require.NoError(t, f.view.Open(ctx, domain.AccountRef{Account: alice, Instance: "home.social"}))
	require.NoError(t, f.view.Reload(ctx))

	snapshot := f.view.Snapshot()
	assert.Equal(t, domain.StateError, snapshot.Relationship.State)
	assert.Equal(t, "42", snapshot.Relationship.ResolvedID)
	require.NotNil(t, snapshot.Relationship.Relationship)
	assert.True(t, snapshot.Relationship.Relationship.Following)
}

func TestProfileView_SetSession_drops_previous_viewer_relationship(t *testing.T) {
	f := newViewFixture(t)
	f.loader.On("Load", mock.Anything, mock.Anything).Once().Return(alice, nil)
	f.headers.On("Load", mock.Anything, alice).Once().Return(nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(
		[]mastodon.Relationship{{ID: "42", Following: true}}, nil,
	)
	f.insights.On("Fetch", mock.Anything, mock.Anything, false).Once().Return(domain.Insights{})
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(nil, errors.New("503"))

	ctx := context.Background()
	require.NoError(t, f.view.Open(ctx, domain.AccountRef{Account: alice, Instance: "home.social"}))
	require.NoError(t, f.view.SetSession(ctx, state.Session{AccountID: "2", Instance: "home.social"}))

	snapshot := f.view.Snapshot()
	assert.Equal(t, domain.StateError, snapshot.Relationship.State)
	assert.Nil(t, snapshot.Relationship.Relationship)
}

func TestProfileView_SetSession(t *testing.T) {
	f := newViewFixture(t)
	f.loader.On("Load", mock.Anything, mock.Anything).Once().Return(alice, nil)
	f.headers.On("Load", mock.Anything, alice).Once().Return(nil)
	f.viewer.On("FetchRelationships", mock.Anything, []string{"42"}).Once().Return(nil, nil)

	ctx := context.Background()
	require.ErrorIs(t, f.view.Reload(ctx), domain.ErrNotLoaded)
	require.NoError(t, f.view.Open(ctx, domain.AccountRef{Account: alice, Instance: "home.social"}))

	require.NoError(t, f.view.SetSession(ctx, state.Session{AccountID: "42", Instance: "home.social"}))
	assert.True(t, f.view.Snapshot().Relationship.Self)
	assert.Equal(t, alice, f.store.Session().Account)

	f.view.Close()
}
