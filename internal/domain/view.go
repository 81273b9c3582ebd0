package domain

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/estrys/fediprofile/internal/headercolor"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/richtext"
	"github.com/estrys/fediprofile/internal/state"
)

const maxNotifications = 10

type HeaderSnapshot struct {
	URL      string   `json:"url"`
	IsAvatar bool     `json:"is_avatar"`
	Colors   []string `json:"colors,omitempty"`
}

// Snapshot is everything a renderer needs to draw a profile.
type Snapshot struct {
	State             ViewState                   `json:"state"`
	ErrorLink         string                      `json:"error_link,omitempty"`
	Account           *mastodon.Account           `json:"account,omitempty"`
	Instance          string                      `json:"instance,omitempty"`
	Handle            string                      `json:"handle,omitempty"`
	Bio               string                      `json:"bio,omitempty"`
	ProfileURL        *richtext.NiceURL           `json:"profile_url,omitempty"`
	Header            *HeaderSnapshot             `json:"header,omitempty"`
	Relationship      RelationshipSnapshot        `json:"relationship"`
	FamiliarFollowers []mastodon.Account          `json:"familiar_followers,omitempty"`
	PostingStats      *PostingStats               `json:"posting_stats,omitempty"`
	Notifications     []string                    `json:"notifications,omitempty"`
	Reloads           map[state.ReloadKind]uint64 `json:"reloads"`
}

// ViewFactory holds what every profile view shares.
type ViewFactory struct {
	log             logger.Logger
	store           state.Store
	provider        mastodon.Provider
	loader          AccountLoader
	insightsFetcher InsightsFetcher
	headers         headercolor.Loader
	meter           metrics.Meter
}

func NewViewFactory(
	log logger.Logger,
	store state.Store,
	provider mastodon.Provider,
	loader AccountLoader,
	insights InsightsFetcher,
	headers headercolor.Loader,
	meter metrics.Meter,
) *ViewFactory {
	return &ViewFactory{
		log:             log,
		store:           store,
		provider:        provider,
		loader:          loader,
		insightsFetcher: insights,
		headers:         headers,
		meter:           meter,
	}
}

// NewView creates an empty view. Standalone views skip posting stats, notifier may be nil.
func (f *ViewFactory) NewView(standalone bool, confirmer Confirmer, notifier Notifier) *ProfileView {
	return &ProfileView{
		ViewFactory: f,
		standalone:  standalone,
		confirmer:   confirmer,
		notifier:    notifier,
		state:       StateIdle,
	}
}

// ProfileView displays one profile at a time. Opening another account cancels whatever is
// still running for the previous one and late results are dropped.
type ProfileView struct {
	*ViewFactory
	standalone bool
	confirmer  Confirmer
	notifier   Notifier

	mu             sync.Mutex
	generation     uint64
	cancel         context.CancelFunc
	state          ViewState
	errorLink      string
	account        *mastodon.Account
	instance       string
	header         *headercolor.Header
	relationship   *RelationshipClient
	insightsResult Insights
	followers      Paginator
	following      Paginator
	lists          *ListMembership
	notifications  []string
}

func (v *ProfileView) Open(ctx context.Context, ref AccountRef) error {
	ctx, generation := v.begin(ctx)
	v.commit(generation, func() {
		v.state = StateLoading
		v.errorLink = ""
		v.account = ref.Account
		v.instance = ref.Instance
		v.header = nil
		v.relationship = nil
		v.insightsResult = Insights{}
		v.followers = nil
		v.following = nil
		v.lists = nil
	})

	account, err := v.loader.Load(ctx, ref)
	if err != nil {
		current := v.commit(generation, func() {
			v.state = StateError
			v.account = nil
			v.errorLink = ref.ErrorLink()
		})
		if !current {
			return ErrSuperseded
		}
		v.log.WithError(err).Warn("unable to open profile")
		return err
	}

	instance := ref.Instance
	if instance == "" {
		instance = v.store.Session().Instance
	}
	current := v.commit(generation, func() {
		v.account = account
		v.instance = instance
		v.state = StateReady
	})
	if !current {
		return ErrSuperseded
	}
	return v.refresh(ctx, generation, account, instance, true)
}

// Reload runs the relationship machine again for the current account.
func (v *ProfileView) Reload(ctx context.Context) error {
	v.mu.Lock()
	account, instance := v.account, v.instance
	v.mu.Unlock()
	if account == nil {
		return ErrNotLoaded
	}
	ctx, generation := v.begin(ctx)
	return v.refresh(ctx, generation, account, instance, false)
}

func (v *ProfileView) SetSession(ctx context.Context, session state.Session) error {
	v.store.SetSession(session)
	return v.Reload(ctx)
}

func (v *ProfileView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.generation++
}

func (v *ProfileView) refresh(
	ctx context.Context,
	generation uint64,
	account *mastodon.Account,
	instance string,
	withHeader bool,
) error {
	session := v.store.Session()
	profileClient := v.provider.For(instance)
	relationship := NewRelationshipClient(
		v.log,
		v.store,
		v.provider.Viewer(),
		v.confirmer,
		v,
		v.meter,
		account,
		instance,
	)
	v.mu.Lock()
	relationship.inherit(v.relationship)
	v.mu.Unlock()
	relationship.OnChange(func(ctx context.Context, change RelationshipChange) {
		insights := v.insightsFetcher.Fetch(ctx, change, v.standalone)
		v.commit(generation, func() {
			v.insightsResult = insights
		})
	})

	current := v.commit(generation, func() {
		v.relationship = relationship
		v.insightsResult = Insights{}
		v.lists = nil
		v.followers = NewAccountsPaginator(v.log, profileClient, session, account, instance, true)
		v.following = NewAccountsPaginator(v.log, profileClient, session, account, instance, false)
	})
	if !current {
		return ErrSuperseded
	}

	var relationshipErr error
	var wg conc.WaitGroup
	if withHeader {
		wg.Go(func() {
			header := v.headers.Load(ctx, account)
			v.commit(generation, func() {
				v.header = header
			})
		})
	}
	wg.Go(func() {
		relationshipErr = relationship.Refresh(ctx)
	})
	wg.Wait()

	if !v.isCurrent(generation) {
		return ErrSuperseded
	}
	if relationshipErr != nil {
		v.log.WithError(relationshipErr).WithField("account", account.ID).Warn("relationship unavailable")
	}
	return nil
}

func (v *ProfileView) begin(ctx context.Context) (context.Context, uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
	}
	ctx, v.cancel = context.WithCancel(ctx)
	v.generation++
	return ctx, v.generation
}

// commit applies update only if no other account was opened since generation started.
func (v *ProfileView) commit(generation uint64, update func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.generation != generation {
		return false
	}
	update()
	return true
}

func (v *ProfileView) isCurrent(generation uint64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.generation == generation
}

// Notify keeps the last messages for the snapshot and forwards them.
func (v *ProfileView) Notify(ctx context.Context, message string) {
	v.mu.Lock()
	v.notifications = append(v.notifications, message)
	if len(v.notifications) > maxNotifications {
		v.notifications = v.notifications[len(v.notifications)-maxNotifications:]
	}
	v.mu.Unlock()
	if v.notifier != nil {
		v.notifier.Notify(ctx, message)
	}
}

func (v *ProfileView) Relationship() (*RelationshipClient, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.relationship == nil {
		return nil, ErrNotLoaded
	}
	return v.relationship, nil
}

func (v *ProfileView) Apply(ctx context.Context, action Action, duration mastodon.MuteDuration) error {
	relationship, err := v.Relationship()
	if err != nil {
		return err
	}
	return relationship.Apply(ctx, action, duration)
}

func (v *ProfileView) Followers() (Paginator, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.followers == nil {
		return nil, ErrNotLoaded
	}
	return v.followers, nil
}

func (v *ProfileView) Following() (Paginator, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.following == nil {
		return nil, ErrNotLoaded
	}
	return v.following, nil
}

// Lists returns the list membership of the account, loading it the first time.
func (v *ProfileView) Lists(ctx context.Context) (*ListMembership, error) {
	relationship, err := v.Relationship()
	if err != nil {
		return nil, err
	}
	snapshot := relationship.Snapshot()
	if snapshot.Relationship == nil || !snapshot.Relationship.Following {
		return nil, ErrNotFollowing
	}

	v.mu.Lock()
	lists := v.lists
	if lists == nil {
		lists = NewListMembership(v.log, v.provider.Viewer(), v, snapshot.ResolvedID)
		v.lists = lists
	}
	v.mu.Unlock()

	if lists.Snapshot().State == StateIdle {
		if err := lists.Load(ctx); err != nil {
			return lists, err
		}
	}
	return lists, nil
}

// ShowAccounts asks the navigation to list the followers, or the following when followers is false.
func (v *ProfileView) ShowAccounts(followers bool) error {
	paginator, err := v.Following()
	heading := "Following"
	if followers {
		paginator, err = v.Followers()
		heading = "Followers"
	}
	if err != nil {
		return err
	}
	v.mu.Lock()
	instance := v.instance
	v.mu.Unlock()

	v.store.ShowAccounts(state.AccountsList{
		Heading:  heading,
		Instance: instance,
		Fetch: func(ctx context.Context, firstLoad bool) ([]mastodon.Account, bool, error) {
			page, err := paginator.Next(ctx, firstLoad)
			if err != nil {
				return nil, false, err
			}
			return page.Accounts, page.HasMore, nil
		},
	})
	return nil
}

// ShowAccount opens account, one of the familiar followers for instance, on top of the profile.
func (v *ProfileView) ShowAccount(account *mastodon.Account) {
	v.store.ShowAccount(account, v.provider.Viewer().Instance())
}

func (v *ProfileView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snapshot := Snapshot{
		State:         v.state,
		ErrorLink:     v.errorLink,
		Instance:      v.instance,
		Notifications: append([]string{}, v.notifications...),
		Reloads: map[state.ReloadKind]uint64{
			state.ReloadMute:  v.store.ReloadCounter(state.ReloadMute),
			state.ReloadBlock: v.store.ReloadCounter(state.ReloadBlock),
		},
	}
	if v.account != nil {
		account := *v.account
		snapshot.Account = &account
		snapshot.Handle = account.Handle(v.instance)
		bio, err := richtext.BioText(account.Note, account.Fields)
		if err != nil {
			v.log.WithError(err).Debug("unable to render bio")
		}
		snapshot.Bio = bio
		if profileURL, err := richtext.SplitURL(account.URL); err == nil {
			snapshot.ProfileURL = &profileURL
		}
	}
	if v.header != nil {
		snapshot.Header = &HeaderSnapshot{URL: v.header.URL, IsAvatar: v.header.IsAvatar}
		if v.header.Corners != nil {
			snapshot.Header.Colors = v.header.Corners.CSS()
		}
	}
	if v.relationship != nil {
		snapshot.Relationship = v.relationship.Snapshot()
	} else {
		snapshot.Relationship.State = StateIdle
	}
	snapshot.FamiliarFollowers = append([]mastodon.Account{}, v.insightsResult.FamiliarFollowers...)
	if stats := v.insightsResult.PostingStats; stats != nil && stats.Active() {
		copied := *stats
		snapshot.PostingStats = &copied
	}
	return snapshot
}
