package domain

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/state"
)

// Resolution locates the displayed account on the viewer's own instance.
type Resolution struct {
	// ID is empty when the account could not be found from the viewer's instance.
	ID   string
	Self bool
	// Account is the copy found by a cross instance search.
	Account *mastodon.Account
}

type RelationshipChange struct {
	Relationship mastodon.Relationship
	ResolvedID   string
}

type RelationshipListener func(ctx context.Context, change RelationshipChange)

type RelationshipSnapshot struct {
	State        ViewState              `json:"state"`
	ResolvedID   string                 `json:"resolved_id,omitempty"`
	Self         bool                   `json:"self"`
	Relationship *mastodon.Relationship `json:"relationship,omitempty"`
}

// RelationshipClient tracks the viewer's relationship with one account.
type RelationshipClient struct {
	log       logger.Logger
	store     state.Store
	viewer    mastodon.Client
	confirmer Confirmer
	notifier  Notifier
	meter     metrics.Meter

	account  *mastodon.Account
	instance string
	// session is the viewer the client was built for.
	session state.Session

	mu           sync.Mutex
	state        ViewState
	resolution   Resolution
	relationship *mastodon.Relationship
	listeners    []RelationshipListener
}

func NewRelationshipClient(
	log logger.Logger,
	store state.Store,
	viewer mastodon.Client,
	confirmer Confirmer,
	notifier Notifier,
	meter metrics.Meter,
	account *mastodon.Account,
	instance string,
) *RelationshipClient {
	return &RelationshipClient{
		log: log.WithFields(logrus.Fields{
			"account":  account.ID,
			"instance": instance,
		}),
		store:     store,
		viewer:    viewer,
		confirmer: confirmer,
		notifier:  notifier,
		meter:     meter,
		account:   account,
		instance:  instance,
		session:   store.Session(),
		state:     StateIdle,
	}
}

// inherit shows what previous displayed until the next fetch lands. Nothing is carried over
// when previous targets another account or was built for another viewer.
func (c *RelationshipClient) inherit(previous *RelationshipClient) {
	if previous == nil ||
		previous.account.ID != c.account.ID ||
		!strings.EqualFold(previous.instance, c.instance) ||
		previous.session.AccountID != c.session.AccountID ||
		!strings.EqualFold(previous.session.Instance, c.session.Instance) {
		return
	}
	previous.mu.Lock()
	currentState, resolution, relationship := previous.state, previous.resolution, previous.relationship
	previous.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = currentState
	c.resolution = resolution
	c.relationship = relationship
}

func (c *RelationshipClient) OnChange(listener RelationshipListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, listener)
}

func (c *RelationshipClient) Snapshot() RelationshipSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := RelationshipSnapshot{
		State:      c.state,
		ResolvedID: c.resolution.ID,
		Self:       c.resolution.Self,
	}
	if c.relationship != nil {
		relationship := *c.relationship
		snapshot.Relationship = &relationship
	}
	return snapshot
}

// Refresh resolves the account on the viewer's instance then fetches the relationship.
// An account that cannot be resolved leaves the relationship empty without error.
func (c *RelationshipClient) Refresh(ctx context.Context) error {
	c.setState(StateLoading)
	session := c.store.Session()
	resolution, err := c.Resolve(ctx, session)
	if err != nil {
		c.log.WithError(err).Warn("unable to resolve account from the viewer instance")
	}

	c.mu.Lock()
	c.resolution = resolution
	if resolution.Self || resolution.ID == "" || c.account.Moved != nil {
		c.state = StateReady
		c.mu.Unlock()
		if resolution.Self {
			session.Account = c.account
			if resolution.Account != nil {
				session.Account = resolution.Account
			}
			c.store.SetSession(session)
		}
		return nil
	}
	c.mu.Unlock()

	relationships, err := c.viewer.FetchRelationships(ctx, []string{resolution.ID})
	if err != nil {
		c.setState(StateError)
		return errors.Wrap(err, "unable to fetch relationship")
	}

	c.mu.Lock()
	c.state = StateReady
	if len(relationships) == 0 {
		c.mu.Unlock()
		return nil
	}
	relationship := relationships[0]
	c.relationship = &relationship
	listeners := append([]RelationshipListener{}, c.listeners...)
	c.mu.Unlock()

	change := RelationshipChange{Relationship: relationship, ResolvedID: resolution.ID}
	for _, listener := range listeners {
		listener(ctx, change)
	}
	return nil
}

// Resolve finds the id the viewer's instance knows the account by, searching it by handle
// when the account lives on another instance.
func (c *RelationshipClient) Resolve(ctx context.Context, session state.Session) (Resolution, error) {
	var resolution Resolution
	if !session.Authenticated() {
		return resolution, nil
	}

	if session.SameInstance(c.instance) {
		resolution.ID = c.account.ID
	} else {
		accounts, err := c.viewer.SearchAccounts(ctx, mastodon.SearchAccountsParams{
			Query:   c.account.Handle(c.instance),
			Resolve: true,
			Limit:   1,
		})
		if err != nil {
			return resolution, errors.Wrap(err, "unable to search account")
		}
		if len(accounts) == 0 {
			return resolution, nil
		}
		resolution.ID = accounts[0].ID
		resolution.Account = &accounts[0]
	}

	resolution.Self = resolution.ID == session.AccountID
	return resolution, nil
}

func (c *RelationshipClient) setState(state ViewState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}
