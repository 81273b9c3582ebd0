package domain

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
)

type ListEntry struct {
	List   mastodon.List `json:"list"`
	Member bool          `json:"member"`
}

type ListsSnapshot struct {
	State ViewState   `json:"state"`
	Lists []ListEntry `json:"lists"`
}

// ListMembership adds or removes a followed account from the viewer's lists.
type ListMembership struct {
	log       logger.Logger
	client    mastodon.Client
	notifier  Notifier
	accountID string

	mu      sync.Mutex
	state   ViewState
	entries []ListEntry
}

func NewListMembership(log logger.Logger, client mastodon.Client, notifier Notifier, accountID string) *ListMembership {
	return &ListMembership{
		log:       log.WithField("account", accountID),
		client:    client,
		notifier:  notifier,
		accountID: accountID,
		state:     StateIdle,
	}
}

func (m *ListMembership) Load(ctx context.Context) error {
	m.setState(StateLoading)
	lists, err := m.client.ListLists(ctx)
	if err != nil {
		m.setState(StateError)
		return errors.Wrap(err, "unable to load lists")
	}
	containing, err := m.client.ListAccountLists(ctx, m.accountID)
	if err != nil {
		m.setState(StateError)
		return errors.Wrap(err, "unable to load lists containing the account")
	}

	member := make(map[string]bool, len(containing))
	for _, list := range containing {
		member[list.ID] = true
	}
	entries := make([]ListEntry, 0, len(lists))
	for _, list := range lists {
		entries = append(entries, ListEntry{List: list, Member: member[list.ID]})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = entries
	m.state = StateReady
	return nil
}

// Toggle removes the account from the list when it is in it, adds it otherwise, then reloads.
func (m *ListMembership) Toggle(ctx context.Context, listID string) error {
	member := false
	m.mu.Lock()
	for _, entry := range m.entries {
		if entry.List.ID == listID {
			member = entry.Member
		}
	}
	m.mu.Unlock()

	m.setState(StateLoading)
	var err error
	if member {
		err = m.client.RemoveAccountFromList(ctx, listID, m.accountID)
	} else {
		err = m.client.AddAccountToList(ctx, listID, m.accountID)
	}
	if err != nil {
		m.setState(StateError)
		m.log.WithError(err).WithField("list", listID).Error("unable to update list")
		if member {
			m.notifier.Notify(ctx, "Unable to remove from list.")
			return errors.Wrap(err, "unable to remove from list")
		}
		m.notifier.Notify(ctx, "Unable to add to list.")
		return errors.Wrap(err, "unable to add to list")
	}
	return m.Load(ctx)
}

func (m *ListMembership) Snapshot() ListsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ListsSnapshot{
		State: m.state,
		Lists: append([]ListEntry{}, m.entries...),
	}
}

func (m *ListMembership) setState(state ViewState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}
