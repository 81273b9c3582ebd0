package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/state"
)

type Action string

const (
	ActionFollow   Action = "follow"
	ActionUnfollow Action = "unfollow"
	ActionMute     Action = "mute"
	ActionUnmute   Action = "unmute"
	ActionBlock    Action = "block"
	ActionUnblock  Action = "unblock"

	ActionToggleFollow Action = "toggle-follow"
	ActionToggleBlock  Action = "toggle-block"
)

func ParseAction(value string) (Action, error) {
	action := Action(strings.ToLower(value))
	switch action {
	case ActionFollow, ActionUnfollow, ActionMute, ActionUnmute, ActionBlock, ActionUnblock,
		ActionToggleFollow, ActionToggleBlock:
		return action, nil
	}
	return "", errors.Wrapf(ErrUnknownAction, "%q", value)
}

type mutation struct {
	action  Action
	confirm string
	call    func(ctx context.Context, id string) (*mastodon.Relationship, error)
	success string
	failure string
	reload  state.ReloadKind
}

// Apply runs action, duration only matters to mute.
func (c *RelationshipClient) Apply(ctx context.Context, action Action, duration mastodon.MuteDuration) error {
	switch action {
	case ActionFollow:
		return c.Follow(ctx)
	case ActionUnfollow:
		return c.Unfollow(ctx)
	case ActionMute:
		return c.Mute(ctx, duration)
	case ActionUnmute:
		return c.Unmute(ctx)
	case ActionBlock:
		return c.Block(ctx)
	case ActionUnblock:
		return c.Unblock(ctx)
	case ActionToggleFollow:
		return c.ToggleFollow(ctx)
	case ActionToggleBlock:
		return c.ToggleBlock(ctx)
	}
	return errors.Wrapf(ErrUnknownAction, "%q", action)
}

func (c *RelationshipClient) Follow(ctx context.Context) error {
	success := fmt.Sprintf("Followed @%s", c.account.Username)
	if c.account.Locked {
		success = fmt.Sprintf("Requested to follow @%s", c.account.Username)
	}
	return c.mutate(ctx, mutation{
		action:  ActionFollow,
		call:    c.viewer.Follow,
		success: success,
		failure: fmt.Sprintf("Unable to follow @%s", c.account.Username),
	})
}

func (c *RelationshipClient) Unfollow(ctx context.Context) error {
	current := c.current()
	prompt := ""
	switch {
	case current.Requested:
		prompt = "Withdraw follow request?"
	case current.Following:
		prompt = fmt.Sprintf("Unfollow @%s?", c.displayHandle())
	}
	return c.mutate(ctx, mutation{
		action:  ActionUnfollow,
		confirm: prompt,
		call:    c.viewer.Unfollow,
		success: fmt.Sprintf("Unfollowed @%s", c.account.Username),
		failure: fmt.Sprintf("Unable to unfollow @%s", c.account.Username),
	})
}

// ToggleFollow unfollows a followed or requested account, follows any other.
func (c *RelationshipClient) ToggleFollow(ctx context.Context) error {
	current := c.current()
	if current.Following || current.Requested {
		return c.Unfollow(ctx)
	}
	return c.Follow(ctx)
}

func (c *RelationshipClient) Mute(ctx context.Context, duration mastodon.MuteDuration) error {
	if !duration.Valid() {
		return errors.Wrapf(mastodon.ErrUnknownMuteDuration, "%d", duration)
	}
	return c.mutate(ctx, mutation{
		action: ActionMute,
		call: func(ctx context.Context, id string) (*mastodon.Relationship, error) {
			return c.viewer.Mute(ctx, id, duration)
		},
		success: fmt.Sprintf("Muted @%s for %s", c.account.Username, duration.Label()),
		failure: fmt.Sprintf("Unable to mute @%s", c.account.Username),
		reload:  state.ReloadMute,
	})
}

func (c *RelationshipClient) Unmute(ctx context.Context) error {
	return c.mutate(ctx, mutation{
		action:  ActionUnmute,
		call:    c.viewer.Unmute,
		success: fmt.Sprintf("Unmuted @%s", c.account.Username),
		failure: fmt.Sprintf("Unable to unmute @%s", c.account.Username),
		reload:  state.ReloadMute,
	})
}

func (c *RelationshipClient) Block(ctx context.Context) error {
	return c.mutate(ctx, mutation{
		action:  ActionBlock,
		call:    c.viewer.Block,
		success: fmt.Sprintf("Blocked @%s", c.account.Username),
		failure: fmt.Sprintf("Unable to block @%s", c.account.Username),
		reload:  state.ReloadBlock,
	})
}

func (c *RelationshipClient) Unblock(ctx context.Context) error {
	prompt := ""
	if c.current().Blocking {
		prompt = fmt.Sprintf("Unblock @%s?", c.account.Username)
	}
	return c.mutate(ctx, mutation{
		action:  ActionUnblock,
		confirm: prompt,
		call:    c.viewer.Unblock,
		success: fmt.Sprintf("Unblocked @%s", c.account.Username),
		failure: fmt.Sprintf("Unable to unblock @%s", c.account.Username),
		reload:  state.ReloadBlock,
	})
}

// ToggleBlock unblocks a blocked account, blocks any other.
func (c *RelationshipClient) ToggleBlock(ctx context.Context) error {
	if c.current().Blocking {
		return c.Unblock(ctx)
	}
	return c.Block(ctx)
}

func (c *RelationshipClient) current() mastodon.Relationship {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.relationship == nil {
		return mastodon.Relationship{}
	}
	return *c.relationship
}

func (c *RelationshipClient) displayHandle() string {
	if c.account.Acct != "" {
		return c.account.Acct
	}
	return c.account.Username
}

func (c *RelationshipClient) mutate(ctx context.Context, m mutation) error {
	c.mu.Lock()
	id := c.resolution.ID
	available := c.relationship != nil && id != "" && !c.resolution.Self
	c.mu.Unlock()
	if !available {
		return ErrNoRelationship
	}

	if m.confirm != "" {
		confirmed, err := c.confirmer.Confirm(ctx, m.confirm)
		if err != nil {
			return errors.Wrap(err, "unable to ask for confirmation")
		}
		if !confirmed {
			return ErrNotConfirmed
		}
	}

	c.setState(StateLoading)
	relationship, err := m.call(ctx, id)
	if c.meter != nil {
		c.meter.Inc(metrics.RelationshipMutationsCounter, string(m.action), metrics.Outcome(err))
	}
	if err != nil {
		c.setState(StateError)
		c.log.WithError(err).WithField("action", m.action).Error("relationship update failed")
		c.notifier.Notify(ctx, m.failure)
		return errors.Wrapf(err, "unable to %s account", m.action)
	}

	c.mu.Lock()
	c.relationship = relationship
	c.state = StateReady
	c.mu.Unlock()

	c.notifier.Notify(ctx, m.success)
	if m.reload != "" {
		c.store.BumpReload(ctx, m.reload)
	}
	return nil
}
