package state

import (
	"strings"

	"github.com/estrys/fediprofile/internal/mastodon"
)

// Session is the viewer signed in on the client.
type Session struct {
	AccountID string
	Instance  string
	Account   *mastodon.Account
}

func (s Session) Authenticated() bool {
	return s.AccountID != ""
}

// SameInstance tells if instance is the host the viewer is signed in on.
func (s Session) SameInstance(instance string) bool {
	return s.Instance != "" && strings.EqualFold(s.Instance, instance)
}

// AccountKey is the cache key of an account, unique across instances.
func AccountKey(id, instance string) string {
	return id + "@" + strings.ToLower(instance)
}
