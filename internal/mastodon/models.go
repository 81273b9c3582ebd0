package mastodon

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var missingImageRegexp = regexp.MustCompile(`missing\.png$`)

var ErrInvalidRecord = errors.New("invalid record returned by the server")

type Emoji struct {
	Shortcode string `json:"shortcode"`
	URL       string `json:"url"`
	StaticURL string `json:"static_url"`
}

type Field struct {
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	VerifiedAt *time.Time `json:"verified_at"`
}

type Role struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Acct           string    `json:"acct"`
	DisplayName    string    `json:"display_name"`
	Note           string    `json:"note"`
	URL            string    `json:"url"`
	Avatar         string    `json:"avatar"`
	AvatarStatic   string    `json:"avatar_static"`
	Header         string    `json:"header"`
	HeaderStatic   string    `json:"header_static"`
	Locked         bool      `json:"locked"`
	Bot            bool      `json:"bot"`
	Group          bool      `json:"group"`
	Memorial       bool      `json:"memorial"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	StatusesCount  int64     `json:"statuses_count"`
	LastStatusAt   string    `json:"last_status_at"`
	CreatedAt      time.Time `json:"created_at"`
	Emojis         []Emoji   `json:"emojis"`
	Fields         []Field   `json:"fields"`
	Roles          []Role    `json:"roles"`
	Moved          *Account  `json:"moved"`
}

// Validate checks the fields every component relies on.
func (a *Account) Validate() error {
	if a == nil {
		return errors.Wrap(ErrInvalidRecord, "account is empty")
	}
	if a.ID == "" {
		return errors.Wrap(ErrInvalidRecord, "account has no id")
	}
	if a.Username == "" {
		return errors.Wrapf(ErrInvalidRecord, "account %s has no username", a.ID)
	}
	if a.Moved != nil {
		if err := a.Moved.Validate(); err != nil {
			return errors.Wrapf(err, "account %s moved", a.ID)
		}
	}
	return nil
}

// Instance is the host the account lives on, taken from its profile URL.
func (a *Account) Instance() string {
	if a.URL == "" {
		return ""
	}
	profileURL, err := url.Parse(a.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(profileURL.Hostname())
}

// Handle returns the fully qualified user@host handle, using instance for local accounts.
func (a *Account) Handle(instance string) string {
	if strings.Contains(a.Acct, "@") {
		return a.Acct
	}
	return a.Username + "@" + instance
}

func IsMissingImage(imageURL string) bool {
	return imageURL == "" || missingImageRegexp.MatchString(imageURL)
}

type Relationship struct {
	ID                  string `json:"id"`
	Following           bool   `json:"following"`
	ShowingReblogs      bool   `json:"showing_reblogs"`
	Notifying           bool   `json:"notifying"`
	FollowedBy          bool   `json:"followed_by"`
	Blocking            bool   `json:"blocking"`
	BlockedBy           bool   `json:"blocked_by"`
	Muting              bool   `json:"muting"`
	MutingNotifications bool   `json:"muting_notifications"`
	Requested           bool   `json:"requested"`
	DomainBlocking      bool   `json:"domain_blocking"`
	Endorsed            bool   `json:"endorsed"`
	Note                string `json:"note"`
}

func (r *Relationship) Validate() error {
	if r == nil || r.ID == "" {
		return errors.Wrap(ErrInvalidRecord, "relationship has no id")
	}
	return nil
}

type Status struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	InReplyToID        string    `json:"in_reply_to_id"`
	InReplyToAccountID string    `json:"in_reply_to_account_id"`
	Reblog             *Status   `json:"reblog"`
	Content            string    `json:"content"`
	URL                string    `json:"url"`
}

func (s *Status) Validate() error {
	if s == nil || s.ID == "" {
		return errors.Wrap(ErrInvalidRecord, "status has no id")
	}
	if s.CreatedAt.IsZero() {
		return errors.Wrapf(ErrInvalidRecord, "status %s has no creation date", s.ID)
	}
	return nil
}

type List struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	RepliesPolicy string `json:"replies_policy"`
}

func (l *List) Validate() error {
	if l == nil || l.ID == "" {
		return errors.Wrap(ErrInvalidRecord, "list has no id")
	}
	return nil
}

type FamiliarFollowers struct {
	ID       string    `json:"id"`
	Accounts []Account `json:"accounts"`
}

func (f *FamiliarFollowers) Validate() error {
	if f == nil || f.ID == "" {
		return errors.Wrap(ErrInvalidRecord, "familiar followers entry has no id")
	}
	for i := range f.Accounts {
		if err := f.Accounts[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type SearchResults struct {
	Accounts []Account `json:"accounts"`
}

func (s *SearchResults) Validate() error {
	for i := range s.Accounts {
		if err := s.Accounts[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
