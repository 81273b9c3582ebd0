package mastodon

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Cursor is the continuation token of a paginated list query.
type Cursor struct {
	MaxID string
	Limit int
}

func (c Cursor) query() url.Values {
	values := url.Values{}
	if c.Limit > 0 {
		values.Set("limit", strconv.Itoa(c.Limit))
	}
	if c.MaxID != "" {
		values.Set("max_id", c.MaxID)
	}
	return values
}

type AccountPage struct {
	Accounts []Account
	// Next is nil on the last page.
	Next *Cursor
}

// nextCursor reads the rel="next" entry of a Link header.
func nextCursor(header http.Header, limit int) *Cursor {
	for _, link := range strings.Split(header.Get("Link"), ",") {
		parts := strings.Split(link, ";")
		if len(parts) < 2 {
			continue
		}
		isNext := false
		for _, param := range parts[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				isNext = true
			}
		}
		if !isNext {
			continue
		}
		target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
		nextURL, err := url.Parse(target)
		if err != nil {
			return nil
		}
		maxID := nextURL.Query().Get("max_id")
		if maxID == "" {
			return nil
		}
		return &Cursor{MaxID: maxID, Limit: limit}
	}
	return nil
}
