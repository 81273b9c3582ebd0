package mastodon

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/logger/mocks"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(request *http.Request) (*http.Response, error) {
	return f(request)
}

func TestThrottledTransport_updateRate(t *testing.T) {
	now := time.Date(2022, 12, 1, 10, 0, 0, 0, time.UTC)
	transport := NewThrottledTransport(nil, mocks.NewNullLogger())
	transport.now = func() time.Time { return now }

	header := http.Header{}
	header.Set(headerRateLimitRemaining, "10")
	header.Set(headerRateLimitReset, now.Add(10*time.Second).Format(time.RFC3339))
	transport.updateRate("example.social/read", header)
	require.Contains(t, transport.ratelimiters, "example.social/read")
	assert.InDelta(t, 1.0, float64(transport.ratelimiters["example.social/read"].Limit()), 0.001)

	header.Set(headerRateLimitRemaining, "0")
	transport.updateRate("example.social/read", header)
	assert.Equal(t, now.Add(10*time.Second), transport.waitUntilReset["example.social/read"])

	transport.updateRate("example.social/read", http.Header{})
	assert.Contains(t, transport.waitUntilReset, "example.social/read")
}

func TestThrottledTransport_keys(t *testing.T) {
	transport := NewThrottledTransport(nil, mocks.NewNullLogger())
	get, _ := http.NewRequest(http.MethodGet, "https://example.social/api/v1/accounts/1", nil)
	post, _ := http.NewRequest(http.MethodPost, "https://example.social/api/v1/accounts/1/follow", nil)
	assert.Equal(t, "example.social/read", transport.getRequestKey(get))
	assert.Equal(t, "example.social/write", transport.getRequestKey(post))
}

func TestThrottledTransport_RoundTrip_cancelled_while_waiting(t *testing.T) {
	now := time.Now()
	called := false
	transport := NewThrottledTransport(roundTripFunc(func(request *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}, nil
	}), mocks.NewNullLogger())
	transport.waitUntilReset["example.social/read"] = now.Add(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	request, _ := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.social/api/v1/lists", nil)
	_, err := transport.RoundTrip(request) //nolint:bodyclose
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
