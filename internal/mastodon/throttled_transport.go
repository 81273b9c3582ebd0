package mastodon

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/estrys/fediprofile/internal/logger"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// ThrottledTransport paces calls to each instance using the rate limit headers the
// server returns, waiting for the reset once the remaining budget hits zero.
type ThrottledTransport struct {
	log            logger.Logger
	wrap           http.RoundTripper
	mu             sync.Mutex
	waitUntilReset map[string]time.Time
	ratelimiters   map[string]*rate.Limiter
	now            func() time.Time
}

func NewThrottledTransport(wrap http.RoundTripper, log logger.Logger) *ThrottledTransport {
	return &ThrottledTransport{
		log:            log,
		wrap:           wrap,
		ratelimiters:   make(map[string]*rate.Limiter),
		waitUntilReset: make(map[string]time.Time),
		now:            time.Now,
	}
}

func (c *ThrottledTransport) getRequestKey(request *http.Request) string {
	// Mastodon applies one budget per host for reads and a stricter one for writes
	if request.Method == http.MethodGet || request.Method == http.MethodHead {
		return request.URL.Host + "/read"
	}
	return request.URL.Host + "/write"
}

func (c *ThrottledTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	requestKey := c.getRequestKey(request)

	c.mu.Lock()
	resetAt, needToWait := c.waitUntilReset[requestKey]
	limiter := c.ratelimiters[requestKey]
	c.mu.Unlock()

	if needToWait {
		durationToWait := resetAt.Sub(c.now())
		if durationToWait > 0 {
			c.log.WithField("seconds_to_wait", durationToWait.Seconds()).
				Trace("No calls remaining, waiting to the next reset")
			timer := time.NewTimer(durationToWait)
			select {
			case <-request.Context().Done():
				timer.Stop()
				return nil, request.Context().Err()
			case <-timer.C:
			}
		}
	}
	if limiter != nil {
		err := limiter.Wait(request.Context())
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	resp, err := c.wrap.RoundTrip(request)
	if resp != nil {
		c.updateRate(requestKey, resp.Header)
	}
	return resp, err //nolint:wrapcheck
}

func (c *ThrottledTransport) updateRate(requestKey string, header http.Header) {
	resetDate, timestampErr := time.Parse(time.RFC3339, header.Get(headerRateLimitReset))
	remainingCalls, remainingCallsErr := strconv.ParseFloat(header.Get(headerRateLimitRemaining), 64)
	if timestampErr != nil || remainingCallsErr != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	durationUntilReset := resetDate.Sub(c.now())
	if remainingCalls == 0 {
		c.waitUntilReset[requestKey] = resetDate
		return
	}
	delete(c.waitUntilReset, requestKey)
	if durationUntilReset <= 0 {
		delete(c.ratelimiters, requestKey)
		return
	}
	newRate := remainingCalls / durationUntilReset.Seconds()
	c.log.WithFields(logrus.Fields{
		"rate":                newRate,
		"request_key":         requestKey,
		"remaining_calls":     remainingCalls,
		"seconds_until_reset": durationUntilReset.Seconds(),
	}).Trace("updated new rate")
	c.ratelimiters[requestKey] = rate.NewLimiter(rate.Limit(newRate), 1)
}
