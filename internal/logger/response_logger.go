package logger

import (
	"net/http"

	"github.com/motemen/go-loghttp"
	"github.com/sirupsen/logrus"
)

// GetResponseLogger wraps a transport and traces every call made to an instance,
// along with the rate limit budget it reports.
func GetResponseLogger(log Logger, wrap http.RoundTripper) *loghttp.Transport {
	return &loghttp.Transport{
		Transport: wrap,
		LogRequest: func(req *http.Request) {
			log.WithFields(logrus.Fields{
				"instance": req.URL.Host,
				"method":   req.Method,
				"path":     req.URL.Path,
			}).Trace("instance call")
		},
		LogResponse: func(resp *http.Response) {
			log.WithFields(logrus.Fields{
				"instance":        resp.Request.URL.Host,
				"method":          resp.Request.Method,
				"status":          resp.StatusCode,
				"path":            resp.Request.URL.Path,
				"query":           resp.Request.URL.RawQuery,
				"rate_remaining":  resp.Header.Get("X-RateLimit-Remaining"),
				"rate_reset_date": resp.Header.Get("X-RateLimit-Reset"),
			}).Trace("instance answered")
		},
	}
}
