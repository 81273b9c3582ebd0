package headercolor

import (
	"context"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp" // register decoder

	_http "github.com/estrys/fediprofile/internal/http"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
)

const maxImageSize = 8 << 20

var ErrCrossOriginDenied = errors.New("image server does not allow cross origin reads")

// Header is the banner that ended up displayed. Corners is nil when it could not be sampled.
type Header struct {
	URL      string
	IsAvatar bool
	Corners  *Corners
}

//go:generate mockery --name=Loader
type Loader interface {
	// Load returns nil when no image could be loaded at all.
	Load(ctx context.Context, account *mastodon.Account) *Header
}

type attempt struct {
	url         string
	crossOrigin bool
}

type loader struct {
	client _http.Client
	origin string
	log    logger.Logger
}

// NewLoader fetches headers as a page served from origin would: pixels of an image are only
// readable when it was requested in cross origin mode and the server allowed it.
func NewLoader(client _http.Client, origin string, log logger.Logger) *loader {
	return &loader{client: client, origin: origin, log: log}
}

func (l *loader) Load(ctx context.Context, account *mastodon.Account) *Header {
	header, headerStatic, isAvatar := HeaderImage(account)
	if mastodon.IsMissingImage(header) {
		return nil
	}

	for _, try := range attempts(header, headerStatic) {
		img, err := l.fetch(ctx, try)
		if err != nil {
			l.log.WithError(err).
				WithField("url", try.url).
				WithField("cross_origin", try.crossOrigin).
				Debug("unable to load header image")
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		result := &Header{URL: try.url, IsAvatar: isAvatar}
		if img == nil {
			return result
		}
		corners, err := SampleCorners(img)
		if err != nil {
			l.log.WithError(err).WithField("url", try.url).Debug("unable to sample header corners")
			return result
		}
		result.Corners = &corners
		return result
	}
	return nil
}

// attempts lists the header, its static variant, then the header again without cross origin.
func attempts(header, headerStatic string) []attempt {
	tries := []attempt{{url: header, crossOrigin: true}}
	if headerStatic != "" && headerStatic != header && !mastodon.IsMissingImage(headerStatic) {
		tries = append(tries, attempt{url: headerStatic, crossOrigin: true})
	}
	return append(tries, attempt{url: header, crossOrigin: false})
}

// fetch returns a nil image for an image loaded without cross origin, its pixels being unreadable.
func (l *loader) fetch(ctx context.Context, try attempt) (image.Image, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, try.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create image request")
	}
	if try.crossOrigin {
		request.Header.Set("Origin", l.origin)
	}
	response, err := l.client.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch image")
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("image server answered %d", response.StatusCode)
	}
	if try.crossOrigin && !l.allowed(response.Header) {
		return nil, ErrCrossOriginDenied
	}
	img, _, err := image.Decode(io.LimitReader(response.Body, maxImageSize))
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode image")
	}
	if !try.crossOrigin {
		return nil, nil
	}
	return img, nil
}

func (l *loader) allowed(header http.Header) bool {
	allowOrigin := header.Get("Access-Control-Allow-Origin")
	return allowOrigin == "*" || (allowOrigin != "" && allowOrigin == l.origin)
}
