package urlgenerator

import (
	"net/url"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type RouteParams []string

//go:generate mockery --name=URLGenerator
type URLGenerator interface {
	URL(string, RouteParams) (*url.URL, error)
}

type muxURLGenerator struct {
	router *mux.Router
}

func NewURLGenerator(router *mux.Router) *muxURLGenerator {
	return &muxURLGenerator{
		router: router,
	}
}

// URL builds the path of a named route, params being alternating names and values.
func (r *muxURLGenerator) URL(routeName string, params RouteParams) (*url.URL, error) {
	route := r.router.Get(routeName)
	if route == nil {
		return nil, errors.Errorf("unknown route %s", routeName)
	}
	routeURL, err := route.URL(params...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate URL for route")
	}
	return routeURL, nil
}
