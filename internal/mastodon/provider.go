package mastodon

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/metrics"
)

// Provider hands out one API client per instance. Only the viewer's own instance
// gets the access token, every other instance is queried anonymously.
//
//go:generate mockery --name=Provider
type Provider interface {
	For(instance string) Client
	Viewer() Client
}

type ProviderConfig struct {
	ViewerInstance string
	Token          string
	// Scheme defaults to https.
	Scheme string
}

type clientProvider struct {
	conf       ProviderConfig
	httpClient *http.Client
	log        logger.Logger
	meter      metrics.Meter

	mu      sync.Mutex
	clients map[string]Client
}

func NewProvider(
	conf ProviderConfig,
	httpClient *http.Client,
	log logger.Logger,
	meter metrics.Meter,
) *clientProvider {
	if conf.Scheme == "" {
		conf.Scheme = "https"
	}
	conf.ViewerInstance = strings.ToLower(conf.ViewerInstance)
	return &clientProvider{
		conf:       conf,
		httpClient: httpClient,
		log:        log,
		meter:      meter,
		clients:    map[string]Client{},
	}
}

func (p *clientProvider) For(instance string) Client {
	instance = strings.ToLower(instance)
	if instance == "" {
		instance = p.conf.ViewerInstance
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if client, exist := p.clients[instance]; exist {
		return client
	}

	authorizer := Authorizer{}
	if instance == p.conf.ViewerInstance {
		authorizer.Token = p.conf.Token
	}
	client := NewClient(
		&url.URL{Scheme: p.conf.Scheme, Host: instance},
		authorizer,
		p.httpClient,
		p.log.WithField("instance", instance),
		p.meter,
	)
	p.clients[instance] = client
	return client
}

func (p *clientProvider) Viewer() Client {
	return p.For(p.conf.ViewerInstance)
}
