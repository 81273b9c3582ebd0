package api

import (
	"sync"

	"github.com/gofrs/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/domain"
	"github.com/estrys/fediprofile/internal/metrics"
)

// ViewRegistry keeps the open profile views by id. Least recently used views are closed
// once the registry is full.
//
//go:generate mockery --name=ViewRegistry
type ViewRegistry interface {
	Add(view *domain.ProfileView) (string, error)
	Get(id string) (*domain.ProfileView, bool)
	Remove(id string) bool
}

type lruViewRegistry struct {
	mu    sync.Mutex
	views *lru.Cache[string, *domain.ProfileView]
	meter metrics.Meter
}

func NewViewRegistry(size int, meter metrics.Meter) (*lruViewRegistry, error) {
	registry := &lruViewRegistry{meter: meter}
	views, err := lru.NewWithEvict[string, *domain.ProfileView](
		size,
		func(_ string, view *domain.ProfileView) {
			view.Close()
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create view registry")
	}
	registry.views = views
	return registry, nil
}

func (r *lruViewRegistry) Add(view *domain.ProfileView) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate view id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views.Add(id.String(), view)
	r.updateGauge()
	return id.String(), nil
}

func (r *lruViewRegistry) Get(id string) (*domain.ProfileView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views.Get(id)
}

func (r *lruViewRegistry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := r.views.Remove(id)
	r.updateGauge()
	return removed
}

func (r *lruViewRegistry) updateGauge() {
	if r.meter != nil {
		r.meter.Set(metrics.OpenViewsGauge, float64(r.views.Len()))
	}
}
