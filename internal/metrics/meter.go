package metrics

import (
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	APIRequestsCounter           = "fediprofile_api_requests_counter"
	RelationshipMutationsCounter = "fediprofile_relationship_mutations_counter"
	ReloadBumpsCounter           = "fediprofile_reload_bumps_counter"
	OpenViewsGauge               = "fediprofile_open_views_gauge"
)

//go:generate mockery --name Meter
type Meter interface {
	GetRegistry() *prometheus.Registry
	Inc(name string, labels ...string)
	Set(name string, value float64, labels ...string)
}

type metricRegistry struct {
	mu       sync.RWMutex
	registry *prometheus.Registry
	counters map[string]*prometheus.CounterVec
	gauges   map[string]*prometheus.GaugeVec
}

// Register creates a metric, its kind being picked from the name suffix.
func (r *metricRegistry) Register(name, help string, labels ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case strings.HasSuffix(name, "_counter"):
		counter := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: strings.TrimSuffix(name, "_counter") + "_total",
			Help: help,
		}, labels)
		if err := r.registry.Register(counter); err != nil {
			return fmt.Errorf("cannot register counter %s: %w", name, err)
		}
		r.counters[name] = counter
		return nil
	case strings.HasSuffix(name, "_gauge"):
		gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: strings.TrimSuffix(name, "_gauge"),
			Help: help,
		}, labels)
		if err := r.registry.Register(gauge); err != nil {
			return fmt.Errorf("cannot register gauge %s: %w", name, err)
		}
		r.gauges[name] = gauge
		return nil
	}
	return fmt.Errorf("cannot register metrics, unknown type for given name: %s", name)
}

func (r *metricRegistry) Inc(name string, labels ...string) {
	r.mu.RLock()
	counter, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		counter.WithLabelValues(labels...).Inc()
	}
}

func (r *metricRegistry) Set(name string, value float64, labels ...string) {
	r.mu.RLock()
	gauge, ok := r.gauges[name]
	r.mu.RUnlock()
	if ok {
		gauge.WithLabelValues(labels...).Set(value)
	}
}

func (r *metricRegistry) GetRegistry() *prometheus.Registry {
	return r.registry
}

func NewRegistry() *metricRegistry {
	mr := &metricRegistry{
		registry: prometheus.NewRegistry(),
		counters: map[string]*prometheus.CounterVec{},
		gauges:   map[string]*prometheus.GaugeVec{},
	}
	definitions := []struct {
		name   string
		help   string
		labels []string
	}{
		{APIRequestsCounter, "Remote API calls by endpoint and outcome", []string{"endpoint", "outcome"}},
		{RelationshipMutationsCounter, "Relationship mutations by action and outcome", []string{"action", "outcome"}},
		{ReloadBumpsCounter, "Reload counter bumps by list kind", []string{"kind"}},
		{OpenViewsGauge, "Profile views currently held in memory", nil},
	}
	for _, definition := range definitions {
		err := mr.Register(definition.name, definition.help, definition.labels...)
		if err != nil {
			panic(err)
		}
	}
	return mr
}

// Outcome maps an error to the label used on outcome dimensions.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
