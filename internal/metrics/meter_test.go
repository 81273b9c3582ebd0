package metrics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricRegistry(t *testing.T) {
	registry := NewRegistry()

	registry.Inc(APIRequestsCounter, "get_account", Outcome(nil))
	registry.Inc(APIRequestsCounter, "get_account", Outcome(nil))
	registry.Inc(APIRequestsCounter, "get_account", Outcome(errors.New("boom")))
	registry.Set(OpenViewsGauge, 3)

	require.Equal(t, float64(2), testutil.ToFloat64(
		registry.counters[APIRequestsCounter].WithLabelValues("get_account", "success"),
	))
	require.Equal(t, float64(1), testutil.ToFloat64(
		registry.counters[APIRequestsCounter].WithLabelValues("get_account", "error"),
	))
	require.Equal(t, float64(3), testutil.ToFloat64(registry.gauges[OpenViewsGauge].WithLabelValues()))

	// unknown metrics are ignored
	registry.Inc("unknown_counter")
}

func TestMetricRegistry_RegisterUnknownKind(t *testing.T) {
	registry := NewRegistry()
	require.EqualError(t,
		registry.Register("foo_histogram", "foo"),
		"cannot register metrics, unknown type for given name: foo_histogram",
	)
}
