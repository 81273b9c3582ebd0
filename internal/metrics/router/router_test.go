package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/logger/mocks"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/metrics/router"
)

func TestRouter(t *testing.T) {
	defer dic.ResetContainer()
	meter := metrics.NewRegistry()
	require.NoError(t, dic.Register[metrics.Meter](meter))
	require.NoError(t, dic.Register[logger.Logger](mocks.NewNullLogger()))
	meter.Set(metrics.OpenViewsGauge, 3)

	r := mux.NewRouter()
	router.Router(r)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "fediprofile_open_views 3")
	assert.Contains(t, recorder.Body.String(), "promhttp_metric_handler_requests_total")
}
