package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/router/routes"
)

// Router exposes the meter registry in the prometheus text format on /metrics.
func Router(rootRouter *mux.Router) {
	registry := dic.GetService[metrics.Meter]().GetRegistry()
	log := dic.GetService[logger.Logger]()
	handler := promhttp.InstrumentMetricHandler(registry, promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog:          log,
		EnableOpenMetrics: true,
	}))
	rootRouter.NewRoute().Name(routes.MetricsRoute).
		Path("/metrics").
		Methods(http.MethodGet).
		Handler(handler)
}
