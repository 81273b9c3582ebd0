package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estrys/fediprofile/internal/api"
	metricsrouter "github.com/estrys/fediprofile/internal/metrics/router"
)

func GetRouter() *mux.Router {
	r := mux.NewRouter()
	api.Router(r)
	metricsrouter.Router(r)
	r.Path("/").HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		responseWriter.Header().Add("Location", "https://github.com/estrys/fediprofile")
		responseWriter.WriteHeader(http.StatusFound)
	})
	return r
}
