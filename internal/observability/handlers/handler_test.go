package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/logger/mocks"
	"github.com/estrys/fediprofile/internal/observability/handlers"
)

func TestObservabilityHandler(t *testing.T) {
	router := mux.NewRouter()
	router.NewRoute().Name("view").Path("/views/{id}").Methods(http.MethodGet)

	var transaction *sentry.Span
	handler := handlers.ObservabilityHandler(router, mocks.NewNullLogger(),
		func(writer http.ResponseWriter, request *http.Request) {
			transaction = sentry.TransactionFromContext(request.Context())
			writer.WriteHeader(http.StatusTeapot)
		},
	)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/views/abc", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	require.NotNil(t, transaction)
	assert.Equal(t, "view", transaction.Op)
	assert.Equal(t, map[string]any{"id": "abc"}, transaction.Data)
}

func TestObservabilityHandler_recovers(t *testing.T) {
	handler := handlers.ObservabilityHandler(mux.NewRouter(), mocks.NewNullLogger(),
		func(writer http.ResponseWriter, request *http.Request) {
			panic("boom")
		},
	)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
