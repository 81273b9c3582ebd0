package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/estrys/fediprofile/internal/errors"
	"github.com/estrys/fediprofile/internal/router/routes"
)

func Router(rootRouter *mux.Router) {
	viewsRouter := rootRouter.PathPrefix("/views").Subrouter()
	viewsRouter.NewRoute().Name(routes.CreateViewRoute).
		Path("").
		Methods(http.MethodPost).
		HandlerFunc(errors.HTTPErrorHandler(HandleCreateView))
	viewsRouter.NewRoute().Name(routes.ViewRoute).
		Path("/{id}").
		Methods(http.MethodGet).
		HandlerFunc(errors.HTTPErrorHandler(HandleGetView))
	viewsRouter.NewRoute().Name(routes.DeleteViewRoute).
		Path("/{id}").
		Methods(http.MethodDelete).
		HandlerFunc(errors.HTTPErrorHandler(HandleDeleteView))
	viewsRouter.NewRoute().Name(routes.ReloadViewRoute).
		Path("/{id}/reload").
		Methods(http.MethodPost).
		HandlerFunc(errors.HTTPErrorHandler(HandleReloadView))
	viewsRouter.NewRoute().Name(routes.ViewFollowersRoute).
		Path("/{id}/followers").
		Methods(http.MethodGet).
		HandlerFunc(errors.HTTPErrorHandler(HandleFollowers))
	viewsRouter.NewRoute().Name(routes.ViewFollowingRoute).
		Path("/{id}/following").
		Methods(http.MethodGet).
		HandlerFunc(errors.HTTPErrorHandler(HandleFollowing))
	viewsRouter.NewRoute().Name(routes.ViewRelationshipRoute).
		Path("/{id}/relationship/{action}").
		Methods(http.MethodPost).
		HandlerFunc(errors.HTTPErrorHandler(HandleRelationship))
	viewsRouter.NewRoute().Name(routes.ViewListsRoute).
		Path("/{id}/lists").
		Methods(http.MethodGet).
		HandlerFunc(errors.HTTPErrorHandler(HandleLists))
	viewsRouter.NewRoute().Name(routes.ViewToggleListRoute).
		Path("/{id}/lists/{list}/toggle").
		Methods(http.MethodPost).
		HandlerFunc(errors.HTTPErrorHandler(HandleToggleList))
}
