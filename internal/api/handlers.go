package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/config"
	"github.com/estrys/fediprofile/internal/dic"
	"github.com/estrys/fediprofile/internal/domain"
	internalerrors "github.com/estrys/fediprofile/internal/errors"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
	"github.com/estrys/fediprofile/internal/router/routes"
	"github.com/estrys/fediprofile/internal/router/urlgenerator"
)

type createViewRequest struct {
	AccountID  string `json:"account_id"`
	Instance   string `json:"instance"`
	URL        string `json:"url"`
	Standalone bool   `json:"standalone"`
}

type relationshipRequest struct {
	Duration string `json:"duration"`
	Confirm  bool   `json:"confirm"`
}

type viewResponse struct {
	ID       string          `json:"id"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

func HandleCreateView(responseWriter http.ResponseWriter, request *http.Request) error {
	log := dic.GetService[logger.Logger]()
	conf := dic.GetService[config.Config]()
	factory := dic.GetService[*domain.ViewFactory]()
	registry := dic.GetService[ViewRegistry]()

	var body createViewRequest
	if err := decodeBody(request, &body); err != nil {
		return err
	}
	if body.AccountID == "" {
		return internalerrors.New("account id is not set", http.StatusBadRequest).
			WithUserMessage("account_id is required")
	}

	view := factory.NewView(body.Standalone || conf.Standalone, RequestConfirmer, nil)
	err := view.Open(request.Context(), domain.AccountRef{
		ID:       body.AccountID,
		Instance: strings.ToLower(body.Instance),
		URL:      body.URL,
	})
	if err != nil {
		// the view keeps the error state and the link to the remote profile
		log.WithError(err).WithField("account", body.AccountID).Warn("profile opened in error state")
	}

	id, err := registry.Add(view)
	if err != nil {
		view.Close()
		return internalerrors.Wrap(err, http.StatusInternalServerError).
			WithUserMessage("unable to register view")
	}
	viewURL, err := dic.GetService[urlgenerator.URLGenerator]().URL(routes.ViewRoute, urlgenerator.RouteParams{"id", id})
	if err != nil {
		return internalerrors.Wrap(err, http.StatusInternalServerError).
			WithUserMessage("unable to generate view URL")
	}
	responseWriter.Header().Add("Location", viewURL.String())
	return writeJSON(responseWriter, http.StatusCreated, viewResponse{ID: id, Snapshot: view.Snapshot()})
}

func HandleGetView(responseWriter http.ResponseWriter, request *http.Request) error {
	id, view, err := lookupView(request)
	if err != nil {
		return err
	}
	return writeJSON(responseWriter, http.StatusOK, viewResponse{ID: id, Snapshot: view.Snapshot()})
}

func HandleDeleteView(responseWriter http.ResponseWriter, request *http.Request) error {
	registry := dic.GetService[ViewRegistry]()
	if !registry.Remove(mux.Vars(request)["id"]) {
		return errViewNotFound
	}
	responseWriter.WriteHeader(http.StatusNoContent)
	return nil
}

func HandleReloadView(responseWriter http.ResponseWriter, request *http.Request) error {
	id, view, err := lookupView(request)
	if err != nil {
		return err
	}
	if err := view.Reload(request.Context()); err != nil {
		return domainError(err)
	}
	return writeJSON(responseWriter, http.StatusOK, viewResponse{ID: id, Snapshot: view.Snapshot()})
}

func HandleFollowers(responseWriter http.ResponseWriter, request *http.Request) error {
	return handlePage(responseWriter, request, true)
}

func HandleFollowing(responseWriter http.ResponseWriter, request *http.Request) error {
	return handlePage(responseWriter, request, false)
}

func handlePage(responseWriter http.ResponseWriter, request *http.Request, followers bool) error {
	_, view, err := lookupView(request)
	if err != nil {
		return err
	}

	firstLoad := false
	if first := request.URL.Query().Get("first"); first != "" {
		firstLoad, err = strconv.ParseBool(first)
		if err != nil {
			return internalerrors.Wrap(err, http.StatusBadRequest).
				WithUserMessage("first must be a boolean")
		}
	}

	paginator, err := view.Following()
	if followers {
		paginator, err = view.Followers()
	}
	if err != nil {
		return domainError(err)
	}
	page, err := paginator.Next(request.Context(), firstLoad)
	if err != nil {
		return domainError(err)
	}
	return writeJSON(responseWriter, http.StatusOK, page)
}

func HandleRelationship(responseWriter http.ResponseWriter, request *http.Request) error {
	id, view, err := lookupView(request)
	if err != nil {
		return err
	}

	action, err := domain.ParseAction(mux.Vars(request)["action"])
	if err != nil {
		return domainError(err)
	}
	var body relationshipRequest
	if err := decodeBody(request, &body); err != nil {
		return err
	}

	var duration mastodon.MuteDuration
	if action == domain.ActionMute {
		if body.Duration == "" {
			return internalerrors.New("mute duration is not set", http.StatusBadRequest).
				WithUserMessage("duration is required")
		}
		duration, err = mastodon.ParseMuteDuration(body.Duration)
		if err != nil {
			return domainError(err)
		}
	}

	err = view.Apply(withConfirmation(request.Context(), body.Confirm), action, duration)
	if err != nil {
		return domainError(err)
	}
	return writeJSON(responseWriter, http.StatusOK, viewResponse{ID: id, Snapshot: view.Snapshot()})
}

func HandleLists(responseWriter http.ResponseWriter, request *http.Request) error {
	_, view, err := lookupView(request)
	if err != nil {
		return err
	}
	lists, err := view.Lists(request.Context())
	if err != nil {
		return domainError(err)
	}
	return writeJSON(responseWriter, http.StatusOK, lists.Snapshot())
}

func HandleToggleList(responseWriter http.ResponseWriter, request *http.Request) error {
	_, view, err := lookupView(request)
	if err != nil {
		return err
	}
	lists, err := view.Lists(request.Context())
	if err != nil {
		return domainError(err)
	}
	if err := lists.Toggle(request.Context(), mux.Vars(request)["list"]); err != nil {
		return domainError(err)
	}
	return writeJSON(responseWriter, http.StatusOK, lists.Snapshot())
}

//nolint:gochecknoglobals
var errViewNotFound = internalerrors.New("view not found", http.StatusNotFound).WithUserMessage("view not found")

func lookupView(request *http.Request) (string, *domain.ProfileView, error) {
	registry := dic.GetService[ViewRegistry]()
	id := mux.Vars(request)["id"]
	view, exist := registry.Get(id)
	if !exist {
		return "", nil, errViewNotFound
	}
	return id, view, nil
}

func domainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotConfirmed):
		return internalerrors.Wrap(err, http.StatusConflict).WithUserMessage("confirmation required")
	case errors.Is(err, domain.ErrNoRelationship),
		errors.Is(err, domain.ErrNotFollowing),
		errors.Is(err, domain.ErrNotLoaded),
		errors.Is(err, domain.ErrSuperseded):
		return internalerrors.Wrap(err, http.StatusConflict).WithUserMessage(errors.Cause(err).Error())
	case errors.Is(err, domain.ErrUnknownAction):
		return internalerrors.Wrap(err, http.StatusBadRequest).WithUserMessage("unknown action")
	case errors.Is(err, mastodon.ErrUnknownMuteDuration):
		return internalerrors.Wrap(err, http.StatusBadRequest).WithUserMessage("unknown mute duration")
	case errors.Is(err, mastodon.ErrInvalidID):
		return internalerrors.Wrap(err, http.StatusBadRequest).WithUserMessage("invalid identifier")
	}
	return internalerrors.Wrap(err, http.StatusBadGateway).WithUserMessage("remote instance error")
}

// decodeBody accepts an empty body and leaves target untouched in that case.
func decodeBody(request *http.Request, target any) error {
	if request.Body == nil {
		return nil
	}
	err := json.NewDecoder(request.Body).Decode(target)
	if err != nil && !errors.Is(err, io.EOF) {
		return internalerrors.Wrap(err, http.StatusBadRequest).WithUserMessage("invalid request body")
	}
	return nil
}

func writeJSON(responseWriter http.ResponseWriter, status int, body any) error {
	responseWriter.Header().Add("content-type", "application/json")
	responseWriter.WriteHeader(status)
	err := json.NewEncoder(responseWriter).Encode(body)
	if err != nil {
		return errors.Wrap(err, "unable to encode response")
	}
	return nil
}
