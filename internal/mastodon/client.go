package mastodon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	_http "github.com/estrys/fediprofile/internal/http"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/metrics"
	"github.com/estrys/fediprofile/internal/observability"
)

const maxErrorBodySize = 4096

var ErrInvalidID = errors.New("invalid identifier")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("mastodon api error %d", e.StatusCode)
	}
	return fmt.Sprintf("mastodon api error %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Authorizer struct {
	Token string
}

func (a Authorizer) Add(req *http.Request) {
	if a.Token == "" {
		return
	}
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", a.Token))
}

type SearchAccountsParams struct {
	Query   string
	Resolve bool
	Limit   int
}

//go:generate mockery --name=Client
type Client interface {
	Instance() string
	Authenticated() bool

	VerifyCredentials(ctx context.Context) (*Account, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
	SearchAccounts(ctx context.Context, params SearchAccountsParams) ([]Account, error)
	ListFollowers(ctx context.Context, id string, cursor Cursor) (*AccountPage, error)
	ListFollowing(ctx context.Context, id string, cursor Cursor) (*AccountPage, error)
	FetchFamiliarFollowers(ctx context.Context, ids ...string) ([]FamiliarFollowers, error)
	FetchRelationships(ctx context.Context, ids []string) ([]Relationship, error)
	ListStatuses(ctx context.Context, id string, limit int) ([]Status, error)

	Follow(ctx context.Context, id string) (*Relationship, error)
	Unfollow(ctx context.Context, id string) (*Relationship, error)
	Mute(ctx context.Context, id string, duration MuteDuration) (*Relationship, error)
	Unmute(ctx context.Context, id string) (*Relationship, error)
	Block(ctx context.Context, id string) (*Relationship, error)
	Unblock(ctx context.Context, id string) (*Relationship, error)

	ListLists(ctx context.Context) ([]List, error)
	ListAccountLists(ctx context.Context, id string) ([]List, error)
	AddAccountToList(ctx context.Context, listID string, accountIDs ...string) error
	RemoveAccountFromList(ctx context.Context, listID string, accountIDs ...string) error
}

type restClient struct {
	baseURL    *url.URL
	authorizer Authorizer
	client     _http.Client
	log        logger.Logger
	meter      metrics.Meter
}

func NewClient(
	baseURL *url.URL,
	authorizer Authorizer,
	client _http.Client,
	log logger.Logger,
	meter metrics.Meter,
) *restClient {
	return &restClient{
		baseURL:    baseURL,
		authorizer: authorizer,
		client:     client,
		log:        log,
		meter:      meter,
	}
}

func (c *restClient) Instance() string {
	return strings.ToLower(c.baseURL.Host)
}

func (c *restClient) Authenticated() bool {
	return c.authorizer.Token != ""
}

type request struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
}

func (c *restClient) do(ctx context.Context, req request, out any) (http.Header, error) {
	span := observability.StartSpan(ctx, "http.client", map[string]any{
		"endpoint": req.endpoint,
		"instance": c.Instance(),
	})
	header, err := c.send(ctx, req, out)
	observability.FinishSpanWithError(span, err)
	if c.meter != nil {
		c.meter.Inc(metrics.APIRequestsCounter, req.endpoint, metrics.Outcome(err))
	}
	return header, err
}

func (c *restClient) send(ctx context.Context, req request, out any) (http.Header, error) {
	ref, err := url.Parse(req.path)
	if err != nil || hasDotSegment(ref.EscapedPath()) {
		return nil, errors.Wrapf(ErrInvalidID, "%s request path", req.endpoint)
	}
	target := c.baseURL.ResolveReference(ref)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to encode %s request body", req.endpoint)
		}
		body = bytes.NewReader(encoded)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create %s request", req.endpoint)
	}
	httpRequest.Header.Set("accept", "application/json")
	if body != nil {
		httpRequest.Header.Set("content-type", "application/json")
	}
	c.authorizer.Add(httpRequest)

	response, err := c.client.Do(httpRequest)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to perform %s request", req.endpoint)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return response.Header, c.decodeAPIError(req.endpoint, response)
	}

	if out == nil {
		return response.Header, nil
	}
	err = json.NewDecoder(response.Body).Decode(out)
	if err != nil {
		return response.Header, errors.Wrapf(err, "unable to decode %s response", req.endpoint)
	}
	return response.Header, nil
}

func (c *restClient) decodeAPIError(endpoint string, response *http.Response) error {
	apiErr := &APIError{StatusCode: response.StatusCode}
	content, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
	c.log.WithField("endpoint", endpoint).
		WithField("response", string(content)).
		Trace("remote api returned an error")
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(content, &payload) == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}

type validator interface {
	Validate() error
}

func validateAll[T any, PT interface {
	*T
	validator
}](items []T) error {
	for i := range items {
		if err := PT(&items[i]).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// accountPath escapes id so it always stays a single path segment.
func accountPath(id string, suffix ...string) string {
	return "/api/v1/accounts/" + url.PathEscape(id) + strings.Join(suffix, "")
}

func listAccountsPath(listID string) string {
	return "/api/v1/lists/" + url.PathEscape(listID) + "/accounts"
}

func hasDotSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if segment == "." || segment == ".." {
			return true
		}
	}
	return false
}

func idsQuery(key string, ids []string) url.Values {
	values := url.Values{}
	for _, id := range ids {
		values.Add(key+"[]", id)
	}
	return values
}

func (c *restClient) VerifyCredentials(ctx context.Context) (*Account, error) {
	var account Account
	_, err := c.do(ctx, request{
		endpoint: "verify_credentials",
		method:   http.MethodGet,
		path:     "/api/v1/accounts/verify_credentials",
	}, &account)
	if err != nil {
		return nil, err
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *restClient) GetAccount(ctx context.Context, id string) (*Account, error) {
	var account Account
	_, err := c.do(ctx, request{
		endpoint: "get_account",
		method:   http.MethodGet,
		path:     accountPath(id),
	}, &account)
	if err != nil {
		return nil, err
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *restClient) SearchAccounts(ctx context.Context, params SearchAccountsParams) ([]Account, error) {
	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("type", "accounts")
	query.Set("resolve", strconv.FormatBool(params.Resolve))
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	var results SearchResults
	_, err := c.do(ctx, request{
		endpoint: "search_accounts",
		method:   http.MethodGet,
		path:     "/api/v2/search",
		query:    query,
	}, &results)
	if err != nil {
		return nil, err
	}
	if err := results.Validate(); err != nil {
		return nil, err
	}
	return results.Accounts, nil
}

func (c *restClient) listAccounts(ctx context.Context, endpoint, path string, cursor Cursor) (*AccountPage, error) {
	var accounts []Account
	header, err := c.do(ctx, request{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     path,
		query:    cursor.query(),
	}, &accounts)
	if err != nil {
		return nil, err
	}
	if err := validateAll(accounts); err != nil {
		return nil, err
	}
	return &AccountPage{
		Accounts: accounts,
		Next:     nextCursor(header, cursor.Limit),
	}, nil
}

func (c *restClient) ListFollowers(ctx context.Context, id string, cursor Cursor) (*AccountPage, error) {
	return c.listAccounts(ctx, "list_followers", accountPath(id, "/followers"), cursor)
}

func (c *restClient) ListFollowing(ctx context.Context, id string, cursor Cursor) (*AccountPage, error) {
	return c.listAccounts(ctx, "list_following", accountPath(id, "/following"), cursor)
}

func (c *restClient) FetchFamiliarFollowers(ctx context.Context, ids ...string) ([]FamiliarFollowers, error) {
	var familiarFollowers []FamiliarFollowers
	_, err := c.do(ctx, request{
		endpoint: "familiar_followers",
		method:   http.MethodGet,
		path:     "/api/v1/accounts/familiar_followers",
		query:    idsQuery("id", ids),
	}, &familiarFollowers)
	if err != nil {
		return nil, err
	}
	if err := validateAll(familiarFollowers); err != nil {
		return nil, err
	}
	return familiarFollowers, nil
}

func (c *restClient) FetchRelationships(ctx context.Context, ids []string) ([]Relationship, error) {
	var relationships []Relationship
	_, err := c.do(ctx, request{
		endpoint: "relationships",
		method:   http.MethodGet,
		path:     "/api/v1/accounts/relationships",
		query:    idsQuery("id", ids),
	}, &relationships)
	if err != nil {
		return nil, err
	}
	if err := validateAll(relationships); err != nil {
		return nil, err
	}
	return relationships, nil
}

func (c *restClient) ListStatuses(ctx context.Context, id string, limit int) ([]Status, error) {
	var statuses []Status
	_, err := c.do(ctx, request{
		endpoint: "list_statuses",
		method:   http.MethodGet,
		path:     accountPath(id, "/statuses"),
		query:    Cursor{Limit: limit}.query(),
	}, &statuses)
	if err != nil {
		return nil, err
	}
	if err := validateAll(statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *restClient) relationshipAction(ctx context.Context, id, action string, body any) (*Relationship, error) {
	var relationship Relationship
	_, err := c.do(ctx, request{
		endpoint: action,
		method:   http.MethodPost,
		path:     accountPath(id, "/", action),
		body:     body,
	}, &relationship)
	if err != nil {
		return nil, err
	}
	if err := relationship.Validate(); err != nil {
		return nil, err
	}
	return &relationship, nil
}

func (c *restClient) Follow(ctx context.Context, id string) (*Relationship, error) {
	return c.relationshipAction(ctx, id, "follow", nil)
}

func (c *restClient) Unfollow(ctx context.Context, id string) (*Relationship, error) {
	return c.relationshipAction(ctx, id, "unfollow", nil)
}

type muteRequest struct {
	Duration int64 `json:"duration"`
}

func (c *restClient) Mute(ctx context.Context, id string, duration MuteDuration) (*Relationship, error) {
	if !duration.Valid() {
		return nil, errors.Wrapf(ErrUnknownMuteDuration, "%s", time.Duration(duration))
	}
	return c.relationshipAction(ctx, id, "mute", muteRequest{Duration: duration.Milliseconds()})
}

func (c *restClient) Unmute(ctx context.Context, id string) (*Relationship, error) {
	return c.relationshipAction(ctx, id, "unmute", nil)
}

func (c *restClient) Block(ctx context.Context, id string) (*Relationship, error) {
	return c.relationshipAction(ctx, id, "block", nil)
}

func (c *restClient) Unblock(ctx context.Context, id string) (*Relationship, error) {
	return c.relationshipAction(ctx, id, "unblock", nil)
}

func (c *restClient) ListLists(ctx context.Context) ([]List, error) {
	var lists []List
	_, err := c.do(ctx, request{
		endpoint: "list_lists",
		method:   http.MethodGet,
		path:     "/api/v1/lists",
	}, &lists)
	if err != nil {
		return nil, err
	}
	if err := validateAll(lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *restClient) ListAccountLists(ctx context.Context, id string) ([]List, error) {
	var lists []List
	_, err := c.do(ctx, request{
		endpoint: "account_lists",
		method:   http.MethodGet,
		path:     accountPath(id, "/lists"),
	}, &lists)
	if err != nil {
		return nil, err
	}
	if err := validateAll(lists); err != nil {
		return nil, err
	}
	return lists, nil
}

type listAccountsRequest struct {
	AccountIDs []string `json:"account_ids"`
}

func (c *restClient) AddAccountToList(ctx context.Context, listID string, accountIDs ...string) error {
	_, err := c.do(ctx, request{
		endpoint: "add_to_list",
		method:   http.MethodPost,
		path:     listAccountsPath(listID),
		body:     listAccountsRequest{AccountIDs: accountIDs},
	}, nil)
	return err
}

func (c *restClient) RemoveAccountFromList(ctx context.Context, listID string, accountIDs ...string) error {
	_, err := c.do(ctx, request{
		endpoint: "remove_from_list",
		method:   http.MethodDelete,
		path:     listAccountsPath(listID),
		query:    idsQuery("account_ids", accountIDs),
	}, nil)
	return err
}
