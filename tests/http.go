//nolint:forcetypeassert
package tests

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/estrys/fediprofile/internal/dic"
	internalerrors "github.com/estrys/fediprofile/internal/errors"
	dic_test "github.com/estrys/fediprofile/tests/dic"
)

type RequestOption interface {
	Value() any
}

type requestParams map[string]string
type RequestParams struct {
	Params requestParams
}

func (r RequestParams) Value() any {
	return r.Params
}

type RequestQuery struct {
	Query url.Values
}

func (r RequestQuery) Value() any {
	return r.Query
}

type RequestBody struct {
	Body string
}

func (r RequestBody) Value() any {
	return r.Body
}

type RequestBodyFromFile struct {
	FilePath string
}

func (r RequestBodyFromFile) Value() any {
	return r.FilePath
}

type RequestContext struct {
	Context context.Context //nolint:containedctx
}

func (r RequestContext) Value() any {
	return r.Context
}

type HTTPTestCase struct {
	Name           string
	GoldenFile     string
	StatusCode     int
	RequestOptions []RequestOption
	Mock           func(t *testing.T)
	// Assert runs extra checks on the response body.
	Assert func(t *testing.T, body []byte)
}

type HTTPTestSuite struct{}

func (s *HTTPTestSuite) RunHTTPCases(t *testing.T, handler internalerrors.ErrorAwareHTTPHandler, cases []HTTPTestCase) {
	t.Helper()
	for _, testCase := range cases {
		t.Run(testCase.Name, func(t *testing.T) {
			if testCase.Mock != nil {
				testCase.Mock(t)
			}
			response, body := s.DoRequest(t, handler, testCase.RequestOptions...)
			defer response.Body.Close()
			require.Equal(t, testCase.StatusCode, response.StatusCode, string(body))
			if testCase.GoldenFile != "" {
				if !strings.HasSuffix(testCase.GoldenFile, ".json") {
					t.Errorf("unable to match a response format for goldenfile: %s", testCase.GoldenFile)
					return
				}
				AssertJSONResponse(t, strings.TrimSuffix(testCase.GoldenFile, ".json"), string(body))
			}
			if testCase.Assert != nil {
				testCase.Assert(t, body)
			}
		})
	}
}

func (s *HTTPTestSuite) DoRequest(
	t *testing.T,
	handler internalerrors.ErrorAwareHTTPHandler,
	opts ...RequestOption,
) (*http.Response, []byte) {
	t.Helper()
	dic_test.BuildTestContainer(t)
	defer dic.ResetContainer()

	request := createFakeRequest(opts)

	responseRecorder := httptest.NewRecorder()
	internalerrors.HTTPErrorHandler(handler)(responseRecorder, request)
	response := responseRecorder.Result()
	body, err := io.ReadAll(response.Body)

	require.NoError(t, err)

	return response, body
}

func createFakeRequest(opts []RequestOption) *http.Request {
	var params requestParams
	var body io.Reader
	var ctx context.Context
	target := "/"
	for _, opt := range opts {
		switch option := opt.(type) {
		case RequestParams:
			params = option.Value().(requestParams)
		case RequestQuery:
			target = "/?" + option.Value().(url.Values).Encode()
		case RequestBodyFromFile:
			fileContent, err := os.ReadFile(GetGoldenFilePath(option.Value().(string)))
			if err != nil {
				panic(errors.Wrap(err, "unable to open http test file input"))
			}
			body = bytes.NewReader(fileContent)
		case RequestBody:
			body = strings.NewReader(option.Value().(string))
		case RequestContext:
			ctx = option.Value().(context.Context)
		}
	}
	req := httptest.NewRequest(http.MethodGet, target, body)
	if ctx != nil {
		req = req.WithContext(ctx)
	}
	if params != nil {
		req = mux.SetURLVars(req, params)
	}
	return req
}
