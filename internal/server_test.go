package internal

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/estrys/fediprofile/internal/dic"
	internalerrors "github.com/estrys/fediprofile/internal/errors"
	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/logger/mocks"
)

const httpTestServerListenAddr = "localhost:11337"

type HTTPServerTestSuite struct {
	suite.Suite
}

func TestHTTPServerTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPServerTestSuite))
}

func (suite *HTTPServerTestSuite) SetupTest() {
	dic.ResetContainer()
}

func (suite *HTTPServerTestSuite) serve(handler internalerrors.ErrorAwareHTTPHandler) *http.Response {
	t := suite.T()
	_ = dic.Register[logger.Logger](mocks.NewNullLogger())
	r := mux.NewRouter()
	r.Path("/").HandlerFunc(internalerrors.HTTPErrorHandler(handler))
	_ = dic.Register[*mux.Router](r)

	ctx, cancelFunc := context.WithCancel(context.TODO())
	testURL, _ := url.JoinPath("http://", httpTestServerListenAddr)
	httpClient := http.Client{}

	var wg sync.WaitGroup
	var serverErr error
	wg.Add(1)
	go func() {
		serverErr = StartServer(ctx, Config{Address: httpTestServerListenAddr})
		wg.Done()
	}()
	t.Cleanup(func() {
		cancelFunc()
		wg.Wait()
		require.NoError(t, serverErr)
	})

	var resp *http.Response
	require.Eventually(t, func() bool {
		req, _ := http.NewRequest(http.MethodGet, testURL, nil)
		var err error
		resp, err = httpClient.Do(req) //nolint:bodyclose
		return err == nil
	}, 3*time.Second, 50*time.Millisecond)
	return resp
}

func (suite *HTTPServerTestSuite) TestErrorHandler() {
	t := suite.T()
	resp := suite.serve(func(w http.ResponseWriter, req *http.Request) error {
		return internalerrors.New("", http.StatusNotFound).WithUserMessage("test not found")
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("content-type"))
	bodyContent, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, `{"error":"test not found"}`, string(bodyContent))
}

func (suite *HTTPServerTestSuite) TestPanic() {
	t := suite.T()
	resp := suite.serve(func(w http.ResponseWriter, req *http.Request) error {
		panic("test")
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	bodyContent, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, ``, string(bodyContent))
}
