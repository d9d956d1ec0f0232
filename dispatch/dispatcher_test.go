package dispatch_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
	ocerrors "github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/errors"
)

// staticTokens is a TokenSource with a fixed bearer token.
type staticTokens struct{}

func (staticTokens) AuthHeaders(context.Context) (map[string]string, error) {
	return map[string]string{
		"Authorization": "Bearer static-token",
		"Content-Type":  "application/json",
	}, nil
}

// recordedRequest captures what the fake API saw on one attempt.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeAPI replays a scripted sequence of responses and records every
// request. Once the script runs out the last response repeats.
type fakeAPI struct {
	lock      sync.Mutex
	requests  []recordedRequest
	responses []scriptedResponse
}

type scriptedResponse struct {
	status int
	body   string
}

func (f *fakeAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.lock.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		idx := len(f.requests) - 1
		if idx >= len(f.responses) {
			idx = len(f.responses) - 1
		}
		resp := f.responses[idx]
		f.lock.Unlock()

		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}
}

func (f *fakeAPI) attempts() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) request(i int) recordedRequest {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.requests[i]
}

type testFixture struct {
	api        *fakeAPI
	server     *httptest.Server
	dispatcher *dispatch.Dispatcher
	delays     *[]time.Duration
}

func setupTestFixture(t *testing.T, responses []scriptedResponse, options ...dispatch.DispatcherOption) *testFixture {
	t.Helper()

	api := &fakeAPI{responses: responses}
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	delays := &[]time.Duration{}
	opts := append([]dispatch.DispatcherOption{
		dispatch.WithHTTPClient(server.Client()),
		dispatch.WithSleep(func(_ context.Context, d time.Duration) error {
			*delays = append(*delays, d)
			return nil
		}),
	}, options...)

	dispatcher, err := dispatch.NewDispatcher(server.URL, staticTokens{}, opts...)
	require.NoError(t, err)

	return &testFixture{api: api, server: server, dispatcher: dispatcher, delays: delays}
}

func TestExecuteSuccessDecodesBody(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{
		{status: http.StatusOK, body: `{"ID":"PROD-1","Name":"Widget"}`},
	})

	var out struct {
		ID   string
		Name string
	}
	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products/PROD-1",
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "PROD-1", out.ID)
	require.Equal(t, "Widget", out.Name)
	require.Equal(t, 1, f.api.attempts())
}

func TestExecuteEmptyBodyLeavesOutUntouched(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{
		{status: http.StatusNoContent},
	})

	out := map[string]any{"sentinel": true}
	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodDelete,
		Path:   "/v1/products/PROD-1",
	}, &out)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"sentinel": true}, out)
}

func TestExecuteRetriesServerErrorsUpToBudget(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{
		{status: http.StatusInternalServerError, body: `{"Message":"boom"}`},
	})

	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products",
	}, nil)

	var serverErr *ocerrors.ServerError
	require.ErrorAs(t, err, &serverErr)
	require.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	require.Equal(t, 4, f.api.attempts(), "maxRetries=3 means 4 total attempts")
	require.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, *f.delays)
}

func TestExecuteRecoversMidRetry(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{
		{status: http.StatusServiceUnavailable},
		{status: http.StatusOK, body: `{"ID":"ok"}`},
	})

	var out struct{ ID string }
	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products/ok",
	}, &out)
	require.NoError(t, err)
	require.Equal(t, "ok", out.ID)
	require.Equal(t, 2, f.api.attempts())
	require.Equal(t, []time.Duration{1 * time.Second}, *f.delays)
}

func TestExecuteDoesNotRetryClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "400 bad request",
			status: http.StatusBadRequest,
			check: func(t *testing.T, err error) {
				var clientErr *ocerrors.ClientError
				require.ErrorAs(t, err, &clientErr)
				require.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
			},
		},
		{
			name:   "401 unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var authErr *ocerrors.AuthenticationError
				require.ErrorAs(t, err, &authErr)
				require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
			},
		},
		{
			name:   "403 forbidden",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				var authErr *ocerrors.AuthenticationError
				require.ErrorAs(t, err, &authErr)
				require.Equal(t, http.StatusForbidden, authErr.StatusCode)
			},
		},
		{
			name:   "404 not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var clientErr *ocerrors.ClientError
				require.ErrorAs(t, err, &clientErr)
				require.Equal(t, http.StatusNotFound, clientErr.StatusCode)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t, []scriptedResponse{{status: tc.status}})

			err := f.dispatcher.Execute(context.Background(), dispatch.Request{
				Method: http.MethodGet,
				Path:   "/v1/products/missing",
			}, nil)
			tc.check(t, err)
			require.Equal(t, 1, f.api.attempts(), "client failures must not retry")
			require.Empty(t, *f.delays)
		})
	}
}

func TestExecuteRetriesTransportFailures(t *testing.T) {
	api := &fakeAPI{responses: []scriptedResponse{{status: http.StatusOK}}}
	server := httptest.NewServer(api.handler())
	server.Close() // connection refused

	var delays []time.Duration
	dispatcher, err := dispatch.NewDispatcher(server.URL, staticTokens{},
		dispatch.WithMaxRetries(2),
		dispatch.WithSleep(func(_ context.Context, d time.Duration) error {
			delays = append(delays, d)
			return nil
		}),
	)
	require.NoError(t, err)

	err = dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products",
	}, nil)

	var transportErr *ocerrors.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Len(t, delays, 2)
}

func TestExecuteErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "Errors array formatted and joined",
			body:    `{"Errors":[{"ErrorCode":"InvalidField","Message":"Name required"},{"ErrorCode":"NotFound.Product","Message":"no such product"}]}`,
			message: "InvalidField: Name required, NotFound.Product: no such product",
		},
		{
			name:    "Message fallback",
			body:    `{"Message":"something specific"}`,
			message: "something specific",
		},
		{
			name:    "raw body fallback",
			body:    "plain text failure",
			message: "plain text failure",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t, []scriptedResponse{
				{status: http.StatusBadRequest, body: tc.body},
			})

			err := f.dispatcher.Execute(context.Background(), dispatch.Request{
				Method: http.MethodPost,
				Path:   "/v1/products",
				Body:   map[string]string{"Name": ""},
			}, nil)

			var clientErr *ocerrors.ClientError
			require.ErrorAs(t, err, &clientErr)
			require.Equal(t, tc.message, clientErr.Message)
		})
	}
}

func TestExecuteEmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{
		{status: http.StatusBadRequest},
	})

	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products",
	}, nil)

	var clientErr *ocerrors.ClientError
	require.ErrorAs(t, err, &clientErr)
	require.Contains(t, clientErr.Message, "400")
}

func TestExecuteHeaderPrecedence(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{{status: http.StatusOK}})

	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products",
		Headers: map[string]string{
			"Content-Type":    "application/json; charset=utf-8",
			"X-Custom-Header": "custom",
		},
	}, nil)
	require.NoError(t, err)

	got := f.api.request(0).Header
	require.Equal(t, "Bearer static-token", got.Get("Authorization"), "token source header injected")
	require.Equal(t, "application/json; charset=utf-8", got.Get("Content-Type"), "caller header wins")
	require.Equal(t, "custom", got.Get("X-Custom-Header"))
}

func TestExecuteSendsQueryAndBody(t *testing.T) {
	f := setupTestFixture(t, []scriptedResponse{{status: http.StatusCreated, body: `{}`}})

	query := url.Values{}
	query.Set("search", "widget")
	err := f.dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodPost,
		Path:   "/v1/products",
		Query:  query,
		Body:   map[string]any{"Name": "Widget", "Active": true},
	}, nil)
	require.NoError(t, err)

	got := f.api.request(0)
	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "/v1/products", got.Path)
	require.Equal(t, "widget", got.Query.Get("search"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.Body, &body))
	require.Equal(t, "Widget", body["Name"])
	require.Equal(t, true, body["Active"])
}

func TestExecuteTokenSourceFailureSurfacesDirectly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	dispatcher, err := dispatch.NewDispatcher(server.URL, failingTokens{},
		dispatch.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
	require.NoError(t, err)

	err = dispatcher.Execute(context.Background(), dispatch.Request{
		Method: http.MethodGet,
		Path:   "/v1/products",
	}, nil)

	var configErr *ocerrors.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

type failingTokens struct{}

func (failingTokens) AuthHeaders(context.Context) (map[string]string, error) {
	return nil, &ocerrors.ConfigurationError{Message: "credentials not set"}
}
