package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPTransportInitialize(t *testing.T) {
	f := setupTestFixture(t)
	handler := httptest.NewServer(f.server.HTTPHandler())
	t.Cleanup(handler.Close)

	resp, err := http.Post(handler.URL+"/mcp", "application/json", strings.NewReader(initializeLine))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestHTTPTransportNotificationAccepted(t *testing.T) {
	f := setupTestFixture(t)
	handler := httptest.NewServer(f.server.HTTPHandler())
	t.Cleanup(handler.Close)

	resp, err := http.Post(handler.URL+"/mcp", "application/json",
		strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	f := setupTestFixture(t)
	handler := httptest.NewServer(f.server.HTTPHandler())
	t.Cleanup(handler.Close)

	resp, err := http.Get(handler.URL + "/livez")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// No token cached yet: not ready.
	resp, err = http.Get(handler.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCorsRejectsUnlistedOrigin(t *testing.T) {
	f := setupTestFixture(t)
	handler := httptest.NewServer(f.server.HTTPHandler())
	t.Cleanup(handler.Close)

	req, err := http.NewRequest(http.MethodPost, handler.URL+"/mcp", strings.NewReader(initializeLine))
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
