package resources_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/auth"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/resources"
)

// TestFacadesShareOneToken wires two facades onto one real dispatcher
// and authority backed by a fake platform: the token obtained during
// the first facade's call must be reused, not re-exchanged, by the
// second facade's call.
func TestFacadesShareOneToken(t *testing.T) {
	var (
		lock           sync.Mutex
		tokenExchanges int
		bearers        []string
	)

	platform := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			lock.Lock()
			tokenExchanges++
			lock.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "shared-token",
				"token_type":   "bearer",
				"expires_in":   36000,
			})
			return
		}

		lock.Lock()
		bearers = append(bearers, r.Header.Get("Authorization"))
		lock.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(platform.Close)

	authority, err := auth.NewAuthority(platform.URL, auth.WithHTTPClient(platform.Client()))
	require.NoError(t, err)
	authority.SetCredentials(auth.Credentials{
		Username: "buyer01",
		Password: "password123",
		ClientID: "client-1",
	})

	dispatcher, err := dispatch.NewDispatcher(platform.URL, authority,
		dispatch.WithHTTPClient(platform.Client()),
		dispatch.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
	require.NoError(t, err)

	bundle := resources.New(dispatcher)
	ctx := context.Background()

	_, err = bundle.Products.Get(ctx, "PROD-1")
	require.NoError(t, err)
	_, err = bundle.Buyers.Get(ctx, "BUYER-1")
	require.NoError(t, err)

	lock.Lock()
	defer lock.Unlock()
	require.Equal(t, 1, tokenExchanges, "second facade must reuse the cached token")
	require.Equal(t, []string{"Bearer shared-token", "Bearer shared-token"}, bearers)
}
