// Package auth owns the OrderCloud session: the credentials, the cached
// bearer token, and the password-grant exchange that produces it. One
// Authority is shared by every resource facade built on the same
// dispatcher, so a refresh performed during any call is visible to all.
package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	ocerrors "github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/errors"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/oauth2"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/oauthmodel"
)

const (
	// TokenEndpointPath is appended to the base URL to reach the
	// OrderCloud token endpoint.
	TokenEndpointPath = "/oauth/token"

	// DefaultSafetyMargin is subtracted from expires_in when computing
	// the cached token's expiry instant.
	DefaultSafetyMargin = 5 * time.Minute
)

// Credentials identify an OrderCloud user and API client for the
// password grant. Immutable once supplied for a given session.
type Credentials struct {
	Username string
	Password string
	ClientID string
	Scope    []string
}

// TokenListener is invoked synchronously whenever a new token is
// cached, with a copy of the fresh token. Facades register at
// construction time so a refresh in one call path propagates to all.
type TokenListener func(Token)

// Authority obtains and caches exactly one valid bearer token per
// configured credential set. It never retries a failed exchange —
// retry policy belongs to the dispatcher so a transient failure during
// a business call gets the dispatcher's backoff, not a double retry.
type Authority struct {
	baseURL    string
	httpClient *http.Client
	margin     time.Duration
	nowTime    func() time.Time

	mu        sync.RWMutex
	creds     *Credentials
	token     *Token
	listeners []TokenListener
}

// AuthorityOption defines a function type to modify the Authority instance.
type AuthorityOption func(*Authority)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) AuthorityOption {
	return func(a *Authority) {
		a.nowTime = nowFunc
	}
}

// WithHTTPClient replaces the HTTP client used for the token exchange.
func WithHTTPClient(client *http.Client) AuthorityOption {
	return func(a *Authority) {
		a.httpClient = client
	}
}

// WithSafetyMargin overrides the expiry safety margin.
func WithSafetyMargin(margin time.Duration) AuthorityOption {
	return func(a *Authority) {
		a.margin = margin
	}
}

// NewAuthority creates an Authority bound to an OrderCloud base URL
// (e.g. "https://sandboxapi.ordercloud.io"). Credentials are supplied
// separately via SetCredentials; construction performs no network call.
func NewAuthority(baseURL string, options ...AuthorityOption) (*Authority, error) {
	if baseURL == "" {
		return nil, errors.New("[NewAuthority] baseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrap(err, "[NewAuthority] invalid baseURL")
	}

	authority := &Authority{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		margin:     DefaultSafetyMargin,
		nowTime:    time.Now,
	}

	for _, opt := range options {
		opt(authority)
	}

	return authority, nil
}

// SetCredentials replaces the stored credentials and discards any
// cached token, forcing a fresh exchange on the next Authenticate.
// No network call happens here.
func (a *Authority) SetCredentials(creds Credentials) {
	a.mu.Lock()
	defer a.mu.Unlock()
	copied := creds
	copied.Scope = append([]string(nil), creds.Scope...)
	a.creds = &copied
	a.token = nil
}

// OnTokenRefresh registers a listener invoked each time a new token is
// cached. Listeners receive a copy and must not call back into the
// Authority from the callback.
func (a *Authority) OnTokenRefresh(listener TokenListener) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, listener)
}

// Authenticate returns a valid access token. When the cached token is
// still fresh it is returned without any network traffic — this fast
// path is the reason the Authority exists. Otherwise one password-grant
// exchange runs; concurrent callers that race an expired token are
// serialized so only the first performs the exchange.
func (a *Authority) Authenticate(ctx context.Context) (string, error) {
	a.mu.Lock()
	token, refreshed, err := a.authenticateLocked(ctx)
	listeners := append([]TokenListener(nil), a.listeners...)
	a.mu.Unlock()
	if err != nil {
		return "", err
	}

	if refreshed {
		log.Debug().
			Time("expires_at", token.ExpiresAt).
			Msg("ordercloud token refreshed")
		for _, listener := range listeners {
			listener(token)
		}
	}

	return token.AccessToken, nil
}

// authenticateLocked holds the authority lock for the full check-then-
// exchange sequence. Loss of concurrency on the slow path is the point:
// two callers observing an expired token perform one exchange, not two.
func (a *Authority) authenticateLocked(ctx context.Context) (Token, bool, error) {
	if a.creds == nil {
		return Token{}, false, &ocerrors.ConfigurationError{Message: "credentials not set: call SetCredentials before Authenticate"}
	}

	now := a.nowTime()
	if a.token != nil && a.token.Valid(now) {
		return *a.token, false, nil
	}

	resp, err := a.exchange(ctx, *a.creds)
	if err != nil {
		return Token{}, false, err
	}

	token := newToken(resp, a.nowTime(), a.margin)
	a.token = &token
	return token, true, nil
}

// exchange performs the password-grant POST against the token endpoint.
func (a *Authority) exchange(ctx context.Context, creds Credentials) (oauth2.TokenResponse, error) {
	tokenRequest := oauthmodel.TokenRequest{
		GrantType: oauth2.PasswordGrant,
		Username:  creds.Username,
		Password:  creds.Password,
		ClientID:  creds.ClientID,
		Scope:     creds.Scope,
	}
	if err := tokenRequest.Validate(); err != nil {
		return oauth2.TokenResponse{}, &ocerrors.ConfigurationError{Message: err.Error()}
	}

	body := tokenRequest.FormValues().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+TokenEndpointPath, strings.NewReader(body))
	if err != nil {
		return oauth2.TokenResponse{}, errors.Wrap(err, "[Authenticate] building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		// Transport failures (DNS, timeout, reset) surface as
		// authentication errors with the underlying message preserved.
		return oauth2.TokenResponse{}, &ocerrors.AuthenticationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return oauth2.TokenResponse{}, &ocerrors.AuthenticationError{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return oauth2.TokenResponse{}, &ocerrors.AuthenticationError{
			StatusCode: resp.StatusCode,
			Message:    tokenErrorMessage(raw, resp.Status),
		}
	}

	var tokenResponse oauth2.TokenResponse
	if err := json.Unmarshal(raw, &tokenResponse); err != nil {
		return oauth2.TokenResponse{}, &ocerrors.AuthenticationError{Message: "malformed token response: " + err.Error()}
	}
	if tokenResponse.AccessToken == "" {
		return oauth2.TokenResponse{}, &ocerrors.AuthenticationError{Message: "token response missing access_token"}
	}

	return tokenResponse, nil
}

// tokenErrorMessage assembles the best available description of a
// rejected exchange: error_description or Message from the JSON body,
// else the raw body, else the HTTP status text.
func tokenErrorMessage(raw []byte, statusText string) string {
	var errResponse oauth2.ErrorResponse
	if err := json.Unmarshal(raw, &errResponse); err == nil {
		if msg := errResponse.BestMessage(); msg != "" {
			return msg
		}
	}
	if body := strings.TrimSpace(string(raw)); body != "" {
		return body
	}
	return statusText
}

// AuthHeaders authenticates (fast path when fresh) and returns the
// headers every resource call must carry.
func (a *Authority) AuthHeaders(ctx context.Context) (map[string]string, error) {
	accessToken, err := a.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Authorization": "Bearer " + accessToken,
		"Content-Type":  "application/json",
	}, nil
}

// IsAuthenticated reports whether a valid token is cached. A pure read:
// no network call, no state change.
func (a *Authority) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != nil && a.token.Valid(a.nowTime())
}

// ClearAuth discards the cached token. Credentials remain set, so the
// next Authenticate performs a fresh exchange. Calling it twice is a
// no-op the second time.
func (a *Authority) ClearAuth() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = nil
}

// Introspect decodes the cached token's claims for diagnostics. An
// absent token yields an inactive result.
func (a *Authority) Introspect() TokenIntrospection {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.token == nil {
		return TokenIntrospection{Active: false}
	}
	return a.token.introspect(a.nowTime())
}
