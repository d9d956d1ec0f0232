// Package dispatch executes REST calls against OrderCloud with a valid
// bearer token, bounded exponential-backoff retry, and typed error
// classification. Every resource facade shares one Dispatcher and
// therefore one token.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	ocerrors "github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/errors"
)

const (
	// DefaultMaxRetries bounds the retry loop: at most
	// DefaultMaxRetries+1 total HTTP attempts per Execute.
	DefaultMaxRetries = 3

	// DefaultBaseDelay is the first backoff interval; each subsequent
	// retry doubles it.
	DefaultBaseDelay = 1 * time.Second
)

// TokenSource supplies the headers every resource call must carry.
// Implemented by auth.Authority.
type TokenSource interface {
	AuthHeaders(ctx context.Context) (map[string]string, error)
}

// Executor is the narrow contract resource facades consume. Callers
// build a Request and declare the response shape; out receives the
// decoded JSON body, or is left untouched on error or empty body.
type Executor interface {
	Execute(ctx context.Context, req Request, out any) error
}

// Dispatcher wraps an HTTP client bound to a base URL and a token
// source. Safe for concurrent use.
type Dispatcher struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	maxRetries int
	baseDelay  time.Duration
	limiter    *rate.Limiter
	sleep      func(ctx context.Context, d time.Duration) error
}

var _ Executor = (*Dispatcher)(nil)

// DispatcherOption defines a function type to modify the Dispatcher instance.
type DispatcherOption func(*Dispatcher)

// WithMaxRetries overrides the retry budget.
func WithMaxRetries(maxRetries int) DispatcherOption {
	return func(d *Dispatcher) {
		d.maxRetries = maxRetries
	}
}

// WithBaseDelay overrides the first backoff interval.
func WithBaseDelay(delay time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.baseDelay = delay
	}
}

// WithHTTPClient replaces the HTTP client used for resource calls.
func WithHTTPClient(client *http.Client) DispatcherOption {
	return func(d *Dispatcher) {
		d.httpClient = client
	}
}

// WithRateLimiter throttles outbound calls so bursts of tool
// invocations do not trip the platform's rate limits.
func WithRateLimiter(limiter *rate.Limiter) DispatcherOption {
	return func(d *Dispatcher) {
		d.limiter = limiter
	}
}

// WithSleep replaces the backoff sleep function (primarily for testing).
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) DispatcherOption {
	return func(d *Dispatcher) {
		d.sleep = sleep
	}
}

// NewDispatcher creates a Dispatcher bound to an OrderCloud base URL.
func NewDispatcher(baseURL string, tokens TokenSource, options ...DispatcherOption) (*Dispatcher, error) {
	if baseURL == "" {
		return nil, errors.New("[NewDispatcher] baseURL is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewDispatcher] token source is required")
	}

	dispatcher := &Dispatcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		sleep:      sleepContext,
	}

	for _, opt := range options {
		opt(dispatcher)
	}

	return dispatcher, nil
}

// Execute runs one REST call with retry. Transient failures (5xx,
// network) back off exponentially up to the retry budget; client and
// auth failures (400/401/403/404) surface immediately — waiting will
// not fix them. Classification comes from the numeric status captured
// when the response arrives, never from parsing message text.
func (d *Dispatcher) Execute(ctx context.Context, req Request, out any) error {
	requestID := uuid.New().String()

	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			delay := d.baseDelay * (1 << (attempt - 1))
			log.Debug().
				Str("request_id", requestID).
				Dur("delay", delay).
				Int("attempt", attempt).
				Msg("retrying after backoff")
			if err := d.sleep(ctx, delay); err != nil {
				return &ocerrors.TransportError{Op: "backoff", Err: err}
			}
		}

		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return &ocerrors.TransportError{Op: "rate limit", Err: err}
			}
		}

		err := d.attempt(ctx, requestID, req, out)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

// attempt performs a single HTTP round trip.
func (d *Dispatcher) attempt(ctx context.Context, requestID string, req Request, out any) error {
	headers, err := d.tokens.AuthHeaders(ctx)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return errors.Wrap(err, "[Execute] encoding request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, d.baseURL+req.URL(), bodyReader)
	if err != nil {
		return errors.Wrap(err, "[Execute] building request")
	}

	// Dispatcher headers first, caller-supplied headers override.
	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	log.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL()).
		Msg("ordercloud request")

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return &ocerrors.TransportError{Op: req.Method + " " + req.Path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ocerrors.TransportError{Op: "reading response", Err: err}
	}

	log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("ordercloud response")

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "[Execute] decoding response body")
		}
		return nil
	}

	return classifyFailure(resp.StatusCode, errorMessage(raw, resp.Status))
}

// classifyFailure maps a non-2xx status to the typed error taxonomy.
func classifyFailure(statusCode int, message string) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ocerrors.AuthenticationError{StatusCode: statusCode, Message: message}
	case http.StatusBadRequest, http.StatusNotFound:
		return &ocerrors.ClientError{StatusCode: statusCode, Message: message}
	default:
		return &ocerrors.ServerError{StatusCode: statusCode, Message: message}
	}
}

// retryable decides whether an attempt's failure is worth repeating.
// Server and transport failures are; so is a transport-level failure
// during the token exchange (an AuthenticationError without a status).
// Rejected credentials and client errors are not.
func retryable(err error) bool {
	if ocerrors.Retryable(err) {
		return true
	}
	var authErr *ocerrors.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.StatusCode == 0
	}
	return false
}

// sleepContext sleeps for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
