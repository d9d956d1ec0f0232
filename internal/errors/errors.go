package errors

import (
	"errors"
	"fmt"
)

// Common error values for the OrderCloud MCP server
var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// ConfigurationError reports a call made before credentials were
// supplied. It is never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// AuthenticationError reports a rejected token exchange or a 401/403
// from a resource endpoint. A zero StatusCode means the failure was
// transport-level, before any HTTP response arrived.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("authentication failed (%d): %s", e.StatusCode, e.Message)
}

// ClientError reports a 400 or 404 from a resource endpoint. Waiting
// will not fix it, so it is never retried.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error (%d): %s", e.StatusCode, e.Message)
}

// ServerError reports a 5xx that survived the retry budget.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// TransportError reports a network-level failure (DNS, timeout,
// connection reset) where no HTTP status was ever received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the failed call might succeed.
// Classification comes from the typed error set at the point the HTTP
// response was received, never from re-parsing message text.
func Retryable(err error) bool {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return true
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
