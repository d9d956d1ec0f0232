package dispatch

import (
	"net/url"
)

// Request describes one REST call against the OrderCloud API. Ephemeral:
// built by a resource facade, executed once by the dispatcher, never
// persisted.
type Request struct {
	// Method is the HTTP verb (GET, POST, PUT, PATCH, DELETE).
	Method string

	// Path is the endpoint path including the API version prefix,
	// e.g. "/v1/products/{id}". Joined to the dispatcher's base URL.
	Path string

	// Query holds query parameters. A multi-map because OrderCloud
	// filters take arbitrary user-supplied keys, each possibly repeated.
	Query url.Values

	// Body is JSON-serialized as the request body when non-nil. The
	// payload is opaque to the dispatcher — business semantics stay
	// with the platform.
	Body any

	// Headers are caller-supplied headers. They win on key conflict
	// with dispatcher-level headers, except the dispatcher still
	// injects Authorization when the caller didn't override it.
	Headers map[string]string
}

// URL renders the path and encoded query string (no base URL).
func (r Request) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}
