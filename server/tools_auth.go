package server

import (
	"context"
	"encoding/json"
)

// authTools expose the session lifecycle. The raw bearer token is never
// returned to the agent — only introspected claims and expiry.
func (s *Server) authTools() []Tool {
	return []Tool{
		{
			Name:        "authenticate",
			Description: "Authenticate against OrderCloud with the configured credentials. Uses the cached token when still valid; set force to discard it and perform a fresh exchange.",
			InputSchema: &Schema{
				Type: "object",
				Properties: map[string]*Schema{
					"force": {Type: "boolean", Description: "Discard the cached token first"},
				},
			},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				var a struct {
					Force bool `json:"force,omitempty"`
				}
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if a.Force {
					s.authority.ClearAuth()
				}
				if _, err := s.authority.Authenticate(ctx); err != nil {
					return nil, err
				}
				return s.authority.Introspect(), nil
			},
		},
		{
			Name:        "auth_status",
			Description: "Report whether a valid OrderCloud session token is cached, with its decoded claims. Never triggers a network call.",
			ReadOnly:    true,
			InputSchema: &Schema{Type: "object"},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				return s.authority.Introspect(), nil
			},
		},
		{
			Name:        "clear_auth",
			Description: "Discard the cached session token. Credentials stay configured; the next call re-authenticates.",
			InputSchema: &Schema{Type: "object"},
			Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				s.authority.ClearAuth()
				return map[string]any{"cleared": true}, nil
			},
		},
	}
}
