package server

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/auth"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/config"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/resources"
)

// Bootstrap wires the full stack from configuration: one authority, one
// dispatcher sharing its token, every facade on that dispatcher, and
// the MCP server on top. Missing credentials are fatal here — the
// surrounding process must not start half-configured.
func Bootstrap(cfg config.Config) (*Server, error) {
	if cfg.GetUsername() == "" || cfg.GetPassword() == "" || cfg.GetClientID() == "" {
		return nil, errors.New("[Bootstrap] ORDERCLOUD_USERNAME, ORDERCLOUD_PASSWORD and ORDERCLOUD_CLIENT_ID must be set")
	}

	authority, err := auth.NewAuthority(cfg.GetBaseURL(), auth.WithSafetyMargin(cfg.GetTokenSafetyMargin()))
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] creating token authority")
	}
	authority.SetCredentials(auth.Credentials{
		Username: cfg.GetUsername(),
		Password: cfg.GetPassword(),
		ClientID: cfg.GetClientID(),
		Scope:    cfg.GetScope(),
	})

	dispatcher, err := dispatch.NewDispatcher(cfg.GetBaseURL(), authority,
		dispatch.WithMaxRetries(cfg.GetMaxRetries()),
		dispatch.WithBaseDelay(cfg.GetRetryBaseDelay()),
		dispatch.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.GetRateLimitPerSecond()), cfg.GetRateLimitBurst())),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[Bootstrap] creating dispatcher")
	}

	return New(cfg, authority, resources.New(dispatcher)), nil
}

// Connect performs the initial token exchange. Called explicitly by the
// entrypoint so a bad credential set fails startup instead of the first
// tool call.
func (s *Server) Connect(ctx context.Context) error {
	if _, err := s.authority.Authenticate(ctx); err != nil {
		return errors.Wrap(err, "[Connect] initial authentication")
	}
	log.Info().
		Str("base_url", s.config.GetBaseURL()).
		Int("tools", len(s.tools)).
		Msg("connected to ordercloud")
	return nil
}
