package oauthmodel

import (
	"net/url"
	"strings"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/oauth2"
)

// TokenRequest holds parameters for the OAuth2 token request.
// This represents the request body sent to the OrderCloud /oauth/token
// endpoint, form-encoded per RFC 6749 §4.3.2.
type TokenRequest struct {
	// GrantType selects the exchange. This server always uses the
	// password grant; the field exists so the request type round-trips
	// other grants without a second struct.
	GrantType oauth2.GrantType

	// Username identifies the OrderCloud user authenticating.
	// Required: Yes (password grant)
	Username string

	// Password is the user's password.
	// Required: Yes (password grant)
	// Security: Never log or expose this value
	Password string

	// ClientID identifies the OrderCloud API client making the request.
	// Required: Yes (for all grant types)
	// Example: "4ee107b1-5g69-4b26-aa77-b21c34c9b2a0"
	ClientID string

	// Scope lists the OrderCloud security roles being requested.
	// Required: No (defaults to FullAccess when empty)
	// Example: ["ProductAdmin", "OrderReader"]
	Scope []string
}

// Validate enforces the fields the password grant requires.
func (tr TokenRequest) Validate() error {
	if tr.Username == "" {
		return ErrMissingUsername
	}
	if tr.Password == "" {
		return ErrMissingPassword
	}
	if tr.ClientID == "" {
		return ErrMissingClientID
	}
	return nil
}

// FormValues encodes the request as the form body the token endpoint
// expects. Scope entries are space-joined; an empty scope set falls
// back to the FullAccess default.
func (tr TokenRequest) FormValues() url.Values {
	scope := strings.Join(tr.Scope, " ")
	if scope == "" {
		scope = oauth2.DefaultScope
	}

	grantType := tr.GrantType
	if grantType == "" {
		grantType = oauth2.PasswordGrant
	}

	values := url.Values{}
	values.Set("grant_type", string(grantType))
	values.Set("username", tr.Username)
	values.Set("password", tr.Password)
	values.Set("client_id", tr.ClientID)
	values.Set("scope", scope)
	return values
}
