package oauth2

// GrantType represents the OAuth 2.0 grant type sent to the OrderCloud
// token endpoint. Determines what credentials are required to obtain tokens.
type GrantType string

const (
	// PasswordGrant exchanges a username/password pair for tokens.
	// Used in: every interactive OrderCloud session this server opens
	// Token request includes: username, password, client_id, scope
	// Returns: access_token, refresh_token (when the client allows it)
	PasswordGrant GrantType = "password"

	// ClientCredentialsGrant allows machine-to-machine authentication.
	// Used in: OrderCloud middleware integrations (no user context)
	// Token request includes: client_id, client_secret, scope
	// Returns: access_token only
	ClientCredentialsGrant GrantType = "client_credentials"

	// RefreshTokenGrant exchanges a refresh token for a new access token.
	// Used in: long-lived sessions where the password should not be replayed
	// Token request includes: refresh_token, client_id
	RefreshTokenGrant GrantType = "refresh_token"
)

// DefaultScope is the OrderCloud security role requested when the
// caller does not name any. FullAccess grants every role assigned to
// the user, which is what an agent-facing adapter wants by default.
const DefaultScope = "FullAccess"
