package oauth2

// TokenResponse represents the response from the OrderCloud token
// endpoint. This is the standard OAuth2 token endpoint response format
// as defined in RFC 6749, returned from POST /oauth/token.
type TokenResponse struct {
	// AccessToken is the JWT used to access OrderCloud resources.
	// Example: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
	// Usage: Include in Authorization header: "Bearer <access_token>"
	// Lifespan: Short-lived (OrderCloud defaults to a few hours)
	AccessToken string `json:"access_token"`

	// TokenType indicates how to use the access token (always "bearer").
	// Standard: OAuth2 spec requires this field
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 36000 (for 10 hours)
	// Usage: The authority refreshes the token a safety margin before
	// this elapses rather than waiting for a 401.
	ExpiresIn int `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Only present when the API client's RefreshTokenDuration is set.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// ErrorResponse is the error body the token endpoint returns on a
// rejected exchange. OrderCloud is inconsistent between the RFC 6749
// shape and its own Message envelope, so both are decoded.
type ErrorResponse struct {
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	Message          string `json:"Message,omitempty"`
}

// BestMessage picks the richest available description of the failure:
// error_description > Message > error code.
func (e ErrorResponse) BestMessage() string {
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
