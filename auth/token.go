package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/oauth2"
)

// Token is a cached OrderCloud bearer token. It is created whole from a
// token endpoint response and replaced whole on re-authentication,
// never mutated field by field.
type Token struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	IssuedAt     time.Time
	// ExpiresAt is the instant the authority stops trusting this token:
	// IssuedAt + expires_in - safety margin. The margin keeps a token
	// from expiring between the freshness check and the resource call.
	ExpiresAt time.Time
}

// newToken builds a Token from a token endpoint response. The expiry
// instant prefers the declared expires_in; when the endpoint omits it,
// the exp claim inside the JWT (OrderCloud access tokens are JWTs) is
// used instead.
func newToken(resp oauth2.TokenResponse, issuedAt time.Time, margin time.Duration) Token {
	token := Token{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		RefreshToken: resp.RefreshToken,
		IssuedAt:     issuedAt,
	}

	if resp.ExpiresIn > 0 {
		token.ExpiresAt = issuedAt.Add(time.Duration(resp.ExpiresIn)*time.Second - margin)
		return token
	}

	if exp, ok := jwtExpiry(resp.AccessToken); ok {
		token.ExpiresAt = exp.Add(-margin)
	}
	return token
}

// Valid reports whether the token is still trusted at the given instant.
func (t Token) Valid(now time.Time) bool {
	if t.AccessToken == "" {
		return false
	}
	return now.Before(t.ExpiresAt)
}

// TokenIntrospection represents the claims decoded from an OrderCloud
// access token. The token is parsed without signature verification —
// the platform verifies signatures server-side; this is diagnostics
// for the operator and the auth_status tool.
type TokenIntrospection struct {
	Active   bool     `json:"active"`             // True or false - is the cached token still trusted
	Username string   `json:"usr,omitempty"`      // OrderCloud username ("usr" claim)
	ClientID string   `json:"cid,omitempty"`      // API client ID ("cid" claim)
	Issuer   string   `json:"iss,omitempty"`      // Issuer of the token
	Roles    []string `json:"role,omitempty"`     // Security roles granted
	Exp      *int64   `json:"exp,omitempty"`      // Expiration (unix seconds)
	Iat      *int64   `json:"iat,omitempty"`      // Issued at time (unix seconds)
	CacheExp *int64   `json:"cacheExp,omitempty"` // When this authority stops trusting the token
}

// introspect decodes the token's claims without verifying the signature.
func (t Token) introspect(now time.Time) TokenIntrospection {
	result := TokenIntrospection{Active: t.Valid(now)}
	if !t.ExpiresAt.IsZero() {
		cacheExp := t.ExpiresAt.Unix()
		result.CacheExp = &cacheExp
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(t.AccessToken, claims); err != nil {
		return result
	}

	if usr, ok := claims["usr"].(string); ok {
		result.Username = usr
	}
	if cid, ok := claims["cid"].(string); ok {
		result.ClientID = cid
	}
	if iss, ok := claims["iss"].(string); ok {
		result.Issuer = iss
	}
	switch roles := claims["role"].(type) {
	case string:
		result.Roles = []string{roles}
	case []any:
		for _, r := range roles {
			if s, ok := r.(string); ok {
				result.Roles = append(result.Roles, s)
			}
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		unix := exp.Unix()
		result.Exp = &unix
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		unix := iat.Unix()
		result.Iat = &unix
	}
	return result
}

// jwtExpiry extracts the exp claim from an unverified JWT.
func jwtExpiry(accessToken string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
