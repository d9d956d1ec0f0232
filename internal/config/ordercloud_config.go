package config

import (
	"strings"
	"time"
)

// OrderCloudConfig carries everything needed to reach the wrapped
// OrderCloud instance: where it lives, which credentials to present,
// and the client-side request policy (retry, rate limit, token margin).
type OrderCloudConfig interface {
	GetBaseURL() string
	GetUsername() string
	GetPassword() string
	GetClientID() string
	GetScope() []string
	GetTokenSafetyMargin() time.Duration
	GetMaxRetries() int
	GetRetryBaseDelay() time.Duration
	GetRequestTimeout() time.Duration
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

type OrderCloud struct{}

var _ OrderCloudConfig = OrderCloud{}

// GetBaseURL returns the OrderCloud API root (e.g. "https://sandboxapi.ordercloud.io").
// Both the /oauth/token endpoint and the /v1 resource endpoints hang off it.
func (OrderCloud) GetBaseURL() string {
	return GetEnv("ORDERCLOUD_BASE_URL", "https://sandboxapi.ordercloud.io")
}

func (OrderCloud) GetUsername() string {
	return GetEnv("ORDERCLOUD_USERNAME", "")
}

func (OrderCloud) GetPassword() string {
	return GetEnv("ORDERCLOUD_PASSWORD", "")
}

func (OrderCloud) GetClientID() string {
	return GetEnv("ORDERCLOUD_CLIENT_ID", "")
}

// GetScope returns the roles requested during the password grant,
// space-separated in the environment. Defaults to FullAccess.
func (OrderCloud) GetScope() []string {
	scope := GetEnv("ORDERCLOUD_SCOPE", "FullAccess")
	return strings.Fields(scope)
}

// GetTokenSafetyMargin is subtracted from the token's expires_in when
// computing the cached token's expiry instant, so a token is refreshed
// before the platform actually rejects it mid-request.
func (OrderCloud) GetTokenSafetyMargin() time.Duration {
	return 5 * time.Minute
}

func (OrderCloud) GetMaxRetries() int {
	return 3
}

func (OrderCloud) GetRetryBaseDelay() time.Duration {
	return 1 * time.Second
}

func (OrderCloud) GetRequestTimeout() time.Duration {
	return 30 * time.Second
}

func (OrderCloud) GetRateLimitPerSecond() float64 {
	return 20
}

func (OrderCloud) GetRateLimitBurst() int {
	return 40
}
