package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/config"
)

func TestDefaults(t *testing.T) {
	c := config.New()

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "OrderCloud MCP", c.GetAppName())
	require.Equal(t, "stdio", c.GetTransport())
	require.Equal(t, "https://sandboxapi.ordercloud.io", c.GetBaseURL())
	require.Equal(t, []string{"FullAccess"}, c.GetScope())
	require.Equal(t, 5*time.Minute, c.GetTokenSafetyMargin())
	require.Equal(t, 3, c.GetMaxRetries())
	require.Equal(t, 1*time.Second, c.GetRetryBaseDelay())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MCP_TRANSPORT", "http")
	t.Setenv("ORDERCLOUD_BASE_URL", "https://api.ordercloud.io")
	t.Setenv("ORDERCLOUD_USERNAME", "buyer01")
	t.Setenv("ORDERCLOUD_SCOPE", "ProductAdmin OrderReader")

	c := config.New()
	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "http", c.GetTransport())
	require.Equal(t, "https://api.ordercloud.io", c.GetBaseURL())
	require.Equal(t, "buyer01", c.GetUsername())
	require.Equal(t, []string{"ProductAdmin", "OrderReader"}, c.GetScope())
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("MCP_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	origins := config.New().GetAllowedOrigins()
	require.True(t, origins.IsAllowedOrigin("https://app.example.com"))
	require.True(t, origins.IsAllowedOrigin("https://admin.example.com"))
	require.False(t, origins.IsAllowedOrigin("https://evil.example.com"))
}

func TestAllowedOriginsEmptyByDefault(t *testing.T) {
	origins := config.New().GetAllowedOrigins()
	require.False(t, origins.IsAllowedOrigin("https://app.example.com"))
	require.False(t, origins.IsAllowedOrigin("*"))
}
