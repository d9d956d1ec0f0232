package server_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/internal/config"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/server"
)

func TestBootstrapRequiresCredentials(t *testing.T) {
	t.Setenv("ORDERCLOUD_USERNAME", "")
	t.Setenv("ORDERCLOUD_PASSWORD", "")
	t.Setenv("ORDERCLOUD_CLIENT_ID", "")

	_, err := server.Bootstrap(config.New())
	require.Error(t, err)
	require.Contains(t, err.Error(), "ORDERCLOUD_USERNAME")
}

func TestBootstrapWiresFullStack(t *testing.T) {
	t.Setenv("ORDERCLOUD_USERNAME", "buyer01")
	t.Setenv("ORDERCLOUD_PASSWORD", "password123")
	t.Setenv("ORDERCLOUD_CLIENT_ID", "client-1")

	srv, err := server.Bootstrap(config.New())
	require.NoError(t, err)
	require.NotEmpty(t, srv.Tools())
	require.Contains(t, srv.Tools(), "authenticate")
	require.Contains(t, srv.Tools(), "list_products")
	require.Contains(t, srv.Tools(), "submit_order")
}
