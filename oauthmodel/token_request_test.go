package oauthmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/oauth2"
	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/oauthmodel"
)

func validRequest() oauthmodel.TokenRequest {
	return oauthmodel.TokenRequest{
		GrantType: oauth2.PasswordGrant,
		Username:  "buyer01",
		Password:  "password123",
		ClientID:  "client-1",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	missingUsername := validRequest()
	missingUsername.Username = ""
	require.ErrorIs(t, missingUsername.Validate(), oauthmodel.ErrMissingUsername)

	missingPassword := validRequest()
	missingPassword.Password = ""
	require.ErrorIs(t, missingPassword.Validate(), oauthmodel.ErrMissingPassword)

	missingClientID := validRequest()
	missingClientID.ClientID = ""
	require.ErrorIs(t, missingClientID.Validate(), oauthmodel.ErrMissingClientID)
}

func TestFormValues(t *testing.T) {
	values := validRequest().FormValues()
	require.Equal(t, "password", values.Get("grant_type"))
	require.Equal(t, "buyer01", values.Get("username"))
	require.Equal(t, "password123", values.Get("password"))
	require.Equal(t, "client-1", values.Get("client_id"))
	require.Equal(t, "FullAccess", values.Get("scope"))
}

func TestFormValuesScopeJoining(t *testing.T) {
	req := validRequest()
	req.Scope = []string{"ProductAdmin", "OrderReader", "Shopper"}
	require.Equal(t, "ProductAdmin OrderReader Shopper", req.FormValues().Get("scope"))
}

func TestFormValuesDefaultsGrantType(t *testing.T) {
	req := validRequest()
	req.GrantType = ""
	require.Equal(t, "password", req.FormValues().Get("grant_type"))
}
