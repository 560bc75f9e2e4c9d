package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactInvitationPath(t *testing.T) {
	const tok = "3f1c9a4e-8b2d-4c6f-9e1a-7d5b3c2a1f0e"

	for _, p := range []string{
		"/v1/invitations/" + tok,
		"/v1/invitations/" + tok + "/accept",
		"/v1/invitations/" + tok + "/revoke",
	} {
		got := redactInvitationPath(p)
		require.NotContains(t, got, tok, p)
		require.True(t, strings.HasPrefix(got, "/v1/invitations/fp:"), got)
	}
	require.True(t, strings.HasSuffix(redactInvitationPath("/v1/invitations/"+tok+"/accept"), "/accept"))

	for _, p := range []string{"/v1/properties/01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV/invitations", "/v1/invitations/", "/livez"} {
		require.Equal(t, p, redactInvitationPath(p))
	}
}
