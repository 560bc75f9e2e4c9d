package leasesdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
	"github.com/stretchr/testify/require"
)

func TestAcceptInvitationDecodesTypedErrors(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(leasesdk.ErrorResponse{
			Error:            leasesdk.ErrorCodeValidation,
			ErrorDescription: "registration is invalid",
			Details:          map[string]string{"username": "required"},
		})
	}))
	defer srv.Close()

	_, err := leasesdk.NewClient(srv.URL).AcceptInvitation(context.Background(), "abc", leasesdk.AcceptInvitationRequest{})
	require.Equal(t, "/v1/invitations/abc/accept", gotPath)
	require.ErrorIs(t, err, leasesdk.ErrValidation)
	require.NotErrorIs(t, err, leasesdk.ErrNotFound)

	var apiErr *leasesdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "required", apiErr.Details["username"])
}

func TestWithTokenSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	base := leasesdk.NewClient(srv.URL + "/")
	require.NoError(t, base.WithToken("tok").RevokeInvitation(context.Background(), "x"))
	require.Equal(t, "Bearer tok", gotAuth)
}

func TestNonJSONErrorFallsBackToServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := leasesdk.NewClient(srv.URL).Livez(context.Background())
	var apiErr *leasesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, leasesdk.ErrorCodeServerError, apiErr.Code)
}

func TestBootstrapSendsOperatorToken(t *testing.T) {
	var gotToken, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Bootstrap-Token")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(leasesdk.AccountResponse{ID: "01J", Role: "admin"})
	}))
	defer srv.Close()

	c := leasesdk.NewClient(srv.URL)
	acc, err := c.Bootstrap(context.Background(), "operator", leasesdk.BootstrapRequest{Username: "root"})
	require.NoError(t, err)
	require.Equal(t, "operator", gotToken)
	require.Empty(t, gotAuth)
	require.Equal(t, "admin", acc.Role)

	// The header does not leak into the original client.
	_, _ = c.Livez(context.Background())
	require.Empty(t, gotToken)
}
