package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "leasehold", cfg.Issuer)
	require.Equal(t, 7*24*time.Hour, cfg.InvitationTTL)
	require.Equal(t, 15*time.Minute, cfg.SessionTTL)
	require.Equal(t, 2, cfg.SigningKeys)
	require.Equal(t, 8080, cfg.Port)
	require.Zero(t, cfg.InvitationRetention)
	require.Empty(t, cfg.BootstrapToken)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LEASEHOLD_ISSUER", "leasehold-staging")
	t.Setenv("LEASEHOLD_PUBLIC_BASE_URL", "https://lease.example")
	t.Setenv("LEASEHOLD_INVITATION_TTL", "72h")
	t.Setenv("LEASEHOLD_SIGNING_KEYS", "3")
	t.Setenv("INVITATION_RETENTION", "720h")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "leasehold-staging", cfg.Issuer)
	require.Equal(t, "https://lease.example", cfg.PublicBaseURL)
	require.Equal(t, 72*time.Hour, cfg.InvitationTTL)
	require.Equal(t, 3, cfg.SigningKeys)
	require.Equal(t, 30*24*time.Hour, cfg.InvitationRetention)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unparsable duration", "LEASEHOLD_INVITATION_TTL", "a week"},
		{"zero ttl", "LEASEHOLD_INVITATION_TTL", "0s"},
		{"relative base url", "LEASEHOLD_PUBLIC_BASE_URL", "/invitations"},
		{"too many keys", "LEASEHOLD_SIGNING_KEYS", "11"},
		{"negative retention", "INVITATION_RETENTION", "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestNewWiresApplication(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.DatabaseFile = filepath.Join(dir, "leasehold.db")
	cfg.PepperFile = filepath.Join(dir, "secrets", "pepper")
	cfg.LogFormat = "text"

	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	require.FileExists(t, cfg.PepperFile)
	require.False(t, a.housekeepingService.Enabled())

	for _, path := range []string{"/livez", "/readyz", "/metrics"} {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	// Bootstrap is disabled without a token.
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bootstrap", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.DatabaseFile = filepath.Join(dir, "leasehold.db")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.Port = 0 // any free port
	cfg.InvitationRetention = time.Hour

	a, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.Error(t, a.db.Ping(context.Background()), "database is closed")
}
