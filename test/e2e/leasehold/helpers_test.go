//go:build e2e

package leasehold_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared steps for the leasehold end-to-end tests.
 */

const (
	testImageName = "leasehold-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminUsername  = "admin"
	testPassword   = "correct horse battery"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Leasehold Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Leasehold Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/leasehold/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image may already be gone
}

// relaxedLimits lifts the per-IP limits; every request in a test comes from
// the same address.
var relaxedLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// setupContainer starts the service and returns its base URL. extraEnv is
// merged over the defaults.
func setupContainer(t *testing.T, extraEnv map[string]string) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"LEASEHOLD_BOOTSTRAP_TOKEN": bootstrapToken,
		"LEASEHOLD_ISSUER":          "leasehold-e2e",
		"LEASEHOLD_PUBLIC_BASE_URL": "https://leasehold.test",
		"LEASEHOLD_SIGNING_KEYS":    "1",
		"ENV":                       "test",
		"LOG_LEVEL":                 "info",
		"LOG_FORMAT":                "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// registerLandlord creates a landlord and returns a client bound to its
// session together with the account id.
func registerLandlord(t *testing.T, client *leasesdk.Client, username string) (*leasesdk.Client, string) {
	t.Helper()
	ctx := t.Context()

	acc, err := client.RegisterLandlord(ctx, leasesdk.RegisterLandlordRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        testPassword,
		PasswordConfirm: testPassword,
		FirstName:       "Lana",
		LastName:        "Lord",
		Gender:          "female",
	})
	require.NoError(t, err, "landlord registration should succeed")

	return login(t, client, username), acc.ID
}

func login(t *testing.T, client *leasesdk.Client, login string) *leasesdk.Client {
	t.Helper()

	sess, err := client.Login(t.Context(), login, testPassword)
	require.NoError(t, err, "login should succeed")
	require.Equal(t, "Bearer", sess.TokenType)
	return client.WithToken(sess.AccessToken)
}

func tenantForm(username string) leasesdk.AcceptInvitationRequest {
	return leasesdk.AcceptInvitationRequest{
		Username:        username,
		Email:           username + "@example.com",
		Password:        testPassword,
		PasswordConfirm: testPassword,
		FirstName:       "Tess",
		LastName:        "Tenant",
		Gender:          "female",
		MoveInDate:      time.Now().UTC().AddDate(0, 0, 14).Format(time.DateOnly),
	}
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *leasesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
