package door_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/vcdoor/pkg/doorsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for door service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "vcdoor-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminUserName  = "admin"
	adminEmail     = "admin@example.test"
	adminPassword  = "Admin123!"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Door Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Door Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/door/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"BOOTSTRAP_TOKEN":    bootstrapToken,
		"DOOR_DATABASE_FILE": "/data/door.db",
		"DOOR_PEPPER_FILE":   "/data/pepper",
		"DOOR_ISSUER":        "vcdoor-e2e",
		"DOOR_NUM_KEYS":      "1",
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
	}
}

// setupDoorContainer starts the door service with relaxed rate limits and
// returns the base URL.
func setupDoorContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the strict
	// production limits.
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"
	env["RATELIMIT_PUBLIC_REQUESTS"] = "1000"
	env["RATELIMIT_PUBLIC_BURST"] = "1000"

	return startContainer(t, env)
}

// setupDoorContainerWithDefaultRateLimits starts the door service with the
// production rate limits. Only rate limit tests should use it.
func setupDoorContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapService creates the first admin and returns a logged in session.
func bootstrapService(t *testing.T, client *doorsdk.SDKClient) *doorsdk.Session {
	t.Helper()
	ctx := context.Background()

	resp, err := client.Bootstrap(ctx, bootstrapToken, doorsdk.BootstrapRequest{
		AdminUserName: adminUserName,
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.Equal(t, adminUserName, resp.AdminUserName)

	return performLogin(t, client, adminUserName, adminPassword)
}

// registerUser creates an active account and returns a logged in session.
func registerUser(t *testing.T, client *doorsdk.SDKClient, name string) *doorsdk.Session {
	t.Helper()

	password := "pw-" + name + "-secret"
	user, err := client.Register(context.Background(), doorsdk.RegisterRequest{
		UserName: name,
		Email:    name + "@example.test",
		Password: password,
	})
	require.NoError(t, err, "Register should succeed")
	require.True(t, user.IsActive, "Account should be active without email validation")

	return performLogin(t, client, name, password)
}

func performLogin(t *testing.T, client *doorsdk.SDKClient, login, password string) *doorsdk.Session {
	t.Helper()

	session, err := client.Login(context.Background(), login, password)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session)
	return session
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *doorsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertStatus checks that err is an API error carrying the given status.
func assertStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.Equal(t, status, doorsdk.StatusCode(err), "%s - got: %v", context, err)
}
