package backoffice_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for back-office end-to-end tests.
 * This includes container setup, a thin JSON client, and bootstrap helpers.
 */

const (
	testImageName = "sweetfm-backoffice-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminEmail     = "admin@sweetfm.example"
	adminName      = "Administrator"
	adminPassword  = "Admin123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Back-Office Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Back-Office Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/backoffice/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the back-office in a container and returns the base URL.
// Rate limits are raised so rapid test requests don't trip the strict defaults.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":             bootstrapToken,
			"BACKOFFICE_DATABASE_FILE":    "/tmp/backoffice.db",
			"BACKOFFICE_PEPPER_FILE":      "/tmp/pepper",
			"BACKOFFICE_SESSION_KEY_FILE": "/tmp/session.key",
			"BACKOFFICE_ISSUER":           "sweetfm-backoffice",
			"ENV":                         "test",
			"LOG_LEVEL":                   "info",
			"LOG_FORMAT":                  "json",
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
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

// apiClient is a thin JSON-over-HTTP client for the back-office API.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do sends a request and decodes the JSON response into out (when non-nil).
// It returns the HTTP status code.
func (c *apiClient) do(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type sessionResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
}

// bootstrapAdmin creates the first admin and returns an authenticated client.
func bootstrapAdmin(t *testing.T, baseURL string) *apiClient {
	t.Helper()

	client := newAPIClient(baseURL)
	var session sessionResponse
	status := client.do(t, http.MethodPost, "/v1/bootstrap", map[string]string{
		"token":    bootstrapToken,
		"email":    adminEmail,
		"name":     adminName,
		"password": adminPassword,
	}, &session)
	require.Equal(t, http.StatusCreated, status, "Bootstrap should succeed")
	require.NotEmpty(t, session.Token, "Bootstrap should return a session token")
	require.Equal(t, "admin", session.User.Role)

	client.token = session.Token
	return client
}

// login exchanges credentials for an authenticated client.
func login(t *testing.T, baseURL, email, password string) *apiClient {
	t.Helper()

	client := newAPIClient(baseURL)
	var session sessionResponse
	status := client.do(t, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &session)
	require.Equal(t, http.StatusOK, status, "Login should succeed")
	require.NotEmpty(t, session.Token)

	client.token = session.Token
	return client
}
