package backoffice_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint works before bootstrap.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := newAPIClient(baseURL)

	var health struct {
		Status string `json:"status"`
	}
	status := client.do(t, http.MethodGet, "/livez", nil, &health)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health.Status)
}

// TestReadyzEndpoint verifies the readiness check reports the database as healthy.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := newAPIClient(baseURL)

	var health struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
		} `json:"checks"`
	}
	status := client.do(t, http.MethodGet, "/readyz", nil, &health)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}

// TestBootstrapOnlyOnce verifies the second bootstrap attempt is rejected.
func TestBootstrapOnlyOnce(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	bootstrapAdmin(t, baseURL)

	client := newAPIClient(baseURL)
	status := client.do(t, http.MethodPost, "/v1/bootstrap", map[string]string{
		"token":    bootstrapToken,
		"email":    "second@sweetfm.example",
		"name":     "Second Admin",
		"password": "Another123!",
	}, nil)
	require.Equal(t, http.StatusConflict, status, "Second bootstrap should be rejected")
}

// TestBootstrapRequiresToken verifies a wrong bootstrap token is unauthorized.
func TestBootstrapRequiresToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := newAPIClient(baseURL)
	status := client.do(t, http.MethodPost, "/v1/bootstrap", map[string]string{
		"token":    "wrong-token",
		"email":    adminEmail,
		"name":     adminName,
		"password": adminPassword,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}
