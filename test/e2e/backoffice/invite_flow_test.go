package backoffice_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type inviteCreateResponse struct {
	Invitation struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"invitation"`
	Token     string `json:"token"`
	InviteURL string `json:"invite_url"`
}

// TestInviteLifecycle walks the full invitation flow: mint, lookup, accept,
// and login with the new account. The token must be single-use.
func TestInviteLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)

	// Mint an invitation for a manager.
	var created inviteCreateResponse
	status := admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": "manager@sweetfm.example",
		"role":  "manager",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.Token, "Raw token should be returned once at creation")
	require.Contains(t, created.InviteURL, created.Token)

	// Public lookup classifies the token as valid.
	anon := newAPIClient(baseURL)
	var looked struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	status = anon.do(t, http.MethodGet, "/v1/invitations/lookup/"+created.Token, nil, &looked)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "manager@sweetfm.example", looked.Email)
	require.Equal(t, "manager", looked.Role)

	// Accept creates the account and returns a session.
	var session sessionResponse
	status = anon.do(t, http.MethodPost, "/v1/invitations/accept", map[string]string{
		"token":    created.Token,
		"name":     "Morgan Manager",
		"password": "Manager123!",
	}, &session)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "manager", session.User.Role)

	// The token is consumed: lookup now reports it as used.
	status = anon.do(t, http.MethodGet, "/v1/invitations/lookup/"+created.Token, nil, nil)
	require.Equal(t, http.StatusGone, status, "Consumed token should be 410 Gone")

	// A second accept with the same token must fail.
	status = anon.do(t, http.MethodPost, "/v1/invitations/accept", map[string]string{
		"token":    created.Token,
		"name":     "Impostor",
		"password": "Impostor123!",
	}, nil)
	require.Equal(t, http.StatusGone, status)

	// The new account can log in with its password.
	manager := login(t, baseURL, "manager@sweetfm.example", "Manager123!")
	var me struct {
		Email string `json:"email"`
	}
	status = manager.do(t, http.MethodGet, "/v1/auth/me", nil, &me)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "manager@sweetfm.example", me.Email)
}

// TestInviteDuplicateEmail verifies only one unconsumed invitation may exist
// per email, and that registered emails cannot be invited again.
func TestInviteDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)

	status := admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": "staff@sweetfm.example",
		"role":  "employee",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status = admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": "staff@sweetfm.example",
		"role":  "employee",
	}, nil)
	require.Equal(t, http.StatusConflict, status, "Second unconsumed invitation should be rejected")

	// Inviting the admin's own registered email is also a conflict.
	status = admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": adminEmail,
		"role":  "employee",
	}, nil)
	require.Equal(t, http.StatusConflict, status)
}

// TestInviteResendRotatesToken verifies resend invalidates the previous link.
func TestInviteResendRotatesToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)

	var created inviteCreateResponse
	status := admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": "rotate@sweetfm.example",
		"role":  "employee",
	}, &created)
	require.Equal(t, http.StatusCreated, status)

	var resent inviteCreateResponse
	status = admin.do(t, http.MethodPost, "/v1/invitations/"+created.Invitation.ID+"/resend", nil, &resent)
	require.Equal(t, http.StatusOK, status)
	require.NotEqual(t, created.Token, resent.Token, "Resend should mint a fresh token")

	anon := newAPIClient(baseURL)

	// Old link is dead, new one works.
	status = anon.do(t, http.MethodGet, "/v1/invitations/lookup/"+created.Token, nil, nil)
	require.Equal(t, http.StatusNotFound, status)

	status = anon.do(t, http.MethodGet, "/v1/invitations/lookup/"+resent.Token, nil, nil)
	require.Equal(t, http.StatusOK, status)
}

// TestInviteRequiresManagement verifies a plain employee cannot mint invitations.
func TestInviteRequiresManagement(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)

	var created inviteCreateResponse
	status := admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": "worker@sweetfm.example",
		"role":  "employee",
	}, &created)
	require.Equal(t, http.StatusCreated, status)

	anon := newAPIClient(baseURL)
	var session sessionResponse
	status = anon.do(t, http.MethodPost, "/v1/invitations/accept", map[string]string{
		"token":    created.Token,
		"name":     "Worker",
		"password": "Worker123!",
	}, &session)
	require.Equal(t, http.StatusCreated, status)

	worker := newAPIClient(baseURL)
	worker.token = session.Token

	status = worker.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": "friend@sweetfm.example",
		"role":  "employee",
	}, nil)
	require.Equal(t, http.StatusForbidden, status, "Employees must not mint invitations")
}
