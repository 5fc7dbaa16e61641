package backoffice_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// inviteAndAccept onboards an account end to end: the admin mints an
// invitation for the email, and the invitee redeems it. Returns a client
// authenticated as the new account.
func inviteAndAccept(t *testing.T, baseURL string, admin *apiClient, email, role, name, password string) *apiClient {
	t.Helper()

	var created inviteCreateResponse
	status := admin.do(t, http.MethodPost, "/v1/invitations", map[string]string{
		"email": email,
		"role":  role,
	}, &created)
	require.Equal(t, http.StatusCreated, status)

	anon := newAPIClient(baseURL)
	var session sessionResponse
	status = anon.do(t, http.MethodPost, "/v1/invitations/accept", map[string]string{
		"token":    created.Token,
		"name":     name,
		"password": password,
	}, &session)
	require.Equal(t, http.StatusCreated, status)

	c := newAPIClient(baseURL)
	c.token = session.Token
	return c
}

// TestLeaveSelfService verifies an employee account is pinned to its own
// directory record: it files leave for itself only and lists only its own
// requests, while management sees everything.
func TestLeaveSelfService(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)
	now := time.Now().UTC()

	var dana, rory struct {
		ID string `json:"id"`
	}
	status := admin.do(t, http.MethodPost, "/v1/employees", map[string]any{
		"name":      "Dana DJ",
		"email":     "dana@sweetfm.example",
		"hire_date": now,
	}, &dana)
	require.Equal(t, http.StatusCreated, status)
	status = admin.do(t, http.MethodPost, "/v1/employees", map[string]any{
		"name":      "Rory Producer",
		"email":     "rory@sweetfm.example",
		"hire_date": now,
	}, &rory)
	require.Equal(t, http.StatusCreated, status)

	danaAPI := inviteAndAccept(t, baseURL, admin,
		"dana@sweetfm.example", "employee", "Dana DJ", "Dana1234!")

	// Filing without an employee_id binds to the caller's own record.
	var filed struct {
		EmployeeID string `json:"employee_id"`
	}
	status = danaAPI.do(t, http.MethodPost, "/v1/leave", map[string]any{
		"type":       "vacation",
		"start_date": now.AddDate(0, 0, 7),
		"end_date":   now.AddDate(0, 0, 9),
	}, &filed)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, dana.ID, filed.EmployeeID)

	// Filing for a colleague is rejected.
	status = danaAPI.do(t, http.MethodPost, "/v1/leave", map[string]any{
		"employee_id": rory.ID,
		"type":        "sick",
		"start_date":  now,
		"end_date":    now,
	}, nil)
	require.Equal(t, http.StatusForbidden, status)

	// Management may file on anyone's behalf.
	status = admin.do(t, http.MethodPost, "/v1/leave", map[string]any{
		"employee_id": rory.ID,
		"type":        "personal",
		"start_date":  now.AddDate(0, 0, 1),
		"end_date":    now.AddDate(0, 0, 1),
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	// The employee's list is scoped to their own requests.
	var mine []struct {
		EmployeeID string `json:"employee_id"`
	}
	status = danaAPI.do(t, http.MethodGet, "/v1/leave", nil, &mine)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, mine, 1)
	require.Equal(t, dana.ID, mine[0].EmployeeID)

	var all []struct {
		EmployeeID string `json:"employee_id"`
	}
	status = admin.do(t, http.MethodGet, "/v1/leave", nil, &all)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, all, 2)
}

// TestClientScopedBilling verifies a client account sees only its own
// invoices and ad slots, and that staff without a billing role cannot
// read invoices at all.
func TestClientScopedBilling(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)
	now := time.Now().UTC()

	var acme, bravo struct {
		ID string `json:"id"`
	}
	status := admin.do(t, http.MethodPost, "/v1/clients", map[string]string{
		"name":  "Acme Soda",
		"email": "billing@acme.example",
	}, &acme)
	require.Equal(t, http.StatusCreated, status)
	status = admin.do(t, http.MethodPost, "/v1/clients", map[string]string{
		"name":  "Bravo Motors",
		"email": "billing@bravo.example",
	}, &bravo)
	require.Equal(t, http.StatusCreated, status)

	for _, clientID := range []string{acme.ID, bravo.ID} {
		status = admin.do(t, http.MethodPost, "/v1/invoices", map[string]any{
			"client_id":    clientID,
			"amount_cents": 25000,
			"issue_date":   now,
			"due_date":     now.AddDate(0, 1, 0),
		}, nil)
		require.Equal(t, http.StatusCreated, status)

		status = admin.do(t, http.MethodPost, "/v1/adslots", map[string]any{
			"client_id":        clientID,
			"title":            "Breakfast spot",
			"days_of_week":     []int{1, 3},
			"air_time":         "07:30",
			"duration_seconds": 30,
			"start_date":       now,
			"end_date":         now.AddDate(0, 1, 0),
			"cost_cents":       25000,
		}, nil)
		require.Equal(t, http.StatusCreated, status)
	}

	acmeAPI := inviteAndAccept(t, baseURL, admin,
		"billing@acme.example", "client", "Acme Billing", "Billing123!")

	// Only the caller's own invoices come back.
	var invoices []struct {
		ClientID string `json:"client_id"`
	}
	status = acmeAPI.do(t, http.MethodGet, "/v1/invoices", nil, &invoices)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, invoices, 1)
	require.Equal(t, acme.ID, invoices[0].ClientID)

	// Peeking at another advertiser's invoices is rejected.
	status = acmeAPI.do(t, http.MethodGet, "/v1/invoices?client_id="+bravo.ID, nil, nil)
	require.Equal(t, http.StatusForbidden, status)

	// Ad slots are scoped the same way.
	var slots []struct {
		ClientID string `json:"client_id"`
	}
	status = acmeAPI.do(t, http.MethodGet, "/v1/adslots", nil, &slots)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, slots, 1)
	require.Equal(t, acme.ID, slots[0].ClientID)

	// A plain employee account has no invoice visibility.
	staff := inviteAndAccept(t, baseURL, admin,
		"worker@sweetfm.example", "employee", "Worker", "Worker123!")
	status = staff.do(t, http.MethodGet, "/v1/invoices", nil, nil)
	require.Equal(t, http.StatusForbidden, status)

	// A client account has no business with the leave register.
	status = acmeAPI.do(t, http.MethodPost, "/v1/leave", map[string]any{
		"type":       "vacation",
		"start_date": now,
		"end_date":   now,
	}, nil)
	require.Equal(t, http.StatusForbidden, status)
}
