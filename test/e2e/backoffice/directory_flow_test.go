package backoffice_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestClientDisplayIDsAreSequential verifies advertisers get C{YY}{NNN}
// display IDs in creation order.
func TestClientDisplayIDsAreSequential(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)
	year := time.Now().UTC().Year() % 100

	for i := 1; i <= 3; i++ {
		var created struct {
			DisplayID string `json:"display_id"`
		}
		status := admin.do(t, http.MethodPost, "/v1/clients", map[string]string{
			"name": fmt.Sprintf("Advertiser %d", i),
		}, &created)
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, fmt.Sprintf("C%02d%03d", year, i), created.DisplayID)
	}
}

// TestInvoiceFlow walks invoice numbering, sending, and payment settlement.
func TestInvoiceFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	admin := bootstrapAdmin(t, baseURL)

	var client struct {
		ID string `json:"id"`
	}
	status := admin.do(t, http.MethodPost, "/v1/clients", map[string]string{
		"name": "Billable Advertiser",
	}, &client)
	require.Equal(t, http.StatusCreated, status)

	now := time.Now().UTC()
	var invoice struct {
		ID     string `json:"id"`
		Number string `json:"number"`
		Status string `json:"status"`
	}
	status = admin.do(t, http.MethodPost, "/v1/invoices", map[string]any{
		"client_id":    client.ID,
		"amount_cents": 50000,
		"issue_date":   now,
		"due_date":     now.AddDate(0, 1, 0),
		"description":  "July ad campaign",
	}, &invoice)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, fmt.Sprintf("INV-%d-0001", now.Year()), invoice.Number)
	require.Equal(t, "draft", invoice.Status)

	// Draft invoices do not accept payments.
	status = admin.do(t, http.MethodPost, "/v1/invoices/"+invoice.ID+"/payments",
		map[string]any{"amount_cents": 10000}, nil)
	require.Equal(t, http.StatusConflict, status)

	status = admin.do(t, http.MethodPost, "/v1/invoices/"+invoice.ID+"/send", nil, &invoice)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "sent", invoice.Status)

	// Overpayment is rejected.
	status = admin.do(t, http.MethodPost, "/v1/invoices/"+invoice.ID+"/payments",
		map[string]any{"amount_cents": 60000}, nil)
	require.Equal(t, http.StatusConflict, status)

	// Two partial payments settle the invoice.
	var paid struct {
		Status       string `json:"status"`
		BalanceCents int64  `json:"balance_cents"`
	}
	status = admin.do(t, http.MethodPost, "/v1/invoices/"+invoice.ID+"/payments",
		map[string]any{"amount_cents": 20000}, &paid)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "sent", paid.Status)
	require.Equal(t, int64(30000), paid.BalanceCents)

	status = admin.do(t, http.MethodPost, "/v1/invoices/"+invoice.ID+"/payments",
		map[string]any{"amount_cents": 30000}, &paid)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "paid", paid.Status)
	require.Equal(t, int64(0), paid.BalanceCents)
}
