package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Resend sends email through the Resend HTTP API.
type Resend struct {
	APIKey string
	From   string

	// HTTPClient is optional; a 10s-timeout client is used when nil.
	HTTPClient *http.Client
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Resend) SendInvitation(ctx context.Context, to, inviteURL string) error {
	body, err := json.Marshal(resendRequest{
		From:    m.From,
		To:      []string{to},
		Subject: "You've been invited to join Sweet FM",
		HTML: fmt.Sprintf(
			`<p>You've been invited to join the Sweet FM back office.</p>`+
				`<p><a href="%s">Accept your invitation</a></p>`+
				`<p>This link expires in 7 days.</p>`,
			inviteURL,
		),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := m.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
