// Package mailer delivers transactional email. The production
// implementation talks to the Resend HTTP API; a no-op logger variant
// covers local development where no API key is configured.
package mailer

import "context"

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	// SendInvitation emails an invitation link to the given address.
	SendInvitation(ctx context.Context, to, inviteURL string) error
}
