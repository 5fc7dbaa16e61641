package mailer

import (
	"context"
	"log/slog"

	"github.com/sweetfm/backoffice/pkg/slogx"
)

// Noop logs the invitation link instead of sending anything. Used when no
// mail provider is configured so local development still surfaces the URL.
type Noop struct{}

func (Noop) SendInvitation(ctx context.Context, to, inviteURL string) error {
	slogx.FromContext(ctx).Info("invitation email suppressed (no mail provider configured)",
		slog.String("to", to),
		slog.String("invite_url", inviteURL),
	)
	return nil
}
