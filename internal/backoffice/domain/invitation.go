package domain

import "time"

// Invitation grants a named email address the right to create an account
// with a pre-assigned role and department. The raw token is shown once to
// the inviter; only its fingerprint is stored.
type Invitation struct {
	ID         string
	Email      string
	Role       Role
	Department string
	TokenHash  string // SHA-256 fingerprint of the bearer token
	InvitedBy  string // user ID of the inviter, kept for audit
	ExpiresAt  time.Time
	AcceptedAt *time.Time // nil means unconsumed
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Redeemable reports whether the invitation can still be accepted at now.
func (i Invitation) Redeemable(now time.Time) bool {
	return i.AcceptedAt == nil && now.Before(i.ExpiresAt)
}
