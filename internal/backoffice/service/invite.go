package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/mailer"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/cryptox"
	"github.com/sweetfm/backoffice/pkg/idx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrInvalidInviteRequest   = errors.New("invalid invite request")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminInviteForbidden   = errors.New("only admins can invite admins")
	ErrDuplicateInvitation    = errors.New("an unconsumed invitation already exists for this email")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInviteNotFound         = errors.New("invite not found")
	ErrInviteAlreadyUsed      = errors.New("invite has already been used")
	ErrInviteExpired          = errors.New("invite has expired")
	ErrWeakPassword           = errors.New("password does not meet the policy")
)

// DefaultInviteTTL is how long a freshly minted (or resent) invitation
// token stays redeemable.
const DefaultInviteTTL = 7 * 24 * time.Hour

type InviteService struct {
	Store      store.Store
	Mailer     mailer.Mailer
	AppBaseURL string

	// InviteTTL defaults to DefaultInviteTTL when zero.
	InviteTTL time.Duration
}

func (s *InviteService) ttl() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

// CreateInvitation mints a single-use invitation token for an email
// address. The raw token is returned exactly once; only its fingerprint
// is stored. Duplicate detection is delegated to the storage layer so two
// concurrent invites for the same email cannot both succeed.
func (s *InviteService) CreateInvitation(
	ctx context.Context,
	email string,
	role domain.Role,
	department string,
	invitedBy string,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the request shape.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, "", ErrInvalidInviteRequest
	}
	if !role.Valid() {
		return domain.Invitation{}, "", ErrInvalidRole
	}
	if !role.HasDepartment() {
		department = ""
	}

	// 2. Only admins may hand out admin invitations. This prevents a
	// manager from escalating by inviting a colluding admin account.
	inviter, err := s.Store.Users().GetUserByID(ctx, invitedBy)
	if err != nil {
		log.Error("failed to fetch inviter", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if role == domain.RoleAdmin && inviter.Role != domain.RoleAdmin {
		log.Warn("non-admin attempted to mint admin invite",
			slog.String("inviter_id", inviter.ID),
			slog.String("inviter_role", string(inviter.Role)),
		)
		return domain.Invitation{}, "", ErrAdminInviteForbidden
	}

	// 3. Refuse to invite an address that already has an account.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.Invitation{}, "", ErrEmailAlreadyRegistered
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check existing account", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 4. Mint the bearer token and store only its fingerprint.
	token := uuid.NewString()
	inv := domain.Invitation{
		ID:         idx.New().String(),
		Email:      email,
		Role:       role,
		Department: department,
		TokenHash:  cryptox.FingerprintToken(token),
		InvitedBy:  invitedBy,
		ExpiresAt:  time.Now().UTC().Add(s.ttl()),
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// An unconsumed invitation (possibly expired) already holds
			// this email; the caller must resend or delete it instead.
			return domain.Invitation{}, "", ErrDuplicateInvitation
		}
		log.Error("failed to create invitation", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("role", string(inv.Role)),
	)

	// 5. Deliver the link out of band. A delivery failure never fails the
	// operation: the raw token is returned to the inviter regardless.
	s.sendInviteMail(ctx, inv.Email, token)

	return inv, token, nil
}

// ResendInvitation rotates the token and expiry of an unconsumed
// invitation. The previous token stops resolving immediately.
func (s *InviteService) ResendInvitation(ctx context.Context, id string) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	// 1. The invitation must exist and be unconsumed.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, "", ErrInviteNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if inv.AcceptedAt != nil {
		return domain.Invitation{}, "", ErrInviteAlreadyUsed
	}

	// 2. Rotate token and expiry in one write.
	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(s.ttl())
	if err := s.Store.Invitations().ReplaceToken(ctx, inv.ID, cryptox.FingerprintToken(token), expiresAt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race with acceptance or deletion.
			return domain.Invitation{}, "", ErrInviteAlreadyUsed
		}
		log.Error("failed to rotate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	inv.TokenHash = cryptox.FingerprintToken(token)
	inv.ExpiresAt = expiresAt

	log.Info("invitation resent", slog.String("invitation_id", inv.ID))

	s.sendInviteMail(ctx, inv.Email, token)

	return inv, token, nil
}

// LookupInvitation classifies a raw token for the public accept page.
// Returns ErrInviteNotFound, ErrInviteAlreadyUsed or ErrInviteExpired;
// a nil error means the invitation is redeemable right now.
func (s *InviteService) LookupInvitation(ctx context.Context, token string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotFound
		}
		return domain.Invitation{}, err
	}

	// Used takes precedence over expired: a consumed invitation reports
	// "already used" even if its expiry has also passed.
	if inv.AcceptedAt != nil {
		return domain.Invitation{}, ErrInviteAlreadyUsed
	}
	if !time.Now().Before(inv.ExpiresAt) {
		return domain.Invitation{}, ErrInviteExpired
	}
	return inv, nil
}

// AcceptInvitation redeems a token and creates the account it promised.
// Account creation and invitation consumption commit together; if either
// write fails the invitation stays redeemable.
func (s *InviteService) AcceptInvitation(
	ctx context.Context,
	token string,
	name string,
	password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Classify the token.
	inv, err := s.LookupInvitation(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	// 2. Validate the profile fields.
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrInvalidInviteRequest
	}
	if !passwordMeetsPolicy(password) {
		return domain.User{}, ErrWeakPassword
	}

	// 3. Hash the password up front; hashing is slow and must not hold a
	// write transaction open.
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        inv.Email,
		Name:         name,
		PasswordHash: passHash,
		Role:         inv.Role,
		Department:   inv.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Create the account and consume the invitation atomically. The
	// guarded MarkAccepted means a concurrent redeemer loses cleanly.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailAlreadyRegistered
			}
			return err
		}
		if err := tx.Invitations().MarkAccepted(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteAlreadyUsed
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailAlreadyRegistered) && !errors.Is(err, ErrInviteAlreadyUsed) {
			log.Error("failed to accept invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return domain.User{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// DeleteInvitation removes an invitation regardless of state.
func (s *InviteService) DeleteInvitation(ctx context.Context, id string) error {
	if err := s.Store.Invitations().DeleteInvitation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	return nil
}

func (s *InviteService) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitations(ctx)
}

// InviteURL is the link emailed to (and shown to) the invitee.
func (s *InviteService) InviteURL(token string) string {
	return strings.TrimRight(s.AppBaseURL, "/") + "/invite/" + token
}

// sendInviteMail delivers the invitation link without blocking the
// request. Failures are logged and swallowed: the invitation stays valid
// and the inviter still holds the link for manual distribution.
func (s *InviteService) sendInviteMail(ctx context.Context, to, token string) {
	if s.Mailer == nil {
		return
	}
	log := slogx.FromContext(ctx)
	url := s.InviteURL(token)

	go func() {
		sendCtx, cancel := context.WithTimeout(slogx.WithContext(context.Background(), log), 30*time.Second)
		defer cancel()

		if err := s.Mailer.SendInvitation(sendCtx, to, url); err != nil {
			log.Error("failed to send invitation email", slog.Any("error", err))
		}
	}()
}

// passwordMeetsPolicy enforces: at least 8 characters with at least one
// uppercase letter, one lowercase letter and one digit.
func passwordMeetsPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}
