package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/pkg/cryptox"
	"github.com/sweetfm/backoffice/pkg/idx"
)

func TestCreateInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")
	manager := seedUser(t, st, domain.RoleManager, "manager@sweetfm.example")

	svc := &InviteService{Store: st, AppBaseURL: "https://backoffice.sweetfm.example"}

	t.Run("mints a single-use token", func(t *testing.T) {
		inv, token, err := svc.CreateInvitation(ctx, "dj@sweetfm.example", domain.RoleEmployee, "Programming", admin.ID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// Only the fingerprint is at rest.
		require.Equal(t, cryptox.FingerprintToken(token), inv.TokenHash)
		require.NotContains(t, inv.TokenHash, token)

		require.Equal(t, "dj@sweetfm.example", inv.Email)
		require.Equal(t, domain.RoleEmployee, inv.Role)
		require.Equal(t, "Programming", inv.Department)
		require.Nil(t, inv.AcceptedAt)
		require.WithinDuration(t, time.Now().Add(DefaultInviteTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("normalizes email case", func(t *testing.T) {
		inv, _, err := svc.CreateInvitation(ctx, "  News@SweetFM.Example ", domain.RoleEmployee, "News", admin.ID)
		require.NoError(t, err)
		require.Equal(t, "news@sweetfm.example", inv.Email)
	})

	t.Run("rejects a second unconsumed invitation for the same email", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, "dj@sweetfm.example", domain.RoleEmployee, "Programming", admin.ID)
		require.ErrorIs(t, err, ErrDuplicateInvitation)
	})

	t.Run("rejects already-registered email", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, admin.Email, domain.RoleEmployee, "", admin.ID)
		require.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("only admins can invite admins", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, "boss@sweetfm.example", domain.RoleAdmin, "", manager.ID)
		require.ErrorIs(t, err, ErrAdminInviteForbidden)

		_, _, err = svc.CreateInvitation(ctx, "boss@sweetfm.example", domain.RoleAdmin, "", admin.ID)
		require.NoError(t, err)
	})

	t.Run("drops department for roles without one", func(t *testing.T) {
		inv, _, err := svc.CreateInvitation(ctx, "advertiser@example.com", domain.RoleClient, "Sales", admin.ID)
		require.NoError(t, err)
		require.Empty(t, inv.Department)
	})

	t.Run("rejects malformed requests", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, "", domain.RoleEmployee, "", admin.ID)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)

		_, _, err = svc.CreateInvitation(ctx, "no-at-sign", domain.RoleEmployee, "", admin.ID)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)

		_, _, err = svc.CreateInvitation(ctx, "x@example.com", domain.Role("superuser"), "", admin.ID)
		require.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestLookupInvitationClassification(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")

	svc := &InviteService{Store: st, AppBaseURL: "https://backoffice.sweetfm.example"}

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.LookupInvitation(ctx, uuid.NewString())
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("valid token", func(t *testing.T) {
		_, token, err := svc.CreateInvitation(ctx, "fresh@sweetfm.example", domain.RoleEmployee, "News", admin.ID)
		require.NoError(t, err)

		inv, err := svc.LookupInvitation(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "fresh@sweetfm.example", inv.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		token := uuid.NewString()
		expired := domain.Invitation{
			ID:         idx.New().String(),
			Email:      "late@sweetfm.example",
			Role:       domain.RoleEmployee,
			TokenHash:  cryptox.FingerprintToken(token),
			InvitedBy:  admin.ID,
			ExpiresAt:  time.Now().UTC().Add(-time.Hour),
			CreatedAt:  time.Now().UTC().Add(-8 * 24 * time.Hour),
			UpdatedAt:  time.Now().UTC().Add(-8 * 24 * time.Hour),
			Department: "News",
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, expired))

		_, err := svc.LookupInvitation(ctx, token)
		require.ErrorIs(t, err, ErrInviteExpired)
	})

	t.Run("used token reports used even when also expired", func(t *testing.T) {
		token := uuid.NewString()
		now := time.Now().UTC()
		used := domain.Invitation{
			ID:        idx.New().String(),
			Email:     "gone@sweetfm.example",
			Role:      domain.RoleClient,
			TokenHash: cryptox.FingerprintToken(token),
			InvitedBy: admin.ID,
			ExpiresAt: now.Add(-time.Hour),
			CreatedAt: now.Add(-8 * 24 * time.Hour),
			UpdatedAt: now.Add(-8 * 24 * time.Hour),
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, used))
		require.NoError(t, st.Invitations().MarkAccepted(ctx, used.ID, now.Add(-2*time.Hour)))

		_, err := svc.LookupInvitation(ctx, token)
		require.ErrorIs(t, err, ErrInviteAlreadyUsed)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")

	svc := &InviteService{Store: st, AppBaseURL: "https://backoffice.sweetfm.example"}

	_, token, err := svc.CreateInvitation(ctx, "newhire@sweetfm.example", domain.RoleEmployee, "Programming", admin.ID)
	require.NoError(t, err)

	t.Run("rejects weak passwords without consuming the token", func(t *testing.T) {
		for _, weak := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
			_, err := svc.AcceptInvitation(ctx, token, "New Hire", weak)
			require.ErrorIs(t, err, ErrWeakPassword, "password %q", weak)
		}

		// Still redeemable.
		_, err := svc.LookupInvitation(ctx, token)
		require.NoError(t, err)
	})

	t.Run("creates the promised account", func(t *testing.T) {
		user, err := svc.AcceptInvitation(ctx, token, "New Hire", "Sup3rSecret")
		require.NoError(t, err)
		require.Equal(t, "newhire@sweetfm.example", user.Email)
		require.Equal(t, domain.RoleEmployee, user.Role)
		require.Equal(t, "Programming", user.Department)

		stored, err := st.Users().GetUserByEmail(ctx, "newhire@sweetfm.example")
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("Sup3rSecret", stored.PasswordHash))
	})

	t.Run("token is single-use", func(t *testing.T) {
		_, err := svc.AcceptInvitation(ctx, token, "Impostor", "An0therPass")
		require.ErrorIs(t, err, ErrInviteAlreadyUsed)
	})
}

func TestResendInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")

	svc := &InviteService{Store: st, AppBaseURL: "https://backoffice.sweetfm.example"}

	inv, oldToken, err := svc.CreateInvitation(ctx, "slow@sweetfm.example", domain.RoleEmployee, "News", admin.ID)
	require.NoError(t, err)

	t.Run("rotates the token", func(t *testing.T) {
		resent, newToken, err := svc.ResendInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.NotEqual(t, oldToken, newToken)
		require.Equal(t, inv.ID, resent.ID)

		// Old token stops resolving, new one classifies as valid.
		_, err = svc.LookupInvitation(ctx, oldToken)
		require.ErrorIs(t, err, ErrInviteNotFound)
		_, err = svc.LookupInvitation(ctx, newToken)
		require.NoError(t, err)
	})

	t.Run("refuses consumed invitations", func(t *testing.T) {
		require.NoError(t, st.Invitations().MarkAccepted(ctx, inv.ID, time.Now().UTC()))

		_, _, err := svc.ResendInvitation(ctx, inv.ID)
		require.ErrorIs(t, err, ErrInviteAlreadyUsed)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := svc.ResendInvitation(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestDeleteInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")

	svc := &InviteService{Store: st, AppBaseURL: "https://backoffice.sweetfm.example"}

	inv, token, err := svc.CreateInvitation(ctx, "oops@sweetfm.example", domain.RoleClient, "", admin.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvitation(ctx, inv.ID))

	_, err = svc.LookupInvitation(ctx, token)
	require.ErrorIs(t, err, ErrInviteNotFound)

	// Deleting frees the email for a fresh invitation.
	_, _, err = svc.CreateInvitation(ctx, "oops@sweetfm.example", domain.RoleClient, "", admin.ID)
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteInvitation(ctx, inv.ID), ErrInviteNotFound)
}

func TestInviteURL(t *testing.T) {
	svc := &InviteService{AppBaseURL: "https://backoffice.sweetfm.example/"}
	require.Equal(t,
		"https://backoffice.sweetfm.example/invite/tok-123",
		svc.InviteURL("tok-123"),
	)
}
