package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/cryptox"
	"github.com/sweetfm/backoffice/pkg/idx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first admin account. It only works while
// the user table is empty and requires the pre-configured token, after
// which all account creation flows through invitations.
type BootstrapService struct {
	Store store.Store
	Token string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	email string,
	name string,
	password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped.
	if bootstrapped, err := s.IsBootstrapped(ctx); err != nil {
		return domain.User{}, err
	} else if bootstrapped {
		log.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, ErrBootstrapAlready
	}

	// 2. Validate provided token.
	if token == "" || token != s.Token {
		log.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	// 3. Validate the admin profile.
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") || name == "" {
		return domain.User{}, ErrInvalidInviteRequest
	}
	if !passwordMeetsPolicy(password) {
		return domain.User{}, ErrWeakPassword
	}

	// 4. Hash password.
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash admin password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := time.Now().UTC()
	admin := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passHash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 5. Create the admin inside a transaction; the IsEmpty re-check
	// closes the race between two simultaneous bootstrap calls.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, admin)
	})
	if err != nil {
		if !errors.Is(err, ErrBootstrapAlready) {
			log.Error("failed to create admin user", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("system bootstrapped", slog.String("admin_user_id", admin.ID))
	return admin, nil
}
