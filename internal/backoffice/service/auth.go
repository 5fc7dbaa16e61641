package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/cryptox"
	"github.com/sweetfm/backoffice/pkg/jwtx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTOTPRequired       = errors.New("totp code required")
	ErrInvalidTOTPCode    = errors.New("invalid totp code")
	ErrTOTPAlreadyActive  = errors.New("totp already enabled")
	ErrTOTPNotEnrolled    = errors.New("totp not enrolled")
	ErrUserNotFound       = errors.New("user not found")
)

// DefaultSessionTTL is how long an issued session token stays valid.
const DefaultSessionTTL = 12 * time.Hour

type AuthService struct {
	Store  store.Store
	Keys   *jwtx.KeySet
	Issuer string

	// SessionTTL defaults to DefaultSessionTTL when zero.
	SessionTTL time.Duration
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login verifies credentials and returns a signed session token. Accounts
// with an active TOTP second factor must also supply a valid code.
func (s *AuthService) Login(ctx context.Context, email, password, totpCode string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Look up the account. Verify against a dummy hash on miss so the
	// response time does not reveal whether the email exists.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, dummyHash)
			return "", domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return "", domain.User{}, err
	}

	// 2. Verify the password.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("failed login attempt", slog.String("user_id", user.ID))
		return "", domain.User{}, ErrInvalidCredentials
	}

	// 3. Second factor, when active.
	if user.TOTPEnabled != nil {
		if totpCode == "" {
			return "", domain.User{}, ErrTOTPRequired
		}
		if user.TOTPSecret == nil || !totp.Validate(totpCode, *user.TOTPSecret) {
			log.Warn("failed totp verification", slog.String("user_id", user.ID))
			return "", domain.User{}, ErrInvalidTOTPCode
		}
	}

	// 4. Issue the session.
	token, err := s.IssueSession(user)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return token, user, nil
}

// IssueSession signs a session token for an already-authenticated user
// (login, or the account just created by an invitation accept).
func (s *AuthService) IssueSession(user domain.User) (string, error) {
	claims := jwtx.NewClaims(s.Issuer, user.ID, user.Name, string(user.Role), user.Department, s.sessionTTL())
	return s.Keys.Sign(claims)
}

// Verifier returns the verifier handlers use to authenticate requests.
func (s *AuthService) Verifier() jwtx.Verifier {
	return jwtx.Verifier{Keys: s.Keys, Issuer: s.Issuer}
}

// ChangePassword verifies the current password before writing a new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := cryptox.VerifyPassword(current, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}
	if !passwordMeetsPolicy(next) {
		return ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		log.Error("failed to update password", slog.Any("error", err))
		return err
	}

	log.Info("password changed", slog.String("user_id", userID))
	return nil
}

// BeginTOTPEnrollment stages a fresh TOTP secret for the user and returns
// the otpauth:// provisioning URL. The factor is not enforced until
// ActivateTOTP confirms the user can produce codes.
func (s *AuthService) BeginTOTPEnrollment(ctx context.Context, userID string) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if user.TOTPEnabled != nil {
		return "", ErrTOTPAlreadyActive
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Sweet FM",
		AccountName: user.Email,
	})
	if err != nil {
		return "", err
	}
	if err := s.Store.Users().SetTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return "", err
	}
	return key.URL(), nil
}

// ActivateTOTP turns the staged secret into an enforced second factor.
func (s *AuthService) ActivateTOTP(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.TOTPEnabled != nil {
		return ErrTOTPAlreadyActive
	}
	if user.TOTPSecret == nil {
		return ErrTOTPNotEnrolled
	}
	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	if err := s.Store.Users().EnableTOTP(ctx, userID); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("totp enabled", slog.String("user_id", userID))
	return nil
}

// DisableTOTP removes the second factor after a final code check.
func (s *AuthService) DisableTOTP(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.TOTPEnabled == nil || user.TOTPSecret == nil {
		return ErrTOTPNotEnrolled
	}
	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrInvalidTOTPCode
	}
	if err := s.Store.Users().DisableTOTP(ctx, userID); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("totp disabled", slog.String("user_id", userID))
	return nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// dummyHash keeps login timing uniform when the email does not resolve to
// an account. Verification always fails.
var dummyHash = func() string {
	h, err := cryptox.HashPassword("timing-equalizer-placeholder")
	if err != nil {
		return ""
	}
	return h
}()
