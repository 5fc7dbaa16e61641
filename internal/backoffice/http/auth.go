package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchange email and password (plus a TOTP code when the account has a second factor) for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Credentials"
//	@Success		200		{object}	SessionResponse		"token, user"
//	@Failure		401		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password, req.TOTPCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTOTPRequired):
			httpx.WriteError(w, http.StatusUnauthorized, "totp_required", "A TOTP code is required for this account")
		case errors.Is(err, service.ErrInvalidTOTPCode):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_totp", "Invalid TOTP code")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Login failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, SessionResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// HandleMe godoc
//
//	@Summary	Current User
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	UserResponse
//	@Security	BearerAuth
//	@Router		/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.GetUser(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleChangePassword godoc
//
//	@Summary	Change Password
//	@Tags		Auth
//	@Accept		json
//	@Param		request	body	ChangePasswordRequest	true	"Current and new password"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure	401	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/auth/password [put].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	err := h.AuthService.ChangePassword(r.Context(), httpx.UserIDFromCtx(r.Context()), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Current password is incorrect")
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, "weak_password",
				"Password must be at least 8 characters with an uppercase letter, a lowercase letter, and a digit")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to change password")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleTOTPEnroll godoc
//
//	@Summary		Enroll TOTP
//	@Description	Stage a TOTP secret for the current account. The factor is not enforced until activated with a valid code.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	TOTPEnrollResponse	"otpauth_url"
//	@Failure		409	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/totp/enroll [post].
func (h *AuthHandler) HandleTOTPEnroll(w http.ResponseWriter, r *http.Request) {
	url, err := h.AuthService.BeginTOTPEnrollment(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		if errors.Is(err, service.ErrTOTPAlreadyActive) {
			httpx.WriteError(w, http.StatusConflict, "totp_active", "TOTP is already enabled")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to enroll TOTP")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, TOTPEnrollResponse{OTPAuthURL: url})
}

// HandleTOTPActivate godoc
//
//	@Summary	Activate TOTP
//	@Tags		Auth
//	@Accept		json
//	@Param		request	body	TOTPCodeRequest	true	"Code from the authenticator app"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/auth/totp/activate [post].
func (h *AuthHandler) HandleTOTPActivate(w http.ResponseWriter, r *http.Request) {
	var req TOTPCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	h.writeTOTPResult(w, h.AuthService.ActivateTOTP(r.Context(), httpx.UserIDFromCtx(r.Context()), req.Code))
}

// HandleTOTPDisable godoc
//
//	@Summary	Disable TOTP
//	@Tags		Auth
//	@Accept		json
//	@Param		request	body	TOTPCodeRequest	true	"Code from the authenticator app"
//	@Success	204
//	@Failure	400	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/auth/totp [delete].
func (h *AuthHandler) HandleTOTPDisable(w http.ResponseWriter, r *http.Request) {
	var req TOTPCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	h.writeTOTPResult(w, h.AuthService.DisableTOTP(r.Context(), httpx.UserIDFromCtx(r.Context()), req.Code))
}

func (h *AuthHandler) writeTOTPResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrInvalidTOTPCode):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_totp", "Invalid TOTP code")
	case errors.Is(err, service.ErrTOTPNotEnrolled):
		httpx.WriteError(w, http.StatusConflict, "totp_not_enrolled", "No staged TOTP secret; enroll first")
	case errors.Is(err, service.ErrTOTPAlreadyActive):
		httpx.WriteError(w, http.StatusConflict, "totp_active", "TOTP is already enabled")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "TOTP operation failed")
	}
}

// HandleListUsers godoc
//
//	@Summary	List Users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}	UserResponse
//	@Security	BearerAuth
//	@Router		/v1/users [get].
func (h *AuthHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.AuthService.ListUsers(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list users")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDeleteUser godoc
//
//	@Summary	Delete User
//	@Tags		Users
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/users/{id} [delete].
func (h *AuthHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == httpx.UserIDFromCtx(r.Context()) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "You cannot delete your own account")
		return
	}
	if err := h.AuthService.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "User not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
