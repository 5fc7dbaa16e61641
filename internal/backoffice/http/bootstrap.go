package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
	AuthService      *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap First Admin
//	@Description	Create the first admin account. Requires the configured bootstrap token and only works while no accounts exist.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BootstrapRequest	true	"Bootstrap request"
//	@Success		201		{object}	SessionResponse		"token, user"
//	@Failure		401		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	admin, err := h.BootstrapService.Bootstrap(r.Context(), req.Token, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteError(w, http.StatusConflict, "already_bootstrapped", "The system already has accounts")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid bootstrap token")
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, "weak_password",
				"Password must be at least 8 characters with an uppercase letter, a lowercase letter, and a digit")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Email and name are required")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Bootstrap failed")
		}
		return
	}

	token, err := h.AuthService.IssueSession(admin)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Admin created but session issuance failed; please log in")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, SessionResponse{
		Token: token,
		User:  toUserResponse(admin),
	})
}
