package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type InvitesHandler struct {
	InviteService *service.InviteService
	AuthService   *service.AuthService
}

// HandleCreate godoc
//
//	@Summary		Create Invitation
//	@Description	Mint a single-use invitation token for an email address with a pre-assigned role. The raw token is returned exactly once.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InviteCreateRequest		true	"Invitation request"
//	@Success		201		{object}	InviteCreateResponse	"invitation, token, invite_url"
//	@Failure		400		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	httpx.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InviteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	inv, token, err := h.InviteService.CreateInvitation(
		ctx, req.Email, domain.Role(req.Role), req.Department, httpx.UserIDFromCtx(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "A valid email address is required")
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Unknown role")
		case errors.Is(err, service.ErrAdminInviteForbidden):
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "Only admins can invite admins")
		case errors.Is(err, service.ErrDuplicateInvitation):
			httpx.WriteError(w, http.StatusConflict, "duplicate_invitation", "An unconsumed invitation already exists for this email")
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			httpx.WriteError(w, http.StatusConflict, "email_registered", "This email already has an account")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, InviteCreateResponse{
		Invitation: toInvitationResponse(inv),
		Token:      token,
		InviteURL:  h.InviteService.InviteURL(token),
	})
}

// HandleResend godoc
//
//	@Summary		Resend Invitation
//	@Description	Rotate the token and expiry of an unconsumed invitation. The previous link stops working immediately.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string					true	"Invitation ID"
//	@Success		200	{object}	InviteCreateResponse	"invitation, token, invite_url"
//	@Failure		404	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		409	{object}	httpx.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/resend [post].
func (h *InvitesHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	inv, token, err := h.InviteService.ResendInvitation(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Invitation not found")
		case errors.Is(err, service.ErrInviteAlreadyUsed):
			httpx.WriteError(w, http.StatusConflict, "already_used", "Invitation has already been accepted")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to resend invitation")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, InviteCreateResponse{
		Invitation: toInvitationResponse(inv),
		Token:      token,
		InviteURL:  h.InviteService.InviteURL(token),
	})
}

// HandleLookup godoc
//
//	@Summary		Look Up Invitation
//	@Description	Classify an invitation token for the public accept page. Distinguishes unknown, already used, expired, and valid tokens.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string				true	"Raw invitation token"
//	@Success		200		{object}	InvitationResponse	"invitation"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/lookup/{token} [get].
func (h *InvitesHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InviteService.LookupInvitation(r.Context(), r.PathValue("token"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv))
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Redeem an invitation token, create the promised account, and return a session token. Tokens are single-use.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InviteAcceptRequest	true	"Accept request"
//	@Success		201		{object}	SessionResponse		"token, user"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/invitations/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InviteAcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	user, err := h.InviteService.AcceptInvitation(ctx, req.Token, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest, "weak_password",
				"Password must be at least 8 characters with an uppercase letter, a lowercase letter, and a digit")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Name is required")
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			httpx.WriteError(w, http.StatusConflict, "email_registered", "This email already has an account")
		default:
			writeLookupError(w, err)
		}
		return
	}

	token, err := h.AuthService.IssueSession(user)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Account created but session issuance failed; please log in")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, SessionResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// HandleList godoc
//
//	@Summary	List Invitations
//	@Tags		Invitations
//	@Produce	json
//	@Success	200	{array}	InvitationResponse
//	@Security	BearerAuth
//	@Router		/v1/invitations [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invs, err := h.InviteService.ListInvitations(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list invitations")
		return
	}

	out := make([]InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvitationResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete godoc
//
//	@Summary	Delete Invitation
//	@Tags		Invitations
//	@Param		id	path	string	true	"Invitation ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/invitations/{id} [delete].
func (h *InvitesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.InviteService.DeleteInvitation(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrInviteNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Invitation not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to delete invitation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeLookupError maps token classification errors. Used and expired
// tokens are 410 Gone so the accept page can show a specific message;
// unknown tokens are plain 404.
func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInviteNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "This invitation link is invalid or expired")
	case errors.Is(err, service.ErrInviteAlreadyUsed):
		httpx.WriteError(w, http.StatusGone, "already_used", "Invitation has already been accepted")
	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteError(w, http.StatusGone, "expired", "Invitation has expired; ask for a new one")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to look up invitation")
	}
}
