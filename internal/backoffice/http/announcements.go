package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type AnnouncementsHandler struct {
	AnnouncementService *service.AnnouncementService
}

// HandleCreate godoc
//
//	@Summary	Post Announcement
//	@Tags		Announcements
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AnnouncementRequest	true	"Announcement"
//	@Success	201		{object}	AnnouncementResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/announcements [post].
func (h *AnnouncementsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	a, err := h.AnnouncementService.CreateAnnouncement(r.Context(), domain.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Category:    domain.AnnouncementCategory(req.Category),
		Priority:    domain.AnnouncementPriority(req.Priority),
		TargetRoles: rolesFromStrings(req.TargetRoles),
		PublishedBy: httpx.UserIDFromCtx(r.Context()),
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAnnouncement) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Title and content are required")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to post announcement")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAnnouncementResponse(a))
}

// HandleList godoc
//
//	@Summary		List Announcements
//	@Description	The board as the caller sees it: unexpired announcements targeted at the caller's role or at everyone.
//	@Tags			Announcements
//	@Produce		json
//	@Success		200	{array}	AnnouncementResponse
//	@Security		BearerAuth
//	@Router			/v1/announcements [get].
func (h *AnnouncementsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.AnnouncementService.ListAnnouncementsFor(r.Context(), domain.Role(httpx.RoleFromCtx(r.Context())))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list announcements")
		return
	}

	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, toAnnouncementResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListAll godoc
//
//	@Summary		All Announcements
//	@Description	The moderation view: every announcement regardless of target role or expiry.
//	@Tags			Announcements
//	@Produce		json
//	@Success		200	{array}	AnnouncementResponse
//	@Security		BearerAuth
//	@Router			/v1/announcements/all [get].
func (h *AnnouncementsHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.AnnouncementService.ListAllAnnouncements(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list announcements")
		return
	}

	out := make([]AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, toAnnouncementResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete godoc
//
//	@Summary	Delete Announcement
//	@Tags		Announcements
//	@Param		id	path	string	true	"Announcement ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/announcements/{id} [delete].
func (h *AnnouncementsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AnnouncementService.DeleteAnnouncement(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Announcement not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to delete announcement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
