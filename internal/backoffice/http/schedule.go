package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type ScheduleHandler struct {
	ScheduleService  *service.ScheduleService
	DirectoryService *service.DirectoryService
}

func showFromRequest(req ShowRequest) domain.Show {
	return domain.Show{
		Name:        req.Name,
		Presenter:   req.Presenter,
		Description: req.Description,
		Category:    domain.ShowCategory(req.Category),
		DaysOfWeek:  intsToWeekdays(req.DaysOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Color:       req.Color,
	}
}

func writeScheduleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidScheduleRequest):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"Name, at least one weekday, and HH:MM times are required")
	case errors.Is(err, service.ErrShowNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Show not found")
	case errors.Is(err, service.ErrAdSlotNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Ad slot not found")
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Client not found")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Schedule operation failed")
	}
}

// HandleCreateShow godoc
//
//	@Summary	Create Show
//	@Tags		Schedule
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ShowRequest	true	"Show details"
//	@Success	201		{object}	ShowResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/shows [post].
func (h *ScheduleHandler) HandleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	show, err := h.ScheduleService.CreateShow(r.Context(), showFromRequest(req))
	if err != nil {
		writeScheduleError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toShowResponse(show))
}

// HandleListShows godoc
//
//	@Summary	List Shows
//	@Tags		Schedule
//	@Produce	json
//	@Param		status	query	string	false	"Filter by status (active, inactive, archived)"
//	@Success	200		{array}	ShowResponse
//	@Security	BearerAuth
//	@Router		/v1/shows [get].
func (h *ScheduleHandler) HandleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.ScheduleService.ListShows(r.Context(), domain.ShowStatus(r.URL.Query().Get("status")))
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list shows")
		return
	}

	out := make([]ShowResponse, 0, len(shows))
	for _, s := range shows {
		out = append(out, toShowResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateShow godoc
//
//	@Summary	Update Show
//	@Tags		Schedule
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Show ID"
//	@Param		request	body		ShowRequest	true	"Show details"
//	@Success	200		{object}	ShowResponse
//	@Failure	404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/shows/{id} [put].
func (h *ScheduleHandler) HandleUpdateShow(w http.ResponseWriter, r *http.Request) {
	var req ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	show := showFromRequest(req)
	show.ID = r.PathValue("id")

	updated, err := h.ScheduleService.UpdateShow(r.Context(), show)
	if err != nil {
		writeScheduleError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toShowResponse(updated))
}

// HandleUpdateShowStatus godoc
//
//	@Summary	Update Show Status
//	@Tags		Schedule
//	@Accept		json
//	@Param		id		path	string			true	"Show ID"
//	@Param		request	body	StatusRequest	true	"New status (active, inactive, archived)"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/shows/{id}/status [put].
func (h *ScheduleHandler) HandleUpdateShowStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := h.ScheduleService.UpdateShowStatus(r.Context(), r.PathValue("id"), domain.ShowStatus(req.Status)); err != nil {
		writeScheduleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteShow godoc
//
//	@Summary	Delete Show
//	@Tags		Schedule
//	@Param		id	path	string	true	"Show ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/shows/{id} [delete].
func (h *ScheduleHandler) HandleDeleteShow(w http.ResponseWriter, r *http.Request) {
	if err := h.ScheduleService.DeleteShow(r.Context(), r.PathValue("id")); err != nil {
		writeScheduleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCreateAdSlot godoc
//
//	@Summary	Book Ad Slot
//	@Tags		Schedule
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AdSlotRequest	true	"Ad slot details"
//	@Success	201		{object}	AdSlotResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/adslots [post].
func (h *ScheduleHandler) HandleCreateAdSlot(w http.ResponseWriter, r *http.Request) {
	var req AdSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	slot, err := h.ScheduleService.CreateAdSlot(r.Context(), domain.AdSlot{
		ClientID:        req.ClientID,
		Title:           req.Title,
		SpotType:        domain.SpotType(req.SpotType),
		DaysOfWeek:      intsToWeekdays(req.DaysOfWeek),
		AirTime:         req.AirTime,
		DurationSeconds: req.DurationSeconds,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		ShowID:          req.ShowID,
		CostCents:       req.CostCents,
	})
	if err != nil {
		writeScheduleError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAdSlotResponse(slot))
}

// HandleListAdSlots godoc
//
//	@Summary		List Ad Slots
//	@Description	Staff see every slot and may filter by client; a client account sees only its own campaigns.
//	@Tags			Schedule
//	@Produce		json
//	@Param			client_id	query	string	false	"Filter by client (staff only)"
//	@Success		200			{array}	AdSlotResponse
//	@Failure		403			{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/adslots [get].
func (h *ScheduleHandler) HandleListAdSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		slots []domain.AdSlot
		err   error
	)
	if domain.Role(httpx.RoleFromCtx(ctx)) == domain.RoleClient {
		var own domain.Client
		own, err = h.DirectoryService.ClientForUser(ctx, httpx.UserIDFromCtx(ctx))
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			// An account with no advertiser record has no campaigns.
			err = nil
		case err == nil:
			if filter := r.URL.Query().Get("client_id"); filter != "" && filter != own.ID {
				httpx.WriteError(w, http.StatusForbidden, "forbidden", "Clients may only view their own ad slots")
				return
			}
			slots, err = h.ScheduleService.ListAdSlotsByClient(ctx, own.ID)
		}
	} else if clientID := r.URL.Query().Get("client_id"); clientID != "" {
		slots, err = h.ScheduleService.ListAdSlotsByClient(ctx, clientID)
	} else {
		slots, err = h.ScheduleService.ListAdSlots(ctx)
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list ad slots")
		return
	}

	out := make([]AdSlotResponse, 0, len(slots))
	for _, a := range slots {
		out = append(out, toAdSlotResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateAdSlotStatus godoc
//
//	@Summary	Update Ad Slot Status
//	@Tags		Schedule
//	@Accept		json
//	@Param		id		path	string			true	"Ad slot ID"
//	@Param		request	body	StatusRequest	true	"New status (scheduled, active, completed, cancelled)"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/adslots/{id}/status [put].
func (h *ScheduleHandler) HandleUpdateAdSlotStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := h.ScheduleService.UpdateAdSlotStatus(r.Context(), r.PathValue("id"), domain.AdSlotStatus(req.Status)); err != nil {
		writeScheduleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteAdSlot godoc
//
//	@Summary	Delete Ad Slot
//	@Tags		Schedule
//	@Param		id	path	string	true	"Ad slot ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/adslots/{id} [delete].
func (h *ScheduleHandler) HandleDeleteAdSlot(w http.ResponseWriter, r *http.Request) {
	if err := h.ScheduleService.DeleteAdSlot(r.Context(), r.PathValue("id")); err != nil {
		writeScheduleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleWeekGrid godoc
//
//	@Summary		Week Grid
//	@Description	The 7-day programme: for each weekday, the active shows and live ad slots airing that day, ordered by start time.
//	@Tags			Schedule
//	@Produce		json
//	@Success		200	{array}	ScheduleDayResponse
//	@Security		BearerAuth
//	@Router			/v1/schedule/week [get].
func (h *ScheduleHandler) HandleWeekGrid(w http.ResponseWriter, r *http.Request) {
	grid, err := h.ScheduleService.WeekGrid(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to render week grid")
		return
	}

	out := make([]ScheduleDayResponse, 0, len(grid))
	for _, d := range grid {
		out = append(out, toScheduleDayResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
