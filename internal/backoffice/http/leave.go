package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type LeaveHandler struct {
	LeaveService     *service.LeaveService
	DirectoryService *service.DirectoryService
}

// HandleSubmit godoc
//
//	@Summary		Submit Leave Request
//	@Description	File a leave request. Employees file for themselves (employee_id is optional and must match their
//	@Description	own record); managers and admins may file for any employee. The day count is inclusive of both endpoints.
//	@Tags			Leave
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LeaveRequestCreate	true	"Leave request"
//	@Success		201		{object}	LeaveRequestResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leave [post].
func (h *LeaveHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LeaveRequestCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	// Bind the submitter. Management may file for anyone; an employee is
	// pinned to their own directory record regardless of the body.
	employeeID := req.EmployeeID
	switch domain.Role(httpx.RoleFromCtx(ctx)) {
	case domain.RoleAdmin, domain.RoleManager:
	case domain.RoleEmployee:
		own, err := h.DirectoryService.EmployeeForUser(ctx, httpx.UserIDFromCtx(ctx))
		if err != nil {
			if errors.Is(err, service.ErrEmployeeNotFound) {
				httpx.WriteError(w, http.StatusForbidden, "forbidden", "No employee record is linked to this account")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to submit leave request")
			return
		}
		if employeeID != "" && employeeID != own.ID {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "Employees may only file leave for themselves")
			return
		}
		employeeID = own.ID
	default:
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "Leave requests are for station staff")
		return
	}

	lr, err := h.LeaveService.SubmitLeaveRequest(ctx, employeeID,
		domain.LeaveType(req.Type), req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLeaveRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"Employee, leave type, and a start date on or before the end date are required")
		case errors.Is(err, service.ErrEmployeeNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Employee not found")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to submit leave request")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toLeaveRequestResponse(lr))
}

// HandleList godoc
//
//	@Summary		List Leave Requests
//	@Description	Managers and admins see every request and may filter by employee; an employee sees only their own.
//	@Tags			Leave
//	@Produce		json
//	@Param			employee_id	query	string	false	"Filter by employee (management only)"
//	@Success		200			{array}	LeaveRequestResponse
//	@Failure		403			{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leave [get].
func (h *LeaveHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		requests []domain.LeaveRequest
		err      error
	)
	switch domain.Role(httpx.RoleFromCtx(ctx)) {
	case domain.RoleAdmin, domain.RoleManager:
		if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
			requests, err = h.LeaveService.ListLeaveRequestsByEmployee(ctx, employeeID)
		} else {
			requests, err = h.LeaveService.ListLeaveRequests(ctx)
		}
	case domain.RoleEmployee:
		var own domain.Employee
		own, err = h.DirectoryService.EmployeeForUser(ctx, httpx.UserIDFromCtx(ctx))
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			// An account with no directory record has nothing to list.
			err = nil
		case err == nil:
			requests, err = h.LeaveService.ListLeaveRequestsByEmployee(ctx, own.ID)
		}
	default:
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "Leave requests are for station staff")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list leave requests")
		return
	}

	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, toLeaveRequestResponse(lr))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleReview godoc
//
//	@Summary		Review Leave Request
//	@Description	Approve or reject a pending request. A reviewed request cannot be reviewed again.
//	@Tags			Leave
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Leave request ID"
//	@Param			request	body		LeaveReviewRequest	true	"Decision (approved or rejected)"
//	@Success		200		{object}	LeaveRequestResponse
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leave/{id}/review [put].
func (h *LeaveHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	var req LeaveReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	lr, err := h.LeaveService.ReviewLeaveRequest(r.Context(), r.PathValue("id"),
		domain.LeaveStatus(req.Decision), httpx.UserIDFromCtx(r.Context()), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReviewDecision):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Decision must be approved or rejected")
		case errors.Is(err, service.ErrLeaveAlreadyReviewed):
			httpx.WriteError(w, http.StatusConflict, "already_reviewed", "This leave request has already been reviewed")
		case errors.Is(err, service.ErrLeaveRequestNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Leave request not found")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to review leave request")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaveRequestResponse(lr))
}
