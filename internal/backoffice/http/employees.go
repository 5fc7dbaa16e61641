package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type EmployeesHandler struct {
	DirectoryService *service.DirectoryService
}

func employeeFromRequest(req EmployeeRequest) domain.Employee {
	return domain.Employee{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Position:        req.Position,
		Department:      req.Department,
		HireDate:        req.HireDate,
		SalaryCents:     req.SalaryCents,
		DeductionsCents: req.DeductionsCents,
		EmploymentType:  domain.EmploymentType(req.EmploymentType),
	}
}

// HandleCreate godoc
//
//	@Summary		Create Employee
//	@Description	Register a staff member. The display ID (e.g. S23006) is drawn from the hire-date year's sequence and never changes.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EmployeeRequest	true	"Employee details"
//	@Success		201		{object}	EmployeeResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/employees [post].
func (h *EmployeesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	e, err := h.DirectoryService.CreateEmployee(r.Context(), employeeFromRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDirectoryRequest) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Name and hire date are required")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create employee")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEmployeeResponse(e))
}

// HandleList godoc
//
//	@Summary	List Employees
//	@Tags		Employees
//	@Produce	json
//	@Success	200	{array}	EmployeeResponse
//	@Security	BearerAuth
//	@Router		/v1/employees [get].
func (h *EmployeesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.DirectoryService.ListEmployees(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list employees")
		return
	}

	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Employee
//	@Tags		Employees
//	@Produce	json
//	@Param		id	path		string	true	"Employee ID"
//	@Success	200	{object}	EmployeeResponse
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/employees/{id} [get].
func (h *EmployeesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.DirectoryService.GetEmployee(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Employee not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to fetch employee")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEmployeeResponse(e))
}

// HandleUpdate godoc
//
//	@Summary	Update Employee
//	@Tags		Employees
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Employee ID"
//	@Param		request	body		EmployeeRequest	true	"Employee details"
//	@Success	200		{object}	EmployeeResponse
//	@Failure	404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/employees/{id} [put].
func (h *EmployeesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	e := employeeFromRequest(req)
	e.ID = r.PathValue("id")

	updated, err := h.DirectoryService.UpdateEmployee(r.Context(), e)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Employee not found")
		case errors.Is(err, service.ErrInvalidDirectoryRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Name is required")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to update employee")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEmployeeResponse(updated))
}

// HandleUpdateStatus godoc
//
//	@Summary	Update Employee Status
//	@Tags		Employees
//	@Accept		json
//	@Param		id		path	string			true	"Employee ID"
//	@Param		request	body	StatusRequest	true	"New status (active, inactive)"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/employees/{id}/status [put].
func (h *EmployeesHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	err := h.DirectoryService.UpdateEmployeeStatus(r.Context(), r.PathValue("id"), domain.EmployeeStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Employee not found")
		case errors.Is(err, service.ErrInvalidDirectoryRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Unknown status")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to update status")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary	Delete Employee
//	@Tags		Employees
//	@Param		id	path	string	true	"Employee ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/employees/{id} [delete].
func (h *EmployeesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DirectoryService.DeleteEmployee(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Employee not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to delete employee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
